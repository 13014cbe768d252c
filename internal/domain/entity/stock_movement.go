package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry      = "entry"      // entrada: suma Quantity al stock
	MovementTypeExit       = "exit"       // salida: resta Quantity del stock
	MovementTypeAdjustment = "adjustment" // ajuste: fija el stock en Quantity (valor absoluto)
)

// StockMovement es un registro de auditoría inmutable: se crea una vez y nunca
// se actualiza ni se borra. PreviousStock y NewStock son capturas al momento de
// aplicar el movimiento; reproducir todos los movimientos de un producto en
// orden de creación desde 0 debe dar exactamente su CurrentStock.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // entry, exit, adjustment
	Quantity      int    // delta para entry/exit; valor objetivo absoluto para adjustment
	PreviousStock int
	NewStock      int
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal // Quantity * UnitCost
	Reference     string          // número de factura, orden, etc.
	Notes         string
	UserID        string // actor que registró el movimiento
	MovementDate  time.Time
}
