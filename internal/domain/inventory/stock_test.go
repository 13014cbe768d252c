package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/inventory"
)

func TestNextStock_Entrada(t *testing.T) {
	got, err := inventory.NextStock(entity.MovementTypeEntry, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestNextStock_SalidaConStockSuficiente(t *testing.T) {
	got, err := inventory.NextStock(entity.MovementTypeExit, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestNextStock_SalidaExacta(t *testing.T) {
	got, err := inventory.NextStock(entity.MovementTypeExit, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestNextStock_SalidaSinStock(t *testing.T) {
	_, err := inventory.NextStock(entity.MovementTypeExit, 3, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestNextStock_AjusteEsAbsoluto(t *testing.T) {
	// La cantidad del ajuste fija el stock, no lo suma.
	got, err := inventory.NextStock(entity.MovementTypeAdjustment, 7, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestNextStock_CantidadCeroONegativa(t *testing.T) {
	for _, qty := range []int{0, -1, -50} {
		_, err := inventory.NextStock(entity.MovementTypeEntry, 10, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity=%d", qty)
	}
}

func TestNextStock_TipoInvalido(t *testing.T) {
	_, err := inventory.NextStock("donation", 10, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestStatus_Derivacion(t *testing.T) {
	cases := []struct {
		name                string
		current, min, max   int
		want                string
	}{
		{"sin stock con minimo cero", 0, 0, 0, inventory.StatusOutOfStock},
		{"stock negativo", -3, 0, 0, inventory.StatusOutOfStock},
		{"igual al minimo", 5, 5, 0, inventory.StatusLowStock},
		{"debajo del minimo", 3, 5, 40, inventory.StatusLowStock},
		{"sobre el maximo", 50, 5, 40, inventory.StatusHighStock},
		{"igual al maximo", 40, 5, 40, inventory.StatusHighStock},
		{"rango normal", 20, 5, 40, inventory.StatusInStock},
		{"sin techo configurado", 1000, 5, 0, inventory.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Status(tc.current, tc.min, tc.max))
		})
	}
}

func TestProductStatus_UsaCamposDelProducto(t *testing.T) {
	p := &entity.Product{CurrentStock: 2, MinStock: 5, MaxStock: 40}
	assert.Equal(t, inventory.StatusLowStock, inventory.ProductStatus(p))
}
