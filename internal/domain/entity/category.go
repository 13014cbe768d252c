package entity

import "time"

// Category agrupa productos del inventario.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}
