package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// Los filtros de stock deben reflejar la misma precedencia que el estado
// derivado: un producto no puede aparecer bajo dos filtros a la vez.
func TestBuildProductQuery_FiltroStockStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"out_of_stock", "current_stock <= 0"},
		{"low_stock", "current_stock > 0 AND current_stock <= min_stock"},
		{"in_stock", "current_stock > min_stock AND (max_stock <= 0 OR current_stock < max_stock)"},
		{"high_stock", "max_stock > 0 AND current_stock >= max_stock"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			query, args := buildProductQuery(`SELECT count(*) FROM products`, repository.ProductFilter{
				StockStatus: tt.status,
			})
			assert.Contains(t, query, tt.want)
			assert.Empty(t, args, "los filtros de stock no llevan argumentos posicionales")
		})
	}
}

func TestBuildProductQuery_InStockExcluyeTecho(t *testing.T) {
	inStock, _ := buildProductQuery(`SELECT 1`, repository.ProductFilter{StockStatus: "in_stock"})
	assert.Contains(t, inStock, "current_stock < max_stock",
		"in_stock debe excluir productos que ya llegaron al máximo")
}

func TestBuildProductQuery_BusquedaYCategoria(t *testing.T) {
	query, args := buildProductQuery(`SELECT 1`, repository.ProductFilter{
		Search:     "tinta",
		CategoryID: "cat-1",
		Status:     "active",
	})
	assert.Contains(t, query, "ILIKE $1")
	assert.Contains(t, query, "category_id = $2")
	assert.Contains(t, query, "is_active = true")
	assert.Equal(t, []any{"%tinta%", "cat-1"}, args)
}

// El orden nunca interpola entrada del usuario: valores fuera de la lista caen
// al orden por nombre.
func TestProductOrder_ListaBlanca(t *testing.T) {
	assert.Equal(t, "sale_price ASC", productOrder("price"))
	assert.Equal(t, "current_stock ASC", productOrder("stock"))
	assert.Equal(t, "created_at DESC", productOrder("created_at"))
	assert.Equal(t, "name ASC", productOrder("name"))
	assert.Equal(t, "name ASC", productOrder("1; DROP TABLE products"))
	assert.False(t, strings.Contains(productOrder("updated_at"), "updated_at"))
}
