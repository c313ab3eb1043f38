package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
)

// StockStatus es estado derivado: cantidad cero manda sobre el umbral.
func TestProduct_StockStatus(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minStock int
		want     string
	}{
		{"cantidad cero", 0, 5, entity.StockStatusOut},
		{"cantidad cero y umbral cero", 0, 0, entity.StockStatusOut},
		{"igual al umbral", 5, 5, entity.StockStatusLow},
		{"bajo el umbral", 3, 5, entity.StockStatusLow},
		{"sobre el umbral", 6, 5, entity.StockStatusIn},
		{"umbral cero con stock", 1, 0, entity.StockStatusIn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{Quantity: tc.quantity, MinStock: tc.minStock}
			assert.Equal(t, tc.want, p.StockStatus())
		})
	}
}

// Escenario de referencia: un cable a 12.50 con 8 unidades y umbral 10
// está en stock bajo y vale 100.00.
func TestProduct_InventoryValue(t *testing.T) {
	p := entity.Product{
		Name:     "Cable HDMI",
		SKU:      "CB-1",
		Price:    decimal.RequireFromString("12.50"),
		Quantity: 8,
		MinStock: 10,
	}
	assert.Equal(t, entity.StockStatusLow, p.StockStatus())
	assert.True(t, p.InventoryValue().Equal(decimal.RequireFromString("100.00")),
		"valor de inventario debe ser price × quantity")
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleStaff))
	assert.False(t, entity.ValidRole("superuser"))
	assert.False(t, entity.ValidRole(""))
}

func TestValidTransactionType(t *testing.T) {
	assert.True(t, entity.ValidTransactionType(entity.TransactionTypeIn))
	assert.True(t, entity.ValidTransactionType(entity.TransactionTypeOut))
	assert.True(t, entity.ValidTransactionType(entity.TransactionTypeAdjust))
	assert.False(t, entity.ValidTransactionType("in"))
	assert.False(t, entity.ValidTransactionType(""))
}
