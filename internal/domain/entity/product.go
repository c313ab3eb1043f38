package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de catálogo de un producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Etiquetas de estado de stock. Son función pura de Quantity vs MinStock.
const (
	StockStatusOut = "Out of Stock"
	StockStatusLow = "Low Stock"
	StockStatusIn  = "In Stock"
)

// SuggestedCategories lista sugerida para el formulario de producto.
// Category es texto libre; esta lista solo alimenta el dropdown.
var SuggestedCategories = []string{
	"Electronics",
	"Accessories",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books & Media",
	"Health & Beauty",
	"Automotive",
	"Office Supplies",
	"Other",
}

// Product representa un producto del catálogo con su nivel de stock.
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string // código único de catálogo
	Price       decimal.Decimal
	Quantity    int // unidades en stock, >= 0
	MinStock    int // umbral de reposición, >= 0
	Category    string
	Supplier    string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockStatus clasifica el nivel de stock.
// Invariante: 0 -> Out of Stock; 0 < Quantity <= MinStock -> Low Stock; resto In Stock.
func (p *Product) StockStatus() string {
	if p.Quantity == 0 {
		return StockStatusOut
	}
	if p.Quantity <= p.MinStock {
		return StockStatusLow
	}
	return StockStatusIn
}

// InventoryValue devuelve Price × Quantity.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
