package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// El update revalida todos los campos, igual que el create, así que ambos
// comparten el mismo cuerpo.
type SaveProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"max=500"`
	SKU         string          `json:"sku" validate:"required,min=3,max=100"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
	Category    string          `json:"category" validate:"required"`
	Supplier    string          `json:"supplier"`
	Status      string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductResponse salida de un producto. StockStatus es derivado, nunca se persiste.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	Status      string          `json:"status"`
	StockStatus string          `json:"stock_status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos. Total es el tamaño de la colección
// completa; Items puede venir filtrado en memoria ("Showing X of Y").
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoriesResponse categorías sugeridas más las que están en uso.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
