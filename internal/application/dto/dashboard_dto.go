package dto

import "github.com/shopspring/decimal"

// InventoryTotalsDTO KPIs básicos del inventario, derivados de la colección completa.
type InventoryTotalsDTO struct {
	TotalProducts int             `json:"total_products"`
	TotalValue    decimal.Decimal `json:"total_value"` // Σ price × quantity
	LowStockCount int             `json:"low_stock_count"`
	ActiveCount   int             `json:"active_count"`
}

// CategoryCountDTO conteo de productos por categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// LowStockProductDTO fila del widget de alerta de stock bajo.
type LowStockProductDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"min_stock"`
	StockStatus string `json:"stock_status"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// Todo se recalcula por petición desde la colección completa; nada se cachea.
type DashboardSummaryDTO struct {
	Totals             InventoryTotalsDTO    `json:"totals"`
	TopCategories      []CategoryCountDTO    `json:"top_categories"`
	LowStockProducts   []LowStockProductDTO  `json:"low_stock_products"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}
