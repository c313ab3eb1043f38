package dto

import "time"

// RecordTransactionRequest entrada para registrar un movimiento de stock.
type RecordTransactionRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Notes     string `json:"notes" validate:"max=500"`
}

// TransactionResponse salida de una entrada del libro de movimientos.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
