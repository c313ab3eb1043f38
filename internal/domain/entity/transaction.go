package entity

import "time"

// Tipos de movimiento de stock.
const (
	TransactionTypeIn     = "IN"         // entrada
	TransactionTypeOut    = "OUT"        // salida
	TransactionTypeAdjust = "ADJUSTMENT" // fija la cantidad absoluta
)

// ValidTransactionType indica si el tipo es uno de los soportados.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIn || t == TransactionTypeOut || t == TransactionTypeAdjust
}

// Transaction es una entrada del libro de movimientos de stock.
// Cada registro se escribe en la misma transacción DB que el ajuste de
// cantidad del producto; nunca por separado.
type Transaction struct {
	ID        string
	Type      string // IN, OUT, ADJUSTMENT
	Quantity  int    // unidades movidas; para ADJUSTMENT, la cantidad final
	Notes     string
	ProductID string
	UserID    string
	CreatedAt time.Time
}
