package repository

import "github.com/tu-usuario/stockpilot-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para el libro de movimientos.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	ListRecent(limit int) ([]*entity.Transaction, error)
	ListByProduct(productID string, limit int) ([]*entity.Transaction, error)
}
