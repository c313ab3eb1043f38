package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockpilot-api/internal/application/dto"
	"github.com/tu-usuario/stockpilot-api/internal/domain"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
	"github.com/tu-usuario/stockpilot-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción DB.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// TransactionUseCase registra movimientos de stock y lista el libro.
//
// El ajuste de cantidad del producto y la entrada del libro se escriben en
// una sola transacción: o quedan ambos o ninguno.
type TransactionUseCase struct {
	runner TxRunner
	txRepo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(runner TxRunner, txRepo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{runner: runner, txRepo: txRepo}
}

// Record registra un movimiento y ajusta la cantidad del producto.
//
//	IN          suma Quantity
//	OUT         resta Quantity; ErrInsufficientStock si quedaría negativa
//	ADJUSTMENT  fija la cantidad absoluta en Quantity
func (uc *TransactionUseCase) Record(ctx context.Context, userID string, in dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.Transaction{
		ID:        uuid.New().String(),
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		ProductID: in.ProductID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	err := uc.runner.Run(ctx, func(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.Quantity
		switch in.Type {
		case entity.TransactionTypeIn:
			newQuantity += in.Quantity
		case entity.TransactionTypeOut:
			newQuantity -= in.Quantity
			if newQuantity < 0 {
				return domain.ErrInsufficientStock
			}
		case entity.TransactionTypeAdjust:
			newQuantity = in.Quantity
		}

		if err := productRepo.UpdateQuantity(product.ID, newQuantity); err != nil {
			return err
		}
		return txRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	return toTransactionResponse(movement), nil
}

// ListRecent lista los movimientos más recientes; con productID filtra por producto.
func (uc *TransactionUseCase) ListRecent(limit int, productID string) ([]dto.TransactionResponse, error) {
	var (
		list []*entity.Transaction
		err  error
	)
	if productID != "" {
		list, err = uc.txRepo.ListByProduct(productID, limit)
	} else {
		list, err = uc.txRepo.ListRecent(limit)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toTransactionResponse(m))
	}
	return items, nil
}

func toTransactionResponse(m *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:        m.ID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Notes:     m.Notes,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
