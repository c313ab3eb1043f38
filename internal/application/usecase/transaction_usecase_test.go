package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockpilot-api/internal/application/dto"
	"github.com/tu-usuario/stockpilot-api/internal/application/usecase"
	"github.com/tu-usuario/stockpilot-api/internal/domain"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
	"github.com/tu-usuario/stockpilot-api/internal/domain/repository"
)

// fakeTransactionRepo libro de movimientos en memoria.
type fakeTransactionRepo struct {
	moves []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	r.moves = append([]*entity.Transaction{tx}, r.moves...)
	return nil
}

func (r *fakeTransactionRepo) ListRecent(limit int) ([]*entity.Transaction, error) {
	if limit > 0 && len(r.moves) > limit {
		return r.moves[:limit], nil
	}
	return r.moves, nil
}

func (r *fakeTransactionRepo) ListByProduct(productID string, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, m := range r.moves {
		if m.ProductID == productID {
			out = append(out, m)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeRunner imita la semántica transaccional: ejecuta fn sobre copias y solo
// aplica los cambios si fn no devuelve error.
type fakeRunner struct {
	productRepo *fakeProductRepo
	txRepo      *fakeTransactionRepo
}

func (r *fakeRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
) error) error {
	productos := make([]*entity.Product, len(r.productRepo.products))
	for i, p := range r.productRepo.products {
		copia := *p
		productos[i] = &copia
	}
	shadowProducts := &fakeProductRepo{products: productos}
	shadowMoves := &fakeTransactionRepo{moves: append([]*entity.Transaction{}, r.txRepo.moves...)}

	if err := fn(shadowProducts, shadowMoves); err != nil {
		return err
	}
	r.productRepo.products = shadowProducts.products
	r.txRepo.moves = shadowMoves.moves
	return nil
}

func setupTransactionTest(t *testing.T, quantity int) (*usecase.TransactionUseCase, *fakeProductRepo, *fakeTransactionRepo, string) {
	t.Helper()
	productRepo := &fakeProductRepo{}
	p := entity.Product{ID: "p-1", Name: "Cable HDMI", SKU: "CB-1", Quantity: quantity, MinStock: 2, Status: entity.ProductStatusActive}
	require.NoError(t, productRepo.Create(&p))

	txRepo := &fakeTransactionRepo{}
	runner := &fakeRunner{productRepo: productRepo, txRepo: txRepo}
	return usecase.NewTransactionUseCase(runner, txRepo), productRepo, txRepo, p.ID
}

func TestTransactionUseCase_Record_IN(t *testing.T) {
	uc, productRepo, txRepo, productID := setupTransactionTest(t, 5)

	out, err := uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: productID, Type: entity.TransactionTypeIn, Quantity: 3, Notes: "reposición",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeIn, out.Type)
	assert.Equal(t, "u-1", out.UserID)

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, 8, p.Quantity)
	assert.Len(t, txRepo.moves, 1)
}

func TestTransactionUseCase_Record_OUT(t *testing.T) {
	uc, productRepo, _, productID := setupTransactionTest(t, 5)

	_, err := uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: productID, Type: entity.TransactionTypeOut, Quantity: 5,
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, 0, p.Quantity, "salir exactamente el stock deja cero")
}

// Una salida que dejaría stock negativo falla sin escribir nada:
// ni la cantidad cambia ni se crea la entrada del libro.
func TestTransactionUseCase_Record_OUTInsuficienteNoEscribeNada(t *testing.T) {
	uc, productRepo, txRepo, productID := setupTransactionTest(t, 5)

	_, err := uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: productID, Type: entity.TransactionTypeOut, Quantity: 6,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, 5, p.Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, txRepo.moves, "no debe quedar entrada en el libro")
}

func TestTransactionUseCase_Record_ADJUSTMENTFijaAbsoluto(t *testing.T) {
	uc, productRepo, _, productID := setupTransactionTest(t, 5)

	_, err := uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: productID, Type: entity.TransactionTypeAdjust, Quantity: 42,
	})
	require.NoError(t, err)

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, 42, p.Quantity)
}

func TestTransactionUseCase_Record_Validacion(t *testing.T) {
	uc, _, _, productID := setupTransactionTest(t, 5)

	_, err := uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: productID, Type: "entrada", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: productID, Type: entity.TransactionTypeIn, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity debe ser positiva")

	_, err = uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
		ProductID: "no-existe", Type: entity.TransactionTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionUseCase_ListRecent_FiltraPorProducto(t *testing.T) {
	uc, _, txRepo, productID := setupTransactionTest(t, 50)

	for i := 0; i < 3; i++ {
		_, err := uc.Record(context.Background(), "u-1", dto.RecordTransactionRequest{
			ProductID: productID, Type: entity.TransactionTypeOut, Quantity: 1,
		})
		require.NoError(t, err)
	}
	require.Len(t, txRepo.moves, 3)

	all, err := uc.ListRecent(2, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byProduct, err := uc.ListRecent(10, productID)
	require.NoError(t, err)
	assert.Len(t, byProduct, 3)

	otro, err := uc.ListRecent(10, "otro-producto")
	require.NoError(t, err)
	assert.Empty(t, otro)
}
