package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockpilot-api/internal/application/dto"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
	"github.com/tu-usuario/stockpilot-api/internal/domain/repository"
)

const (
	dashboardTopCategories = 5 // categorías en el widget de distribución
	dashboardLowStockRows  = 5 // filas del widget de alerta de stock bajo
	dashboardRecentMoves   = 5 // movimientos recientes mostrados
)

// DashboardUseCase arma el resumen del inventario.
//
// Trae la colección completa de productos y los movimientos recientes, y
// deriva todo lo demás con las funciones puras de este paquete. No hay
// agregación en SQL ni caché: cada petición recalcula desde cero.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, txRepo: txRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos consultas en paralelo:
//  1. ListAll()          → productos (base de todos los KPIs)
//  2. ListRecent(5)      → movimientos recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type movesResult struct {
		moves []*entity.Transaction
		err   error
	}

	productsCh := make(chan productsResult, 1)
	movesCh := make(chan movesResult, 1)

	go func() {
		products, err := uc.productRepo.ListAll()
		productsCh <- productsResult{products, err}
	}()
	go func() {
		moves, err := uc.txRepo.ListRecent(dashboardRecentMoves)
		movesCh <- movesResult{moves, err}
	}()

	products := <-productsCh
	moves := <-movesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if moves.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", moves.err)
	}

	low := LowStock(products.products, dashboardLowStockRows)
	lowRows := make([]dto.LowStockProductDTO, 0, len(low))
	for _, p := range low {
		lowRows = append(lowRows, dto.LowStockProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			SKU:         p.SKU,
			Quantity:    p.Quantity,
			MinStock:    p.MinStock,
			StockStatus: p.StockStatus(),
		})
	}

	recent := make([]dto.TransactionResponse, 0, len(moves.moves))
	for _, m := range moves.moves {
		recent = append(recent, dto.TransactionResponse{
			ID:        m.ID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Notes:     m.Notes,
			ProductID: m.ProductID,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		Totals:             Summarize(products.products),
		TopCategories:      CategoryDistribution(products.products, dashboardTopCategories),
		LowStockProducts:   lowRows,
		RecentTransactions: recent,
	}, nil
}
