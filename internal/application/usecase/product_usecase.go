package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockpilot-api/internal/application/analytics"
	"github.com/tu-usuario/stockpilot-api/internal/application/dto"
	"github.com/tu-usuario/stockpilot-api/internal/domain"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
	"github.com/tu-usuario/stockpilot-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validateSaveRequest normaliza (trim) y valida los campos de create/update.
// Los mensajes se concatenan con coma, uno por campo inválido.
func validateSaveRequest(in *dto.SaveProductRequest) error {
	var msgs []string

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.SKU = strings.TrimSpace(in.SKU)
	in.Category = strings.TrimSpace(in.Category)
	in.Supplier = strings.TrimSpace(in.Supplier)

	if len(in.Name) < 2 {
		msgs = append(msgs, "name debe tener al menos 2 caracteres")
	}
	if len(in.SKU) < 3 {
		msgs = append(msgs, "sku debe tener al menos 3 caracteres")
	}
	if in.Category == "" {
		msgs = append(msgs, "category es requerida")
	}
	if in.Price.LessThan(decimal.Zero) {
		msgs = append(msgs, "price debe ser 0 o mayor")
	}
	if in.Quantity < 0 {
		msgs = append(msgs, "quantity debe ser 0 o mayor")
	}
	if in.MinStock < 0 {
		msgs = append(msgs, "min_stock debe ser 0 o mayor")
	}
	if in.Status == "" {
		in.Status = entity.ProductStatusActive
	}
	if in.Status != entity.ProductStatusActive && in.Status != entity.ProductStatusInactive {
		msgs = append(msgs, "status debe ser active o inactive")
	}

	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, ", "))
	}
	return nil
}

// Create crea un nuevo producto. Devuelve ErrDuplicate si el SKU ya existe;
// en ese caso la colección queda intacta.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateSaveRequest(&in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Category:    in.Category,
		Supplier:    in.Supplier,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto revalidando todos los campos, igual que create.
// Devuelve nil si el ID no existe y ErrDuplicate si el SKU pasa a uno ajeno.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateSaveRequest(&in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != product.SKU {
		other, err := uc.repo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
	}
	product.Name = in.Name
	product.Description = in.Description
	product.SKU = in.SKU
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.MinStock = in.MinStock
	product.Category = in.Category
	product.Supplier = in.Supplier
	product.Status = in.Status
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve la colección completa (más reciente primero) y aplica el
// filtro en memoria cuando viene uno. Total siempre refleja la colección sin filtrar.
func (uc *ProductUseCase) List(filter analytics.ProductFilter) (*dto.ProductListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	shown := analytics.FilterProducts(all, filter)
	items := make([]dto.ProductResponse, 0, len(shown))
	for _, p := range shown {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(all)}, nil
}

// Categories devuelve la lista sugerida más las categorías en uso, sin duplicados.
func (uc *ProductUseCase) Categories() (*dto.CategoriesResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	inUse := analytics.Categories(all)
	seen := make(map[string]bool, len(entity.SuggestedCategories)+len(inUse))
	merged := make([]string, 0, len(entity.SuggestedCategories)+len(inUse))
	for _, c := range entity.SuggestedCategories {
		seen[c] = true
		merged = append(merged, c)
	}
	for _, c := range inUse {
		if !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}
	return &dto.CategoriesResponse{Categories: merged}, nil
}

// Delete elimina un producto por ID y devuelve el registro eliminado.
// Devuelve nil si el ID no existe.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, nil
	}
	return toProductResponse(deleted), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Category:    p.Category,
		Supplier:    p.Supplier,
		Status:      p.Status,
		StockStatus: p.StockStatus(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
