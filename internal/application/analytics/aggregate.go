// Package analytics contiene el agregador de estado derivado: funciones puras
// sobre la colección completa de productos, recalculadas por petición.
// Nada aquí toca la base de datos ni mantiene estado.
package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockpilot-api/internal/application/dto"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
)

// Rangos de precio fijos del filtro de listado. Los límites son inclusivos
// en ambos extremos, igual que en el formulario original.
const (
	PriceRangeUnder10  = "under-10"
	PriceRange10to50   = "10-50"
	PriceRange50to100  = "50-100"
	PriceRange100to500 = "100-500"
	PriceRangeOver500  = "over-500"
)

// ProductFilter criterios independientes que se conjugan con AND.
// El valor cero (o "all") desactiva cada criterio.
type ProductFilter struct {
	Query      string // substring case-insensitive sobre name/sku/description/supplier
	Status     string // active | inactive
	Category   string
	PriceRange string // under-10 | 10-50 | 50-100 | 100-500 | over-500
}

// IsZero indica si el filtro no restringe nada.
func (f ProductFilter) IsZero() bool {
	return f.Query == "" && f.Status == "" && f.Category == "" && f.PriceRange == ""
}

// Summarize calcula los KPIs del dashboard: conteo total, valor monetario
// agregado (Σ price × quantity), productos en o bajo el umbral de reposición
// y productos activos.
func Summarize(products []*entity.Product) dto.InventoryTotalsDTO {
	totals := dto.InventoryTotalsDTO{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range products {
		totals.TotalValue = totals.TotalValue.Add(p.InventoryValue())
		if p.StockStatus() != entity.StockStatusIn {
			totals.LowStockCount++
		}
		if p.Status == entity.ProductStatusActive {
			totals.ActiveCount++
		}
	}
	return totals
}

// CategoryDistribution cuenta productos por categoría, ordena descendente
// (nombre ascendente como desempate) y recorta al top-N. topN <= 0 devuelve todo.
func CategoryDistribution(products []*entity.Product, topN int) []dto.CategoryCountDTO {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	dist := make([]dto.CategoryCountDTO, 0, len(counts))
	for category, count := range counts {
		dist = append(dist, dto.CategoryCountDTO{Category: category, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Category < dist[j].Category
	})
	if topN > 0 && len(dist) > topN {
		dist = dist[:topN]
	}
	return dist
}

// Categories devuelve las categorías distintas en uso, ordenadas.
func Categories(products []*entity.Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// LowStock devuelve los productos cuyo estado de stock no es In Stock,
// conservando el orden de entrada y recortando a limit (<= 0 devuelve todos).
func LowStock(products []*entity.Product, limit int) []*entity.Product {
	var low []*entity.Product
	for _, p := range products {
		if p.StockStatus() != entity.StockStatusIn {
			low = append(low, p)
		}
	}
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low
}

// FilterProducts aplica búsqueda y filtros sobre la colección en memoria.
// Los criterios son independientes y se combinan con AND; el orden de entrada
// se conserva.
func FilterProducts(products []*entity.Product, f ProductFilter) []*entity.Product {
	if f.IsZero() {
		return products
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Status != "" && f.Status != "all" && p.Status != f.Status {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.PriceRange != "" && f.PriceRange != "all" && !matchesPriceRange(p.Price, f.PriceRange) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesQuery(p *entity.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.SKU), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Supplier), query)
}

func matchesPriceRange(price decimal.Decimal, bracket string) bool {
	p10 := decimal.NewFromInt(10)
	p50 := decimal.NewFromInt(50)
	p100 := decimal.NewFromInt(100)
	p500 := decimal.NewFromInt(500)
	switch bracket {
	case PriceRangeUnder10:
		return price.LessThan(p10)
	case PriceRange10to50:
		return price.GreaterThanOrEqual(p10) && price.LessThanOrEqual(p50)
	case PriceRange50to100:
		return price.GreaterThanOrEqual(p50) && price.LessThanOrEqual(p100)
	case PriceRange100to500:
		return price.GreaterThanOrEqual(p100) && price.LessThanOrEqual(p500)
	case PriceRangeOver500:
		return price.GreaterThan(p500)
	default:
		return true // rango desconocido: no filtra
	}
}
