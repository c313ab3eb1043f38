package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockpilot-api/internal/application/usecase"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/stockpilot-api/internal/interfaces/http"
)

// memProductRepo puerto de productos en memoria para probar el handler completo
// (routing, RBAC y códigos de estado) sin base de datos.
type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products = append([]*entity.Product{p}, r.products...)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			copia := *p
			r.products[i] = &copia
			return nil
		}
	}
	return nil
}

func (r *memProductRepo) UpdateQuantity(productID string, quantity int) error {
	for _, p := range r.products {
		if p.ID == productID {
			p.Quantity = quantity
		}
	}
	return nil
}

func (r *memProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memProductRepo) Delete(id string) (*entity.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return p, nil
		}
	}
	return nil, nil
}

// buildProductApp arma la app con las mismas rutas y middlewares del router real.
func buildProductApp() (*fiber.App, *memProductRepo) {
	repo := &memProductRepo{}
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(repo))

	app := fiber.New()
	adminOnly := apphttp.RequireRole(entity.RoleAdmin)
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Get("/products", handler.Get)
	api.Post("/products", adminOnly, handler.Create)
	api.Put("/products", adminOnly, handler.Update)
	api.Delete("/products", adminOnly, handler.Delete)
	api.Get("/categories", handler.Categories)
	return app, repo
}

func doProductRequest(t *testing.T, app *fiber.App, method, target, role string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validProductBody() map[string]any {
	return map[string]any{
		"name":      "Cable HDMI",
		"sku":       "CB-1",
		"price":     "12.50",
		"quantity":  8,
		"min_stock": 10,
		"category":  "Electronics",
	}
}

func TestProductHandler_CreateYGet(t *testing.T) {
	app, _ := buildProductApp()

	resp := doProductRequest(t, app, http.MethodPost, "/api/products", "admin", validProductBody())
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Low Stock", created["stock_status"], "8 unidades con umbral 10")

	// GET ?id= devuelve el producto individual.
	resp = doProductRequest(t, app, http.MethodGet, "/api/products?id="+id, "staff", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// GET sin id lista la colección con total.
	resp = doProductRequest(t, app, http.MethodGet, "/api/products", "staff", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.EqualValues(t, 1, list["total"])
}

// Las mutaciones del catálogo son solo para admin; staff puede leer.
func TestProductHandler_StaffNoPuedeMutarCatalogo(t *testing.T) {
	app, _ := buildProductApp()

	resp := doProductRequest(t, app, http.MethodPost, "/api/products", "staff", validProductBody())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doProductRequest(t, app, http.MethodDelete, "/api/products?id=x", "staff", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Sin token ni siquiera se puede leer.
	resp = doProductRequest(t, app, http.MethodGet, "/api/products", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductHandler_ValidacionYDuplicado(t *testing.T) {
	app, _ := buildProductApp()

	bad := validProductBody()
	bad["name"] = "X"
	resp := doProductRequest(t, app, http.MethodPost, "/api/products", "admin", bad)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doProductRequest(t, app, http.MethodPost, "/api/products", "admin", validProductBody())
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doProductRequest(t, app, http.MethodPost, "/api/products", "admin", validProductBody())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProductHandler_DeleteDevuelveElEliminado(t *testing.T) {
	app, repo := buildProductApp()

	resp := doProductRequest(t, app, http.MethodPost, "/api/products", "admin", validProductBody())
	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	id, _ := created["id"].(string)

	resp = doProductRequest(t, app, http.MethodDelete, "/api/products?id="+id, "admin", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deleted))
	assert.Equal(t, id, deleted["id"])
	assert.Empty(t, repo.products)

	// Segundo delete sobre el mismo ID: 404.
	resp = doProductRequest(t, app, http.MethodDelete, "/api/products?id="+id, "admin", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_ListConFiltros(t *testing.T) {
	app, _ := buildProductApp()

	resp := doProductRequest(t, app, http.MethodPost, "/api/products", "admin", validProductBody())
	resp.Body.Close()

	otro := validProductBody()
	otro["name"] = "Silla ergonómica"
	otro["sku"] = "CH-1"
	otro["category"] = "Furniture"
	otro["price"] = "320.00"
	resp = doProductRequest(t, app, http.MethodPost, "/api/products", "admin", otro)
	resp.Body.Close()

	// Filtro por texto: solo la silla matchea, pero total sigue en 2.
	resp = doProductRequest(t, app, http.MethodGet, "/api/products?q=silla", "staff", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Silla ergonómica", list.Items[0]["name"])
	assert.Equal(t, 2, list.Total)

	// Filtro por rango de precio.
	resp = doProductRequest(t, app, http.MethodGet, "/api/products?price=100-500", "staff", nil)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "CH-1", list.Items[0]["sku"])
}

func TestProductHandler_Categories(t *testing.T) {
	app, _ := buildProductApp()

	custom := validProductBody()
	custom["category"] = "Repuestos Raros"
	resp := doProductRequest(t, app, http.MethodPost, "/api/products", "admin", custom)
	resp.Body.Close()

	resp = doProductRequest(t, app, http.MethodGet, "/api/categories", "staff", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Categories, "Electronics")
	assert.Contains(t, out.Categories, "Repuestos Raros")
}
