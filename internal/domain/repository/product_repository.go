package repository

import "github.com/tu-usuario/stockpilot-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// ListAll devuelve la colección completa ordenada por created_at descendente:
// la aplicación asume catálogos pequeños y agrega en memoria, sin paginación.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int) error
	ListAll() ([]*entity.Product, error)
	Delete(id string) (*entity.Product, error)
}
