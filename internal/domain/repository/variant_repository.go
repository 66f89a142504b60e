package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// VariantRepository puerto de persistencia para variantes.
// GetForUpdate solo tiene sentido dentro de una transacción: bloquea la fila
// de la variante (SELECT FOR UPDATE) hasta el Commit/Rollback.
type VariantRepository interface {
	Create(variant *entity.Variant) error
	GetByID(id string) (*entity.Variant, error)
	GetForUpdate(id string) (*entity.Variant, error)
	UpdateStock(id string, stock int) error
	ListByProduct(productID string) ([]*entity.Variant, error)
	ListWithProduct() ([]*entity.VariantWithProduct, error)
}
