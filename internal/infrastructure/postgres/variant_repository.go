package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL (usable con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador de variantes. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, product_id, sku, color, size, price_cents, stock, min_stock, active, created_at, updated_at`

// Create persiste una variante nueva. SKU duplicado o combinación
// (producto, color, talla) repetida devuelven ErrDuplicate.
func (r *VariantRepo) Create(variant *entity.Variant) error {
	query := `
		INSERT INTO product_variants (id, product_id, sku, color, size, price_cents, stock, min_stock, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	sku := (*string)(nil)
	if variant.SKU != "" {
		sku = &variant.SKU
	}
	_, err := r.q.Exec(context.Background(), query,
		variant.ID, variant.ProductID, sku, variant.Color, variant.Size,
		variant.PriceCents, variant.Stock, variant.MinStock, variant.Active,
		variant.CreatedAt, variant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// GetByID obtiene una variante por ID, o nil si no existe.
func (r *VariantRepo) GetByID(id string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE id = $1`
	return r.scanOne(query, id, "get variant")
}

// GetForUpdate obtiene la variante y bloquea su fila (SELECT FOR UPDATE).
// Debe usarse dentro de una transacción; el bloqueo vive hasta Commit/Rollback.
// Devuelve nil si la variante no existe.
func (r *VariantRepo) GetForUpdate(id string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get variant for update")
}

func (r *VariantRepo) scanOne(query, id, op string) (*entity.Variant, error) {
	var v entity.Variant
	var sku *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductID, &sku, &v.Color, &v.Size, &v.PriceCents,
		&v.Stock, &v.MinStock, &v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sku != nil {
		v.SKU = *sku
	}
	return &v, nil
}

// UpdateStock fija el stock de la variante (solo desde el motor de movimientos,
// con la fila ya bloqueada).
func (r *VariantRepo) UpdateStock(id string, stock int) error {
	query := `UPDATE product_variants SET stock = $1, updated_at = now() WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, stock, id)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct lista las variantes de un producto, más recientes primero.
func (r *VariantRepo) ListByProduct(productID string) ([]*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE product_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		var sku *string
		if err := rows.Scan(&v.ID, &v.ProductID, &sku, &v.Color, &v.Size, &v.PriceCents,
			&v.Stock, &v.MinStock, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		if sku != nil {
			v.SKU = *sku
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ListWithProduct lista todas las variantes con el nombre de su producto
// (vista de stock), más recientes primero.
func (r *VariantRepo) ListWithProduct() ([]*entity.VariantWithProduct, error) {
	query := `
		SELECT v.id, v.product_id, v.sku, v.color, v.size, v.price_cents, v.stock, v.min_stock, v.active, v.created_at, v.updated_at,
		       p.name AS product_name
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		ORDER BY v.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list variants with product: %w", err)
	}
	defer rows.Close()
	var list []*entity.VariantWithProduct
	for rows.Next() {
		var v entity.VariantWithProduct
		var sku *string
		if err := rows.Scan(&v.ID, &v.ProductID, &sku, &v.Color, &v.Size, &v.PriceCents,
			&v.Stock, &v.MinStock, &v.Active, &v.CreatedAt, &v.UpdatedAt, &v.ProductName); err != nil {
			return nil, fmt.Errorf("scan variant with product: %w", err)
		}
		if sku != nil {
			v.SKU = *sku
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
