package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un asiento del libro. El id BIGSERIAL lo asigna la DB y se
// devuelve en movement.ID.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO stock_movements (variant_id, kind, quantity, reason, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	err := r.q.QueryRow(context.Background(), query,
		movement.VariantID, movement.Kind, movement.Quantity,
		reason, note, createdBy, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListRecent lista los últimos movimientos con variante, producto y actor.
// LEFT JOIN sobre users: el asiento sobrevive al borrado del actor.
// Orden total: fecha descendente y, a igual fecha, id descendente.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.MovementDetail, error) {
	query := `
		SELECT m.id, m.variant_id, m.kind, m.quantity, m.reason, m.note, m.created_by, m.created_at,
		       v.sku, v.color, v.size,
		       p.name AS product_name,
		       u.name AS created_by_name
		FROM stock_movements m
		JOIN product_variants v ON v.id = m.variant_id
		JOIN products p ON p.id = v.product_id
		LEFT JOIN users u ON u.id = m.created_by
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementDetail
	for rows.Next() {
		var d entity.MovementDetail
		var reason, note, createdBy, sku, createdByName *string
		if err := rows.Scan(&d.ID, &d.VariantID, &d.Kind, &d.Quantity, &reason, &note, &createdBy, &d.CreatedAt,
			&sku, &d.Color, &d.Size, &d.ProductName, &createdByName); err != nil {
			return nil, fmt.Errorf("scan movement detail: %w", err)
		}
		if reason != nil {
			d.Reason = *reason
		}
		if note != nil {
			d.Note = *note
		}
		if createdBy != nil {
			d.CreatedBy = *createdBy
		}
		if sku != nil {
			d.SKU = *sku
		}
		if createdByName != nil {
			d.CreatedByName = *createdByName
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
