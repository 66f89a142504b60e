package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// MovementRepository puerto de persistencia para el libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListRecent(limit int) ([]*entity.MovementDetail, error)
}
