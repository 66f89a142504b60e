package stock

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el asiento del
// movimiento y la actualización del stock: ambos escriben o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		variantRepo repository.VariantRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
