package stock

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// AdjustStockUseCase registra movimientos de stock (IN/OUT) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único componente que muta el stock de una variante.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustInput entrada para registrar un movimiento de stock.
type AdjustInput struct {
	VariantID string
	Kind      string // IN | OUT
	Quantity  int    // > 0
	Reason    string
	Note      string
	ActorID   string
}

// Adjust valida la entrada, bloquea la fila de la variante dentro de una
// transacción, calcula el stock candidato y persiste asiento + stock como una
// unidad. Devuelve el stock resultante.
//
// Reglas:
//   - Kind fuera de {IN, OUT} o Quantity <= 0 -> ErrInvalidInput, sin tocar la DB.
//   - Variante inexistente -> ErrNotFound.
//   - OUT que dejaría stock negativo -> ErrInsufficientStock, sin escrituras.
//
// Movimientos sobre variantes distintas no se serializan entre sí: el bloqueo
// es por fila. Cualquier fallo de almacenamiento revierte ambas escrituras
// (el Rollback es el camino por defecto del TxRunner).
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustInput) (int, error) {
	// Validación antes de tomar ningún bloqueo
	if input.Kind != entity.MovementKindIN && input.Kind != entity.MovementKindOUT {
		return 0, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if input.VariantID == "" {
		return 0, domain.ErrInvalidInput
	}

	now := time.Now()
	var newStock int

	err := uc.txRunner.Run(ctx, func(
		variantRepo repository.VariantRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila de la variante para que dos operadores no muevan
		// el mismo stock a la vez
		variant, err := variantRepo.GetForUpdate(input.VariantID)
		if err != nil {
			return err
		}
		if variant == nil {
			return domain.ErrNotFound
		}

		candidate := variant.Stock
		switch input.Kind {
		case entity.MovementKindIN:
			candidate += input.Quantity
		case entity.MovementKindOUT:
			candidate -= input.Quantity
			if candidate < 0 {
				return domain.ErrInsufficientStock
			}
		}

		// Asiento en el libro + actualización del stock, misma transacción
		mov := &entity.Movement{
			VariantID: input.VariantID,
			Kind:      input.Kind,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			Note:      input.Note,
			CreatedBy: input.ActorID,
			CreatedAt: now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		if err := variantRepo.UpdateStock(input.VariantID, candidate); err != nil {
			return err
		}
		newStock = candidate
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}
