package stock

import (
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// HistoryMaxLimit tope (y valor por defecto) de asientos devueltos por el histórico.
const HistoryMaxLimit = 200

// HistoryUseCase lectura del histórico reciente de movimientos.
// Solo lee: nunca bloquea ni es bloqueado por los registros de movimientos
// más allá de la consistencia de lectura normal de la DB.
type HistoryUseCase struct {
	movementRepo repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movementRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo}
}

// ListRecent devuelve los últimos movimientos (variante + producto + actor),
// ordenados por fecha descendente y, a igual fecha, por id descendente
// (orden de inserción). limit <= 0 o > HistoryMaxLimit se normaliza a 200.
func (uc *HistoryUseCase) ListRecent(limit int) ([]dto.MovementEntryDTO, error) {
	if limit <= 0 || limit > HistoryMaxLimit {
		limit = HistoryMaxLimit
	}
	details, err := uc.movementRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementEntryDTO, 0, len(details))
	for _, d := range details {
		out = append(out, dto.MovementEntryDTO{
			ID:            d.ID,
			VariantID:     d.VariantID,
			Kind:          d.Kind,
			Quantity:      d.Quantity,
			Reason:        d.Reason,
			Note:          d.Note,
			SKU:           d.SKU,
			Color:         d.Color,
			Size:          d.Size,
			ProductName:   d.ProductName,
			CreatedByName: d.CreatedByName,
			CreatedAt:     d.CreatedAt,
		})
	}
	return out, nil
}
