package stock

import (
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// OverviewUseCase vista general del stock: todas las variantes con su producto.
type OverviewUseCase struct {
	variantRepo repository.VariantRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(variantRepo repository.VariantRepository) *OverviewUseCase {
	return &OverviewUseCase{variantRepo: variantRepo}
}

// List devuelve las variantes con el nombre de su producto, más recientes primero.
func (uc *OverviewUseCase) List() (*dto.StockOverviewResponse, error) {
	rows, err := uc.variantRepo.ListWithProduct()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantWithProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.VariantWithProductDTO{
			VariantResponse: dto.VariantResponse{
				ID:         r.ID,
				ProductID:  r.ProductID,
				SKU:        r.SKU,
				Color:      r.Color,
				Size:       r.Size,
				PriceCents: r.PriceCents,
				Stock:      r.Stock,
				MinStock:   r.MinStock,
				Active:     r.Active,
				CreatedAt:  r.CreatedAt,
				UpdatedAt:  r.UpdatedAt,
			},
			ProductName: r.ProductName,
		})
	}
	return &dto.StockOverviewResponse{Total: len(out), Variants: out}, nil
}
