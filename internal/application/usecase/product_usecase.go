package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProductUseCase gestión del catálogo: productos y sus variantes.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, variantRepo: variantRepo}
}

// Create crea un producto. El nombre es obligatorio (mínimo 2 caracteres).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados, más recientes primero.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Total: len(out), Products: out}, nil
}

// GetDetail devuelve el producto con sus variantes, o nil si no existe.
func (uc *ProductUseCase) GetDetail(id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	variants, err := uc.variantRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	vs := make([]dto.VariantResponse, 0, len(variants))
	for _, v := range variants {
		vs = append(vs, *toVariantResponse(v))
	}
	return &dto.ProductDetailResponse{Product: *toProductResponse(product), Variants: vs}, nil
}

// CreateVariant crea una variante bajo un producto existente.
// Devuelve ErrNotFound si el producto no existe y ErrDuplicate cuando choca
// el SKU o la combinación (producto, color, talla).
func (uc *ProductUseCase) CreateVariant(productID string, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.PriceCents < 0 || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	variant := &entity.Variant{
		ID:         uuid.New().String(),
		ProductID:  productID,
		SKU:        strings.TrimSpace(in.SKU),
		Color:      strings.TrimSpace(in.Color),
		Size:       strings.TrimSpace(in.Size),
		PriceCents: in.PriceCents,
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toVariantResponse(v *entity.Variant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		SKU:        v.SKU,
		Color:      v.Color,
		Size:       v.Size,
		PriceCents: v.PriceCents,
		Stock:      v.Stock,
		MinStock:   v.MinStock,
		Active:     v.Active,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
