package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

// ProductDetailResponse producto con sus variantes.
type ProductDetailResponse struct {
	Product  ProductResponse   `json:"product"`
	Variants []VariantResponse `json:"variants"`
}

// CreateVariantRequest body para POST /api/products/{id}/variants.
type CreateVariantRequest struct {
	SKU        string `json:"sku"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	PriceCents int64  `json:"price_cents" validate:"min=0"`
	Stock      int    `json:"stock" validate:"min=0"`
	MinStock   int    `json:"min_stock" validate:"min=0"`
}

// VariantResponse representación pública de una variante.
type VariantResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	SKU        string    `json:"sku,omitempty"`
	Color      string    `json:"color,omitempty"`
	Size       string    `json:"size,omitempty"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	MinStock   int       `json:"min_stock"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
