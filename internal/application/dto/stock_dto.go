package dto

import "time"

// AdjustStockRequest body para POST /api/stock/variants/{id}/movements.
type AdjustStockRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=IN OUT"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason"`
	Note     string `json:"note"`
}

// AdjustStockResponse resultado de un movimiento registrado.
type AdjustStockResponse struct {
	VariantID string `json:"variant_id"`
	Kind      string `json:"kind"`
	Quantity  int    `json:"quantity"`
	NewStock  int    `json:"new_stock"`
}

// MovementEntryDTO asiento del histórico enriquecido con variante, producto y actor.
type MovementEntryDTO struct {
	ID            int64     `json:"id"`
	VariantID     string    `json:"variant_id"`
	Kind          string    `json:"kind"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason,omitempty"`
	Note          string    `json:"note,omitempty"`
	SKU           string    `json:"sku,omitempty"`
	Color         string    `json:"color,omitempty"`
	Size          string    `json:"size,omitempty"`
	ProductName   string    `json:"product_name"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockOverviewResponse vista general del stock: variantes con su producto.
type StockOverviewResponse struct {
	Total    int                     `json:"total"`
	Variants []VariantWithProductDTO `json:"variants"`
}

// VariantWithProductDTO variante enriquecida con el nombre del producto.
type VariantWithProductDTO struct {
	VariantResponse
	ProductName string `json:"product_name"`
}

// MovementHistoryResponse respuesta del histórico reciente.
type MovementHistoryResponse struct {
	Total     int                `json:"total"`
	Movements []MovementEntryDTO `json:"movements"`
}
