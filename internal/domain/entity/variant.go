package entity

import "time"

// Variant es la configuración vendible de un producto (color/talla) contra la
// que se lleva el stock. Unicidad: SKU global (si existe) y (product_id, color, size).
// Stock nunca es negativo; solo el motor de movimientos lo muta.
type Variant struct {
	ID         string
	ProductID  string
	SKU        string // opcional; único global cuando no está vacío
	Color      string
	Size       string
	PriceCents int64 // precio en centavos, sin decimales
	Stock      int
	MinStock   int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VariantWithProduct fila de variante enriquecida con el nombre del producto
// (vista de stock del back-office).
type VariantWithProduct struct {
	Variant
	ProductName string
}
