package entity

import "time"

// Product agrupa variantes vendibles (color/talla). El stock se lleva por variante.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
