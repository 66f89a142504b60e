package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindIN  = "IN"  // entrada
	MovementKindOUT = "OUT" // salida
)

// Movement es un asiento del libro de movimientos: inmutable una vez creado,
// nunca se actualiza ni se borra. El ID es un BIGSERIAL, por lo que el orden
// de inserción es total (desempate del histórico).
type Movement struct {
	ID        int64
	VariantID string
	Kind      string // IN, OUT
	Quantity  int    // siempre > 0; el signo lo da Kind
	Reason    string
	Note      string
	CreatedBy string // UserID; vacío si el actor fue eliminado
	CreatedAt time.Time
}

// MovementDetail asiento enriquecido para el histórico: variante, producto y
// nombre del actor (vacío si el usuario ya no existe).
type MovementDetail struct {
	Movement
	SKU           string
	Color         string
	Size          string
	ProductName   string
	CreatedByName string
}
