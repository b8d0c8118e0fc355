package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // fija el nivel exacto
)

// IsValidMovementType indica si t es in, out o adjustment.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment:
		return true
	}
	return false
}

// StockMovement registro de auditoría de un cambio de stock. Inmutable.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // in, out, adjustment
	Quantity  int    // delta con signo, antes de recortar en 0
	Reason    string
	UserID    string
	CreatedAt time.Time
}
