package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los tipos concretos de abajo cumplen errors.Is contra estas categorías.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPersistence        = errors.New("fallo de persistencia remota")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = fmt.Errorf("el email ya está registrado: %w", ErrDuplicate)
	ErrCheckoutInProgress = errors.New("hay un cobro en curso para este carrito")
)

// Motivos de validación del núcleo de transacciones.
var (
	ErrEmptyCart            = &ValidationError{Field: "items", Reason: "el carrito está vacío"}
	ErrInvalidQuantity      = &ValidationError{Field: "quantity", Reason: "cantidad inválida"}
	ErrInvalidDiscount      = &ValidationError{Field: "discount", Reason: "descuento inválido"}
	ErrMissingReason        = &ValidationError{Field: "reason", Reason: "el motivo es obligatorio"}
	ErrInvalidPaymentMethod = &ValidationError{Field: "payment_method", Reason: "método de pago inválido"}
	ErrInvalidMovementType  = &ValidationError{Field: "type", Reason: "tipo de movimiento inválido"}
)

// ValidationError entrada rechazada antes de cualquier mutación.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidation construye un ValidationError para un campo.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InsufficientStockError una línea de venta pide más unidades de las disponibles.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s: solicitado %d, disponible %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// NotFoundError id de producto/usuario/etc. que no se pudo resolver.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFound construye un NotFoundError.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError fallo del backend remoto. Se registra en log; el estado local manda.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia remota (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
