package ports

import (
	"context"
	"time"
)

// Tipos de evento emitidos tras confirmar una transacción.
const (
	EventSaleCompleted = "sale.completed"
	EventStockAdjusted = "stock.adjusted"
)

// Event mensaje de dominio publicado después del commit.
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"` // id de la venta o del producto; clave de partición
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// EventPublisher destino de eventos (Kafka o log). Best-effort: el llamador solo registra el error.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher descarta los eventos.
type NopPublisher struct{}

// Publish no hace nada.
func (NopPublisher) Publish(context.Context, Event) error { return nil }
