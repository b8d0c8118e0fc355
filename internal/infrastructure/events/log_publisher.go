package events

import (
	"context"

	"github.com/jhoicas/pos-api/internal/application/ports"
	"github.com/jhoicas/pos-api/pkg/logger"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher escribe los eventos en el log estructurado (sin Kafka configurado).
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher construye el publicador.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	if log == nil {
		log = logger.Nop()
	}
	return &LogPublisher{log: log.Component("events")}
}

func (p *LogPublisher) Publish(_ context.Context, event ports.Event) error {
	p.log.Info().
		Str("type", event.Type).
		Str("key", event.Key).
		Time("occurred_at", event.OccurredAt).
		Interface("payload", event.Payload).
		Msg("evento")
	return nil
}
