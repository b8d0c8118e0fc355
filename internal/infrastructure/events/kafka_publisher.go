package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/pos-api/internal/application/ports"
	"github.com/jhoicas/pos-api/pkg/logger"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// MessageWriter subconjunto de *kafka.Writer que usa el publicador.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica eventos JSON en un topic; la clave es el id de venta o producto.
type KafkaPublisher struct {
	writer MessageWriter
	log    *logger.Logger
}

// NewKafkaPublisher crea el writer contra los brokers dados.
func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	if log == nil {
		log = logger.Nop()
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 200 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}
	return NewKafkaPublisherWithWriter(w, log)
}

// NewKafkaPublisherWithWriter permite inyectar otro writer (tests).
func NewKafkaPublisherWithWriter(w MessageWriter, log *logger.Logger) *KafkaPublisher {
	if log == nil {
		log = logger.Nop()
	}
	return &KafkaPublisher{writer: w, log: log.Component("events")}
}

// Publish serializa el evento y lo escribe con headers de tipo.
func (p *KafkaPublisher) Publish(ctx context.Context, event ports.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", event.Type, err)
	}
	msg := kafka.Message{
		Key:     []byte(event.Key),
		Value:   value,
		Time:    event.OccurredAt,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka %s: %w", event.Type, err)
	}
	p.log.Debug().Str("type", event.Type).Str("key", event.Key).Msg("evento publicado")
	return nil
}

// Close vacía el buffer del writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
