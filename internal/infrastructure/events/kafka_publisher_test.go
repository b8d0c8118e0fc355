package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/ports"
	"github.com/jhoicas/pos-api/internal/infrastructure/events"
	"github.com/jhoicas/pos-api/pkg/logger"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_ClaveYPayloadJSON(t *testing.T) {
	w := &fakeWriter{}
	p := events.NewKafkaPublisherWithWriter(w, logger.Nop())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), ports.Event{
		Type: ports.EventSaleCompleted, Key: "sale-1", OccurredAt: at,
		Payload: map[string]string{"total": "151.17"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "sale-1", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, ports.EventSaleCompleted, string(msg.Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "sale.completed", decoded["type"])
	assert.Equal(t, "151.17", decoded["payload"].(map[string]any)["total"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_ErrorDelWriter(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker caído")}
	p := events.NewKafkaPublisherWithWriter(w, nil)

	err := p.Publish(context.Background(), ports.Event{Type: ports.EventStockAdjusted, Key: "p1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock.adjusted")
}

func TestLogPublisher_NuncaFalla(t *testing.T) {
	p := events.NewLogPublisher(logger.Nop())
	assert.NoError(t, p.Publish(context.Background(), ports.Event{Type: ports.EventSaleCompleted, Key: "s"}))
}
