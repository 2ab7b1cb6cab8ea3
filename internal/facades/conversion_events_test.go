package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeKafkaWriter) Close() error {
	w.closed = true
	return nil
}

func TestConversionEventsKafkaFacade_Publish(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewConversionEventsKafkaFacade(writer)

	event := models.ConversionEvent{
		EventID:      "evt-1",
		UserID:       "user-1",
		FromCurrency: "INR",
		ToCurrency:   "USD",
		Amount:       100,
		Rate:         0.012,
		Result:       1.2,
		Timestamp:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, facade.Publish(context.Background(), event))
	require.Len(t, writer.msgs, 1)
	assert.Equal(t, "evt-1", string(writer.msgs[0].Key))

	var decoded models.ConversionEvent
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, facade.Close())
	assert.True(t, writer.closed)
}

func TestConversionEventsKafkaFacade_PublishError(t *testing.T) {
	writer := &fakeKafkaWriter{err: errors.New("broker down")}
	facade := NewConversionEventsKafkaFacade(writer)

	err := facade.Publish(context.Background(), models.ConversionEvent{EventID: "evt-1"})
	assert.ErrorContains(t, err, "broker down")
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(" localhost:9092, ,kafka:9092", "conversions")
	assert.Equal(t, "conversions", w.Topic)
	assert.Equal(t, "tcp,tcp", w.Addr.Network())
	assert.Equal(t, "localhost:9092,kafka:9092", w.Addr.String())

	single := NewKafkaWriter("localhost:9092", "conversions")
	assert.Equal(t, "tcp", single.Addr.Network())
	assert.Equal(t, "localhost:9092", single.Addr.String())
}
