package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alimikegami/point-of-sales/catalog-service/config"
	circuitbreaker "github.com/alimikegami/point-of-sales/catalog-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	calls    int
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	return nil
}

func TestPublisherPublish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := CreateEventPublisher(writer, circuitbreaker.CreateCircuitBreaker("test"))

	err := publisher.Publish(context.Background(), dto.EventProductDeleted, "abc", dto.DeletedResource{ID: "abc"})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("abc"), writer.messages[0].Key)

	var msg struct {
		EventID   string              `json:"event_id"`
		EventType string              `json:"event_type"`
		Data      dto.DeletedResource `json:"data"`
	}
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &msg))
	assert.Len(t, msg.EventID, 26)
	assert.Equal(t, dto.EventProductDeleted, msg.EventType)
	assert.Equal(t, "abc", msg.Data.ID)
}

func TestPublisherOpensCircuit(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := CreateEventPublisher(writer, circuitbreaker.CreateCircuitBreaker("test"))

	for i := 0; i < 3; i++ {
		assert.Error(t, publisher.Publish(context.Background(), dto.EventCategoryCreated, "k", nil))
	}

	err := publisher.Publish(context.Background(), dto.EventCategoryCreated, "k", nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, writer.calls)
}

type blockingWriter struct{}

func (blockingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingWriter) Close() error {
	return nil
}

func TestPublisherBoundsSlowBroker(t *testing.T) {
	publisher := CreateEventPublisher(blockingWriter{}, circuitbreaker.CreateCircuitBreaker("test"))
	publisher.timeout = 20 * time.Millisecond

	start := time.Now()
	err := publisher.Publish(context.Background(), dto.EventProductUpdated, "k", nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCreateKafkaWriter(t *testing.T) {
	writer := CreateKafkaWriter(&config.Config{KafkaConfig: config.KafkaConfig{
		BrokerAddress: "localhost:9092",
		BrokerTopic:   "catalog-events",
	}})
	defer writer.Close()

	assert.Equal(t, "catalog-events", writer.Topic)
	assert.Equal(t, 2, writer.MaxAttempts)
	assert.Equal(t, publishTimeout, writer.WriteTimeout)
}
