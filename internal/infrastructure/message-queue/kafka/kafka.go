package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/catalog-service/config"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// publishTimeout bounds the latency one publish adds to a request.
const publishTimeout = 2 * time.Second

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           publishTimeout,
		MaxAttempts:            2,
		WriteBackoffMax:        100 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// Publisher writes catalog events keyed by resource id so that every event of
// one resource lands on the same partition.
type Publisher struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker[[]byte]
	timeout time.Duration
}

func CreateEventPublisher(writer MessageWriter, breaker *gobreaker.CircuitBreaker[[]byte]) *Publisher {
	return &Publisher{writer: writer, breaker: breaker, timeout: publishTimeout}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	kafkaMsg := dto.KafkaMessage{
		EventID:    ulid.Make().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err = p.breaker.Execute(func() ([]byte, error) {
		return nil, p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to write Kafka message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
