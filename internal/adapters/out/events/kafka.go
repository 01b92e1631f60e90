package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka writes events to one topic, keyed by locker id so the events of a
// locker stay in order within a partition.
type Kafka struct {
	writer MessageWriter
}

// NewKafkaWriter builds a writer for a comma separated broker list.
func NewKafkaWriter(brokersCSV, topic string) (*kafka.Writer, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("kafka brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("kafka topic")
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, nil
}

func NewKafka(writer MessageWriter) (*Kafka, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("kafka writer")
	}
	return &Kafka{writer: writer}, nil
}

func (k *Kafka) Publish(ctx context.Context, event ports.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(partitionKey(event)),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
			{Key: "id", Value: []byte(event.ID)},
		},
	})
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

func partitionKey(event ports.Event) string {
	if id, ok := event.Payload["locker_id"]; ok {
		return fmt.Sprint(id)
	}
	return event.ID
}
