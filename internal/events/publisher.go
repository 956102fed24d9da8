// Package events publishes resume change notifications after successful writes.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

const (
	Created = "created"
	Updated = "updated"
	Deleted = "deleted"
)

// Event describes one write against a resume resource.
type Event struct {
	Resource string
	Action   string
	ID       int64
	Payload  any
}

// Key is the message key, e.g. "person-created-1".
func (e Event) Key() string {
	return fmt.Sprintf("%s-%s-%d", e.Resource, e.Action, e.ID)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(struct {
		Resource string `json:"resource"`
		Action   string `json:"action"`
		ID       int64  `json:"id"`
		Data     any    `json:"data,omitempty"`
	}{event.Resource, event.Action, event.ID, event.Payload})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}
