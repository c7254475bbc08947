// Package kafka streams registry audit events to a Kafka topic while keeping
// a local store for the operator listing endpoint.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
)

// Message is the JSON value written for each event. The record key is the
// event subject so all events for one farm land on the same partition.
type Message struct {
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	ActorID   string    `json:"actor_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Height    uint64    `json:"height"`
	Amount    uint64    `json:"amount,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

func newMessage(e audit.Event) Message {
	return Message{
		Category:  string(e.Category),
		Timestamp: e.Timestamp.UTC(),
		Action:    e.Action,
		Subject:   e.Subject,
		ActorID:   e.ActorID,
		RequestID: e.RequestID,
		Height:    e.Height,
		Amount:    e.Amount,
		Reason:    e.Reason,
	}
}

// Event converts a decoded message back to an audit event.
func (m Message) Event() audit.Event {
	return audit.Event{
		Category:  audit.EventCategory(m.Category),
		Timestamp: m.Timestamp,
		Action:    m.Action,
		Subject:   m.Subject,
		ActorID:   m.ActorID,
		RequestID: m.RequestID,
		Height:    m.Height,
		Amount:    m.Amount,
		Reason:    m.Reason,
	}
}

// Store implements audit.Store by producing every event to Kafka before
// appending it to a local store. Reads are served from the local store.
type Store struct {
	client *kgo.Client
	topic  string
	local  audit.Store
}

// New connects a producer to brokers. The returned Store owns the client.
func New(brokers []string, topic string, local audit.Store) (*Store, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, errors.New("kafka audit store requires brokers and a topic")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka client: %w", err)
	}
	return &Store{client: client, topic: topic, local: local}, nil
}

// EnsureTopic creates the topic if it does not exist yet.
func (s *Store) EnsureTopic(ctx context.Context, partitions int32, replicationFactor int16) error {
	adm := kadm.NewClient(s.client)
	resp, err := adm.CreateTopics(ctx, partitions, replicationFactor, nil, s.topic)
	if err != nil {
		return fmt.Errorf("creating topic %s: %w", s.topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("creating topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// Ping checks that at least one broker answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	value, err := json.Marshal(newMessage(event))
	if err != nil {
		return fmt.Errorf("encoding audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Subject),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("producing audit event %s: %w", event.Action, err)
	}
	return s.local.Append(ctx, event)
}

func (s *Store) ListBySubject(ctx context.Context, subject string) ([]audit.Event, error) {
	return s.local.ListBySubject(ctx, subject)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	return s.local.ListRecent(ctx, limit)
}

// Close flushes pending records and closes the client.
func (s *Store) Close() {
	s.client.Close()
}
