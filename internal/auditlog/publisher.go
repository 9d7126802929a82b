package auditlog

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher writes audit events to Kafka, best effort. A nil Publisher
// or a broker outage is never allowed to fail the enclosing request;
// errors are logged and dropped.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns nil when no brokers are configured, which
// callers treat as auditing disabled.
func NewPublisher(brokers, topic string) *Publisher {
	brokers = strings.TrimSpace(brokers)
	if brokers == "" {
		log.Println("ℹ️ Kafka not configured, audit events disabled")
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
	log.Printf("✅ Kafka audit publisher ready (topic %s)", topic)
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, ev Event) {
	if p == nil || p.writer == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("⚠️ Audit event marshal failed: %v", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(ev.RegistrationID),
		Value: body,
	}); err != nil {
		log.Printf("⚠️ Audit publish failed (%s): %v", ev.Action, err)
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
