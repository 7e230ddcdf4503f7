package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/sentiment-detector/internal/clients"
	"github.com/spacesedan/sentiment-detector/internal/sentiment"
)

type AnalysisEvent struct {
	SessionID  string                   `json:"session_id"`
	Sequence   int                      `json:"sequence"`
	Text       string                   `json:"text"`
	Label      sentiment.Label          `json:"label"`
	Scores     sentiment.ScoreBreakdown `json:"scores"`
	AnalyzedAt time.Time                `json:"analyzed_at"`
}

// Producer is satisfied by *kafka.Producer.
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

// KafkaFeed publishes completed analyses to a topic, keyed by session so a
// session's events stay ordered within one partition.
type KafkaFeed struct {
	producer Producer
	topic    string
	backoff  time.Duration
	sleep    func(time.Duration)
}

func NewKafkaFeed(producer Producer, topic string) *KafkaFeed {
	return &KafkaFeed{
		producer: producer,
		topic:    topic,
		backoff:  clients.INITIAL_BACKOFF,
		sleep:    time.Sleep,
	}
}

func (f *KafkaFeed) Publish(event AnalysisEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("[KafkaFeed] failed to marshal event: %w", err)
	}

	topic := f.topic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.SessionID),
		Value:          jsonData,
	}

	// A full local queue drains on its own; wait a little longer each time.
	backoff := f.backoff
	for i := 0; i < 3; i++ {
		err = f.producer.Produce(msg, nil)
		if err == nil {
			break
		}
		slog.Warn("[KafkaFeed] Failed to produce message, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		if i < 2 {
			f.sleep(backoff)
			backoff = min(backoff*2, clients.MAX_BACKOFF)
		}
	}
	if err != nil {
		return fmt.Errorf("[KafkaFeed] failed to produce after 3 attempts: %w", err)
	}

	slog.Debug("[KafkaFeed] Published analysis",
		slog.String("topic", f.topic),
		slog.String("session_id", event.SessionID),
		slog.Int("sequence", event.Sequence))
	return nil
}
