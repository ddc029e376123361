package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const dialTimeout = 10 * time.Second

// Producer writes game events to a single Kafka topic.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer checks that the first broker is reachable and makes sure the topic exists.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka: empty topic")
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka: connect to %s: %w", brokers[0], err)
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		logrus.WithError(err).WithField("topic", topic).Warn("could not create topic (might already exist)")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logrus.WithFields(logrus.Fields{
		"brokers": strings.Join(brokers, ","),
		"topic":   topic,
	}).Info("connected to Kafka")
	return &Producer{writer: writer, topic: topic}, nil
}

func (p *Producer) Publish(ctx context.Context, event entity.GameEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write to %s: %w", p.topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// newMessage keys events by type so blends and images land on stable partitions.
func newMessage(event entity.GameEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.Type),
		Value: value,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}, nil
}
