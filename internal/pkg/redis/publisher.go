package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr         string
	Password     string
	DB           int
	Channel      string
	DialTimeout  time.Duration
	WriteTimeout time.Duration
}

// Publisher broadcasts game events on a Redis pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.Channel == "" {
		return nil, fmt.Errorf("redis: empty channel")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}

	logrus.WithFields(logrus.Fields{"addr": cfg.Addr, "channel": cfg.Channel}).Info("connected to Redis")
	return &Publisher{client: client, channel: cfg.Channel}, nil
}

func (p *Publisher) Publish(ctx context.Context, event entity.GameEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redis: marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis: publish to %s: %w", p.channel, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
