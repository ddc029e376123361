package appServer

import (
	"context"
	"strings"
	"time"

	"github.com/ds124wfegd/word-blender/config"
	"github.com/ds124wfegd/word-blender/internal/pkg/kafka"
	"github.com/ds124wfegd/word-blender/internal/pkg/rabbitMQ"
	"github.com/ds124wfegd/word-blender/internal/pkg/redis"
	"github.com/ds124wfegd/word-blender/internal/service"
	"github.com/sirupsen/logrus"
)

const defaultConnectTimeout = 5 * time.Second

// newEventPublisher picks the configured sink and falls back to the log on any connection error.
func newEventPublisher(cfg config.EventsConfig) service.EventPublisher {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	log := logrus.WithField("driver", driver)

	var (
		publisher service.EventPublisher
		err       error
	)
	switch driver {
	case "", "log":
		return service.NewLogPublisher()
	case "kafka":
		publisher, err = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	case "rabbitmq":
		publisher, err = rabbitMQ.NewPublisher(rabbitMQ.Config{
			URL:       cfg.RabbitMQ.URL,
			QueueName: cfg.RabbitMQ.Queue,
		})
	case "redis":
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultConnectTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		publisher, err = redis.NewPublisher(ctx, redis.Config{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			Channel:      cfg.Redis.Channel,
			DialTimeout:  cfg.Redis.DialTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
	default:
		log.Warn("unknown events driver, using log")
		return service.NewLogPublisher()
	}

	if err != nil {
		log.WithError(err).Warn("event sink unavailable, using log")
		return service.NewLogPublisher()
	}
	log.Info("event sink connected")
	return publisher
}
