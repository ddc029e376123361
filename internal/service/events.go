package service

import (
	"context"
	"sync"
	"time"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultEventTimeout = 5 * time.Second

// EventEmitter hands game events to a publisher off the request path.
// A nil *EventEmitter drops every event.
type EventEmitter struct {
	publisher EventPublisher
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewEventEmitter(publisher EventPublisher, timeout time.Duration) *EventEmitter {
	if timeout <= 0 {
		timeout = defaultEventTimeout
	}
	return &EventEmitter{publisher: publisher, timeout: timeout}
}

func (e *EventEmitter) emit(kind string, words []string, result, style string) {
	if e == nil || e.publisher == nil {
		return
	}

	event := entity.GameEvent{
		ID:        uuid.NewString(),
		Type:      kind,
		Words:     words,
		Result:    result,
		Style:     style,
		CreatedAt: time.Now().UTC(),
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		if err := e.publisher.Publish(ctx, event); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"event_id":   event.ID,
				"event_type": event.Type,
			}).Warn("failed to publish game event")
		}
	}()
}

// Wait blocks until every publish started so far has returned.
func (e *EventEmitter) Wait() {
	if e == nil {
		return
	}
	e.wg.Wait()
}

type logPublisher struct{}

// NewLogPublisher writes events to the application log only.
func NewLogPublisher() EventPublisher {
	return logPublisher{}
}

func (logPublisher) Publish(_ context.Context, event entity.GameEvent) error {
	logrus.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"words":      event.Words,
		"result":     event.Result,
		"style":      event.Style,
	}).Info("game event")
	return nil
}

func (logPublisher) Close() error {
	return nil
}
