package events

import (
	"context"
	"time"

	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	DocumentEventChannel = "document:events"
)

type EventPublisher struct {
	redisClient *redis.Client
}

func NewEventPublisher(redisClient *redis.Client) *EventPublisher {
	return &EventPublisher{redisClient: redisClient}
}

func (p *EventPublisher) PublishDocumentEvent(ctx context.Context, event *models.DocumentEvent) error {
	event.Timestamp = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.redisClient.Publish(ctx, DocumentEventChannel, string(data)).Err(); err != nil {
		return err
	}
	logging.Logger.Debug("published document event", "type", event.Type, "uri", event.DocumentURI)
	return nil
}

func (p *EventPublisher) SubscribeDocumentEvents(ctx context.Context) (<-chan *models.DocumentEvent, error) {
	pubsub := p.redisClient.Subscribe(ctx, DocumentEventChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		logging.Logger.Error("fail SubscribeDocumentEvents", "error", err)
		_ = pubsub.Close()
		return nil, err
	}
	ch := make(chan *models.DocumentEvent, 100)

	go func() {
		defer close(ch)
		defer func() {
			if err := pubsub.Close(); err != nil {
				logging.Logger.Error("fail closing subscription", "error", err)
			}
		}()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event models.DocumentEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logging.Logger.Error("failed to unmarshal event", "error", err)
					continue
				}
				select {
				case ch <- &event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
