package service

import (
	"context"
	"encoding/json"

	"edge-ai-be/internal/pkg/logger"
	"edge-ai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event topic and writes an audit
// trail through the structured logger. It is the only subscriber today.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.log.Error("events", "failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		// Ack malformed payloads to avoid infinite redelivery.
		msg.Ack()
		return
	}

	cs.log.Info("events", evt.Type, map[string]interface{}{
		"data":        evt.Data,
		"occurred_at": evt.OccurredAt,
	})
	msg.Ack()
}
