package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher fans system events out over an in-process pub/sub channel.
type Publisher struct {
	topic     string
	publisher message.Publisher
}

func NewPublisher(topic string, publisher message.Publisher) *Publisher {
	return &Publisher{
		topic:     topic,
		publisher: publisher,
	}
}

func (p *Publisher) Publish(ctx context.Context, event BaseEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.publisher.Publish(p.topic, msg)
}
