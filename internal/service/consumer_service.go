package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"kinhdich-rag-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventForwarder is the outbound analytics boundary, satisfied by the
// NATS JetStream publisher.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains QUERY_PROCESSED events off the in-process bus
// and forwards them to the analytics stream. It runs for the lifetime of
// the process; losing an event is acceptable, blocking a response is not.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	forwarder EventForwarder
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	forwarder EventForwarder,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		forwarder: forwarder,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal query event: %v", err)
		msg.Ack() // malformed, retrying will not help
		return
	}

	if cs.forwarder == nil {
		msg.Ack()
		return
	}

	event := events.BaseEvent{
		Type:       events.QueryProcessedType,
		Data:       payload,
		OccurredAt: time.Now(),
	}

	sendCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := cs.forwarder.Publish(sendCtx, event); err != nil {
		// Analytics only: log and drop rather than retry forever.
		log.Printf("[ERROR] Failed to forward query event: %v", err)
	}
	msg.Ack()
}
