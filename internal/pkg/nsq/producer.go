package nsq

import (
	"encoding/json"
	"fmt"

	gonsq "github.com/nsqio/go-nsq"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *gonsq.Producer
}

// NewProducer creates a new NSQ producer connected to the given nsqd address
func NewProducer(address string) (*Producer, error) {
	config := gonsq.NewConfig()
	producer, err := gonsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish marshals the payload as JSON and publishes it to the topic
func (p *Producer) Publish(topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message for topic %s: %w", topic, err)
	}

	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}

	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
