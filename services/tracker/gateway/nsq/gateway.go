package nsq

import (
	"context"

	"github.com/transhub/shuttletrack/internal/pkg/models"
	internalnsq "github.com/transhub/shuttletrack/internal/pkg/nsq"
)

// TopicDriverLocation carries every driver position change for downstream
// consumers (analytics, trail archiving)
const TopicDriverLocation = "driver.location"

// Gateway publishes tracker events to NSQ
type Gateway struct {
	producer *internalnsq.Producer
}

// NewGateway creates an NSQ-backed tracker gateway
func NewGateway(producer *internalnsq.Producer) *Gateway {
	return &Gateway{producer: producer}
}

// PublishLocationEvent publishes a driver location change
func (g *Gateway) PublishLocationEvent(_ context.Context, event *models.LocationEvent) error {
	return g.producer.Publish(TopicDriverLocation, event)
}

// NoopGateway drops events, used when NSQ is disabled in config
type NoopGateway struct{}

// PublishLocationEvent discards the event
func (NoopGateway) PublishLocationEvent(context.Context, *models.LocationEvent) error {
	return nil
}
