package tracker

import (
	"context"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/transhub/shuttletrack/services/tracker TrackerGW

// TrackerGW publishes location events to the message broker
type TrackerGW interface {
	PublishLocationEvent(ctx context.Context, event *models.LocationEvent) error
}
