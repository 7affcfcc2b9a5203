package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/apiclient"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/agent"
)

// Gateway talks to the tracking backend over its REST API
type Gateway struct {
	client *apiclient.Client
}

// NewGateway creates an HTTP-backed agent gateway
func NewGateway(client *apiclient.Client) agent.AgentGW {
	return &Gateway{client: client}
}

// Login signs in with the driver credentials
func (g *Gateway) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := g.client.PostJSON(ctx, "/driver/login", &models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublishLocation sends one position update
func (g *Gateway) PublishLocation(ctx context.Context, update *models.LocationUpdate) (*models.DriverLocationSnapshot, error) {
	var snapshot models.DriverLocationSnapshot
	if err := g.client.PostJSON(ctx, "/driver-location/update", update, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GoOffline tells the backend the driver stopped sharing
func (g *Gateway) GoOffline(ctx context.Context) error {
	return g.client.PostJSON(ctx, "/driver-location/offline", nil, nil)
}

// ActiveAssignment returns the driver's active assignment
func (g *Gateway) ActiveAssignment(ctx context.Context) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := g.client.GetJSON(ctx, "/driver-assignment/driver", &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateRiderStatus moves one rider between pending/picked/dropped
func (g *Gateway) UpdateRiderStatus(ctx context.Context, assignmentID uuid.UUID, req *models.UpdateRiderStatusRequest) (*models.Assignment, error) {
	var assignment models.Assignment
	path := "/driver-assignment/" + assignmentID.String() + "/user-status"
	if err := g.client.PatchJSON(ctx, path, req, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}
