package http

import (
	"context"

	"github.com/transhub/shuttletrack/internal/pkg/apiclient"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/rider"
)

// Gateway talks to the tracking backend over its REST API
type Gateway struct {
	client *apiclient.Client
}

// NewGateway creates an HTTP-backed rider gateway
func NewGateway(client *apiclient.Client) rider.RiderGW {
	return &Gateway{client: client}
}

// Login signs in with the rider credentials
func (g *Gateway) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := g.client.PostJSON(ctx, "/user/login", &models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Assignment returns the rider's active assignment
func (g *Gateway) Assignment(ctx context.Context) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := g.client.GetJSON(ctx, "/driver-assignment/user", &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DriverLocation returns the assigned driver's last-known snapshot
func (g *Gateway) DriverLocation(ctx context.Context) (*models.DriverLocationSnapshot, error) {
	var snapshot models.DriverLocationSnapshot
	if err := g.client.GetJSON(ctx, "/driver-assignment/user/driver-location", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
