package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
)

// Client is a mock implementation of ads.Client
type Client struct {
	mock.Mock
}

func (m *Client) Mutate(ctx context.Context, customerID string, ops []ads.Operation) (*ads.MutateResponse, error) {
	args := m.Called(ctx, customerID, ops)
	if resp, ok := args.Get(0).(*ads.MutateResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}
