package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of media.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	args := m.Called(ctx, ref)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
