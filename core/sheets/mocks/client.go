package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
)

// Client is a mock implementation of sheets.Client
type Client struct {
	mock.Mock
}

func (m *Client) ReadRows(ctx context.Context, sheetName string) ([]sheets.Row, error) {
	args := m.Called(ctx, sheetName)
	if rows, ok := args.Get(0).([]sheets.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateCell(ctx context.Context, sheetName string, row, col int, value string) error {
	args := m.Called(ctx, sheetName, row, col, value)
	return args.Error(0)
}

func (m *Client) AppendRow(ctx context.Context, sheetName string, values []string) error {
	args := m.Called(ctx, sheetName, values)
	return args.Error(0)
}
