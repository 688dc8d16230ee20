package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of feed.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if body, ok := args.Get(0).([]byte); ok {
		return body, args.Error(1)
	}
	return nil, args.Error(1)
}
