package networth

import (
	"context"

	"networth/feature/item"

	"go.uber.org/zap"
)

// ItemValuation is the response for a single valued item.
type ItemValuation struct {
	Item item.Item `json:"item"`
	Appraisal
}

// Service exposes the engine to the HTTP layer.
type Service struct {
	engine *Engine
	logger *zap.Logger
}

// NewService creates a new networth service.
func NewService(engine *Engine, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		logger: logger,
	}
}

// Calculate values a player in a profile document.
func (s *Service) Calculate(ctx context.Context, profile []byte, playerID string) (*Networth, error) {
	return s.engine.Calculate(ctx, profile, playerID)
}

// ValueItem decodes a single encoded stack and appraises it.
func (s *Service) ValueItem(ctx context.Context, itemBytes string) (*ItemValuation, error) {
	it, err := s.engine.Codec().Item(itemBytes)
	if err != nil {
		return nil, err
	}
	return &ItemValuation{Item: it, Appraisal: s.engine.Appraise(ctx, it)}, nil
}
