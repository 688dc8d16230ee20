package integrity

import (
	"testing"

	"networth/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "test-bucket", "reference/", nil, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoader_NoStorage(t *testing.T) {
	feature := NewFeature(nil, "", "reference/", nil, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
