package server_test

import (
	"testing"

	"networth/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Configured", 4, 4 << 20},
		{"Zero", 0, 16 << 20},
		{"Negative", -1, 16 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_IsProtected(t *testing.T) {
	assert.False(t, server.Config{}.IsProtected())
	assert.True(t, server.Config{ApiKey: "secret"}.IsProtected())
}
