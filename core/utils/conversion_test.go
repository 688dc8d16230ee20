package utils

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Byte", int8(-5), -5},
		{"Short", int16(300), 300},
		{"Int", int32(70000), 70000},
		{"Long", int64(1 << 33), 1 << 33},
		{"Float", 2.9, 2},
		{"JSONNumber", json.Number("12"), 12},
		{"JSONFloatNumber", json.Number("12.5"), 12},
		{"String", "42", 42},
		{"Garbage", "forty", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}
