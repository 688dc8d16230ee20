package utils

import (
	"strconv"

	"github.com/goccy/go-json"
)

// ToInt converts numeric tag values, JSON numbers and numeric strings to int.
// Floats are truncated toward zero; anything unparseable yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		f, _ := v.Float64()
		return int(f)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}
