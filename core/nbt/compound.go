package nbt

import "networth/core/utils"

// Has reports whether key is present.
func (c Compound) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the string stored under key, or "" when absent or not a string.
func (c Compound) String(key string) string {
	s, _ := c[key].(string)
	return s
}

// Int returns the numeric value stored under key as an int.
// Absent or non-numeric values yield 0.
func (c Compound) Int(key string) int {
	return Int(c[key])
}

// Int converts a numeric tag value to int. Strings and other tags yield 0.
func Int(v any) int {
	switch v.(type) {
	case int8, int16, int32, int64, float32, float64:
		return utils.ToInt(v)
	default:
		return 0
	}
}

// Compound returns the nested compound stored under key, or nil.
func (c Compound) Compound(key string) Compound {
	sub, _ := c[key].(Compound)
	return sub
}

// List returns the list stored under key, or nil.
func (c Compound) List(key string) List {
	l, _ := c[key].(List)
	return l
}

// Strings returns the string elements of the list stored under key.
func (c Compound) Strings(key string) []string {
	l := c.List(key)
	out := make([]string, 0, len(l))
	for _, v := range l {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
