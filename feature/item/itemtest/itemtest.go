// Package itemtest builds encoded inventory blobs for tests.
package itemtest

import (
	"bytes"
	"encoding/base64"

	"networth/core/nbt"

	"github.com/klauspost/compress/gzip"
)

// Stack returns a slot compound holding count items with the given ExtraAttributes.
func Stack(attrs nbt.Compound, count int) nbt.Compound {
	return nbt.Compound{
		"id":     int16(1),
		"Count":  int8(count),
		"Damage": int16(0),
		"tag": nbt.Compound{
			"display": nbt.Compound{
				"Name": attrs.String("id"),
				"Lore": nbt.List{"test lore"},
			},
			"ExtraAttributes": attrs,
		},
	}
}

// Empty returns an air slot.
func Empty() nbt.Compound {
	return nbt.Compound{}
}

// Blob encodes slots as base64(gzip(nbt)) in the inventory layout.
func Blob(slots ...nbt.Compound) string {
	list := make(nbt.List, 0, len(slots))
	for _, s := range slots {
		list = append(list, s)
	}

	var raw bytes.Buffer
	if err := nbt.Encode(&raw, "", nbt.Compound{"i": list}); err != nil {
		panic(err)
	}

	var zipped bytes.Buffer
	zw := gzip.NewWriter(&zipped)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(zipped.Bytes())
}

// ItemBytes encodes a single stack the way auction listings carry it.
func ItemBytes(attrs nbt.Compound, count int) string {
	return Blob(Stack(attrs, count))
}
