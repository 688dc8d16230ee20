package nbt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
)

// Encode writes c as a named root compound.
// Keys are written in sorted order so output is deterministic.
func Encode(w io.Writer, name string, c Compound) error {
	e := &encoder{w: bufio.NewWriter(w)}
	e.byte(TagCompound)
	e.string(name)
	e.compound(c)
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) byte(b byte) {
	e.write([]byte{b})
}

func (e *encoder) uint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.write(b[:])
}

func (e *encoder) uint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.write(b[:])
}

func (e *encoder) uint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.write(b[:])
}

func (e *encoder) string(s string) {
	b := encodeJavaString(s)
	if len(b) > math.MaxUint16 {
		e.fail(fmt.Errorf("string of %d bytes is too long", len(b)))
		return
	}
	e.uint16(uint16(len(b)))
	e.write(b)
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *encoder) compound(c Compound) {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tag, err := tagOf(c[k])
		if err != nil {
			e.fail(fmt.Errorf("key %q: %w", k, err))
			return
		}
		e.byte(tag)
		e.string(k)
		e.payload(c[k])
	}
	e.byte(TagEnd)
}

func (e *encoder) list(l List) {
	if len(l) == 0 {
		e.byte(TagEnd)
		e.uint32(0)
		return
	}

	elem, err := tagOf(l[0])
	if err != nil {
		e.fail(err)
		return
	}
	e.byte(elem)
	e.uint32(uint32(len(l)))
	for _, v := range l {
		if tag, _ := tagOf(v); tag != elem {
			e.fail(fmt.Errorf("mixed list element types %d and %d", elem, tag))
			return
		}
		e.payload(v)
	}
}

func (e *encoder) payload(v any) {
	switch t := v.(type) {
	case int8:
		e.byte(byte(t))
	case int16:
		e.uint16(uint16(t))
	case int32:
		e.uint32(uint32(t))
	case int64:
		e.uint64(uint64(t))
	case float32:
		e.uint32(math.Float32bits(t))
	case float64:
		e.uint64(math.Float64bits(t))
	case []byte:
		e.uint32(uint32(len(t)))
		e.write(t)
	case string:
		e.string(t)
	case List:
		e.list(t)
	case Compound:
		e.compound(t)
	case []int32:
		e.uint32(uint32(len(t)))
		for _, i := range t {
			e.uint32(uint32(i))
		}
	case []int64:
		e.uint32(uint32(len(t)))
		for _, i := range t {
			e.uint64(uint64(i))
		}
	}
}

func tagOf(v any) (byte, error) {
	switch v.(type) {
	case int8:
		return TagByte, nil
	case int16:
		return TagShort, nil
	case int32:
		return TagInt, nil
	case int64:
		return TagLong, nil
	case float32:
		return TagFloat, nil
	case float64:
		return TagDouble, nil
	case []byte:
		return TagByteArray, nil
	case string:
		return TagString, nil
	case List:
		return TagList, nil
	case Compound:
		return TagCompound, nil
	case []int32:
		return TagIntArray, nil
	case []int64:
		return TagLongArray, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
