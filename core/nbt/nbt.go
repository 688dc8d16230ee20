package nbt

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
)

// Tag identifiers of the binary tag format.
const (
	TagEnd byte = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

const (
	// maxDepth bounds compound/list nesting.
	maxDepth = 512
	// maxLength bounds any single array, list or string length read from the stream.
	maxLength = 1 << 24
	// chunk bounds how far an array grows ahead of the bytes actually read.
	chunk = 4096
)

// ErrMalformed is returned for any structurally invalid tag stream.
var ErrMalformed = errors.New("malformed nbt data")

// Compound is a decoded compound tag. Values are one of:
// int8, int16, int32, int64, float32, float64, []byte, string, List, Compound, []int32, []int64.
type Compound map[string]any

// List is a decoded list tag. All elements share the same tag type.
type List []any

// Decode reads a single named root compound from r.
func Decode(r io.Reader) (string, Compound, error) {
	d := &decoder{r: bufio.NewReader(r)}

	tag, err := d.byte()
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading root tag: %v", ErrMalformed, err)
	}
	if tag != TagCompound {
		return "", nil, fmt.Errorf("%w: root tag is %d, expected compound", ErrMalformed, tag)
	}

	name, err := d.string()
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading root name: %v", ErrMalformed, err)
	}

	root, err := d.compound(0)
	if err != nil {
		return "", nil, err
	}
	return name, root, nil
}

type decoder struct {
	r   *bufio.Reader
	buf [8]byte
}

func (d *decoder) byte() (byte, error) {
	return d.r.ReadByte()
}

func (d *decoder) read(n int) ([]byte, error) {
	if _, err := io.ReadFull(d.r, d.buf[:n]); err != nil {
		return nil, err
	}
	return d.buf[:n], nil
}

func (d *decoder) int16() (int16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (d *decoder) int32() (int32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (d *decoder) int64() (int64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (d *decoder) length() (int, error) {
	n, err := d.int32()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > maxLength {
		return 0, fmt.Errorf("%w: invalid length %d", ErrMalformed, n)
	}
	return int(n), nil
}

func (d *decoder) string() (string, error) {
	b, err := d.read(2)
	if err != nil {
		return "", err
	}
	s, err := d.bytes(int(binary.BigEndian.Uint16(b)))
	if err != nil {
		return "", err
	}
	return decodeJavaString(s), nil
}

// bytes reads n bytes, growing the result only as data arrives so a large
// claimed length on a short stream fails before it is allocated.
func (d *decoder) bytes(n int) ([]byte, error) {
	b := make([]byte, 0, min(n, chunk))
	for len(b) < n {
		start := len(b)
		end := start + min(n-start, chunk)
		b = slices.Grow(b, end-start)[:end]
		if _, err := io.ReadFull(d.r, b[start:end]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (d *decoder) compound(depth int) (Compound, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, maxDepth)
	}

	c := make(Compound)
	for {
		tag, err := d.byte()
		if err != nil {
			return nil, fmt.Errorf("%w: reading tag type: %v", ErrMalformed, err)
		}
		if tag == TagEnd {
			return c, nil
		}

		name, err := d.string()
		if err != nil {
			return nil, fmt.Errorf("%w: reading tag name: %v", ErrMalformed, err)
		}

		v, err := d.payload(tag, depth+1)
		if err != nil {
			return nil, err
		}
		c[name] = v
	}
}

func (d *decoder) payload(tag byte, depth int) (any, error) {
	var (
		v   any
		err error
	)

	switch tag {
	case TagByte:
		var b byte
		b, err = d.byte()
		v = int8(b)
	case TagShort:
		v, err = d.int16()
	case TagInt:
		v, err = d.int32()
	case TagLong:
		v, err = d.int64()
	case TagFloat:
		var i int32
		i, err = d.int32()
		v = math.Float32frombits(uint32(i))
	case TagDouble:
		var i int64
		i, err = d.int64()
		v = math.Float64frombits(uint64(i))
	case TagByteArray:
		var n int
		if n, err = d.length(); err == nil {
			v, err = d.bytes(n)
		}
	case TagString:
		v, err = d.string()
	case TagList:
		return d.list(depth)
	case TagCompound:
		return d.compound(depth)
	case TagIntArray:
		var n int
		if n, err = d.length(); err == nil {
			a := make([]int32, 0, min(n, chunk))
			for i := 0; i < n && err == nil; i++ {
				var x int32
				if x, err = d.int32(); err == nil {
					a = append(a, x)
				}
			}
			v = a
		}
	case TagLongArray:
		var n int
		if n, err = d.length(); err == nil {
			a := make([]int64, 0, min(n, chunk))
			for i := 0; i < n && err == nil; i++ {
				var x int64
				if x, err = d.int64(); err == nil {
					a = append(a, x)
				}
			}
			v = a
		}
	default:
		return nil, fmt.Errorf("%w: unknown tag type %d", ErrMalformed, tag)
	}

	if err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: reading tag %d: %v", ErrMalformed, tag, err)
	}
	return v, nil
}

func (d *decoder) list(depth int) (List, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, maxDepth)
	}

	elem, err := d.byte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading list type: %v", ErrMalformed, err)
	}
	n, err := d.length()
	if err != nil {
		return nil, fmt.Errorf("%w: reading list length: %v", ErrMalformed, err)
	}
	if elem == TagEnd && n > 0 {
		return nil, fmt.Errorf("%w: non-empty list of end tags", ErrMalformed)
	}

	l := make(List, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		v, err := d.payload(elem, depth+1)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
	return l, nil
}
