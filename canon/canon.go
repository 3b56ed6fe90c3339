// Package canon converts arbitrary nested elements into immutable,
// comparable canonical keys.
//
// A canonical key is an order-preserving structural encoding of a value:
// nested sequences (slices, arrays, and container types implementing
// [Sequencer]) become ordered tuples of their elements' keys, while
// scalars pass through tagged by kind. Strings are treated as atomic
// scalars, never as sequences of runes. Two values receive the same Key
// exactly when they are structurally equal under this encoding, which is
// what makes keys usable for set algebra and frequency counting over
// heterogeneous elements.
//
// Values with no stable structural identity (maps, functions, channels,
// non-comparable structs) are rejected with [ErrNotCanonicalizable].
package canon

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ErrNotCanonicalizable is returned for elements that cannot be reduced
// to a canonical key.
var ErrNotCanonicalizable = errors.New("canon: element cannot be canonicalized")

// Sequencer is implemented by container types whose elements should be
// canonicalized in order, as a tuple.
type Sequencer interface {
	// Elements returns the contained elements front to back.
	Elements() []any
}

// Key is the immutable canonical form of an element.
// Keys are comparable and can be used directly as map keys.
type Key struct {
	repr string
}

// String returns the key's canonical encoding.
func (k Key) String() string { return k.repr }

// IsZero reports whether k is the zero Key (produced by no value).
func (k Key) IsZero() bool { return k.repr == "" }

// Digest returns a stable 64-bit digest of the key, derived from a
// BLAKE2b-256 hash of the canonical encoding.
func (k Key) Digest() uint64 {
	sum := blake2b.Sum256([]byte(k.repr))
	return binary.BigEndian.Uint64(sum[:8])
}

// Canonicalize reduces v to its canonical Key.
func Canonicalize(v any) (Key, error) {
	var b strings.Builder
	if err := encode(&b, v, 0); err != nil {
		return Key{}, err
	}
	return Key{repr: b.String()}, nil
}

// maxDepth bounds recursion so self-referential values fail instead of
// overflowing the stack.
const maxDepth = 64

func encode(b *strings.Builder, v any, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting deeper than %d levels", ErrNotCanonicalizable, maxDepth)
	}
	if v == nil {
		b.WriteString("z;")
		return nil
	}

	if seq, ok := v.(Sequencer); ok {
		return encodeTuple(b, seq.Elements(), depth)
	}

	switch x := v.(type) {
	case bool:
		b.WriteString("b:")
		b.WriteString(strconv.FormatBool(x))
		b.WriteByte(';')
		return nil
	case string:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(x))
		b.WriteByte(';')
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	// numeric kinds share one tag so 1, int64(1), and 1.0 collapse to
	// the same identity
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString("n:")
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
		b.WriteByte(';')
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString("n:")
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
		b.WriteByte(';')
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		b.WriteString("n:")
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			b.WriteString(strconv.FormatInt(int64(f), 10))
		} else {
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
		b.WriteByte(';')
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return encodeTuple(b, elems, depth)
	case reflect.Pointer:
		if rv.IsNil() {
			b.WriteString("z;")
			return nil
		}
		return encode(b, rv.Elem().Interface(), depth+1)
	case reflect.Struct:
		if !rv.Type().Comparable() {
			return fmt.Errorf("%w: non-comparable %s", ErrNotCanonicalizable, rv.Type())
		}
		// comparable struct: already hashable, pass through by value
		fmt.Fprintf(b, "v:%s:%#v;", rv.Type(), v)
	default:
		return fmt.Errorf("%w: %s", ErrNotCanonicalizable, rv.Kind())
	}
	return nil
}

func encodeTuple(b *strings.Builder, elems []any, depth int) error {
	b.WriteByte('(')
	for _, e := range elems {
		if err := encode(b, e, depth+1); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}
