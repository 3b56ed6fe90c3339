package circulis

import (
	"fmt"
	"reflect"

	"github.com/kevin-panoptic-dev/circulis/deque"
)

// DefaultName is the display name of a container that was never named.
const DefaultName = "Anonymous Collection"

// List is a mutable, double-ended ordered container of T.
//
// Element order reflects insertion order unless explicitly rotated,
// reversed, or sorted. Elements are never implicitly deduplicated except
// by the set-algebra operations. A List carries a display name used in
// error and diagnostic messages; it defaults to [DefaultName].
//
// List is not safe for concurrent use.
type List[T any] struct {
	name  string
	items *deque.Deque[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items.
func New[T any](items ...T) *List[T] {
	return &List[T]{name: DefaultName, items: deque.Of(items...)}
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	return &List[T]{name: DefaultName, items: deque.Of(items...)}
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{name: DefaultName, items: deque.New[T](0)}
}

// FromString creates a List of the string's runes, logging a notice that
// a string was expanded into characters.
func FromString(s string) *List[rune] {
	diagInfo("string expanded into individual characters", "value", s)
	return From([]rune(s))
}

// Named sets the display name and returns the receiver for chaining.
func (l *List[T]) Named(name string) *List[T] {
	l.name = name
	return l
}

// Name returns the display name.
func (l *List[T]) Name() string { return l.name }

// ─────────────────────────────────────────────────────────────────────────────
// Append
// ─────────────────────────────────────────────────────────────────────────────

type appendConfig struct {
	left        bool
	unpack      bool
	unpackPairs bool
	dropNil     bool
}

// AppendOption adjusts how [List.Append] treats the appended item.
type AppendOption func(*appendConfig)

// Left appends at the front instead of the back.
func Left() AppendOption { return func(c *appendConfig) { c.left = true } }

// Unpack appends the elements of a list-like item (slice, array, or
// another List) individually instead of as a single element.
func Unpack() AppendOption { return func(c *appendConfig) { c.unpack = true } }

// UnpackPairs extends unpacking to [Pair] values, which are otherwise
// kept atomic.
func UnpackPairs() AppendOption { return func(c *appendConfig) { c.unpackPairs = true } }

// DropNil filters nil elements out of an unpacked item.
func DropNil() AppendOption { return func(c *appendConfig) { c.dropNil = true } }

// Append adds item at the back (or front, with [Left]). With [Unpack],
// a list-like item is expanded and its elements appended individually;
// pairs are expanded only under [UnpackPairs]. [DropNil] filters nil
// elements from an unpacked item; requesting it for an atomic pair is
// ill-advised and logs a diagnostic instead of failing.
//
// Unpacked elements must be storable as T; an incompatible element
// fails with ErrTypeMismatch before anything is appended.
func (l *List[T]) Append(item T, opts ...AppendOption) error {
	var cfg appendConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dyn := any(item)
	_, isPair := dyn.(pairMarker)
	if isPair && cfg.dropNil && !cfg.unpackPairs {
		diagWarn("pair is atomic, DropNil has no effect without UnpackPairs", "name", l.name)
	}

	var elems []any
	switch {
	case isPair && cfg.unpackPairs:
		elems = dyn.(interface{ Elements() []any }).Elements()
	case !isPair && cfg.unpack:
		if seq, ok := dyn.(interface{ Elements() []any }); ok {
			elems = seq.Elements()
		} else if rv := reflect.ValueOf(dyn); dyn != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			elems = make([]any, rv.Len())
			for i := range elems {
				elems[i] = rv.Index(i).Interface()
			}
		}
	}

	if elems == nil {
		// atomic append
		if cfg.left {
			l.items.PushFront(item)
		} else {
			l.items.PushBack(item)
		}
		return nil
	}

	typed := make([]T, 0, len(elems))
	for _, e := range elems {
		if cfg.dropNil && isNilValue(e) {
			continue
		}
		t, ok := asElement[T](e)
		if !ok {
			return fmt.Errorf("%w: cannot store %T in %q", ErrTypeMismatch, e, l.name)
		}
		typed = append(typed, t)
	}
	if cfg.left {
		// prepend preserving order
		for i := len(typed) - 1; i >= 0; i-- {
			l.items.PushFront(typed[i])
		}
	} else {
		l.items.PushBackAll(typed...)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Core access
// ─────────────────────────────────────────────────────────────────────────────

// Rotate rotates the container n steps: positive n moves the tail toward
// the head (wrap-around), negative n the opposite way. Rotating an empty
// container is a no-op reported as a diagnostic.
func (l *List[T]) Rotate(n int) {
	if l.items.Len() == 0 {
		diagWarn("rotating an empty container is unhelpful", "name", l.name)
		return
	}
	l.items.Rotate(n)
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, bool) { return l.items.PopBack() }

// PopLeft removes and returns the first element.
func (l *List[T]) PopLeft() (T, bool) { return l.items.PopFront() }

// At returns the element at index i. Negative indices count from the
// tail and additionally log a notice.
func (l *List[T]) At(i int) (T, error) {
	var zero T
	n := l.items.Len()
	if i < 0 {
		diagInfo("negative index", "index", i, "name", l.name)
		i += n
	}
	v, ok := l.items.At(i)
	if !ok {
		return zero, fmt.Errorf("%w: index %d in %q (len %d)", ErrIndexOutOfRange, i, l.name, n)
	}
	return v, nil
}

// Set replaces the element at index i. Negative indices count from the
// tail and log a notice.
func (l *List[T]) Set(i int, v T) error {
	n := l.items.Len()
	if i < 0 {
		diagInfo("negative index", "index", i, "name", l.name)
		i += n
	}
	if !l.items.Set(i, v) {
		return fmt.Errorf("%w: index %d in %q (len %d)", ErrIndexOutOfRange, i, l.name, n)
	}
	return nil
}

// Delete removes the element at index i. Negative indices count from
// the tail and log a notice.
func (l *List[T]) Delete(i int) error {
	n := l.items.Len()
	if i < 0 {
		diagInfo("negative index", "index", i, "name", l.name)
		i += n
	}
	if !l.items.DeleteAt(i) {
		return fmt.Errorf("%w: index %d in %q (len %d)", ErrIndexOutOfRange, i, l.name, n)
	}
	return nil
}

// Slice returns a new List holding the elements in [i, j). Negative
// bounds count from the tail; out-of-range bounds clamp rather than
// fail, per standard slicing convention.
func (l *List[T]) Slice(i, j int) *List[T] {
	n := l.items.Len()
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	if i < 0 {
		i = 0
	}
	if j > n {
		j = n
	}
	if i >= j {
		return Empty[T]().Named(l.name)
	}
	out := deque.New[T](j - i)
	for k := i; k < j; k++ {
		v, _ := l.items.At(k)
		out.PushBack(v)
	}
	return &List[T]{name: l.name, items: out}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.items.Len() }

// IsEmpty reports whether the container has no elements.
func (l *List[T]) IsEmpty() bool { return l.items.Len() == 0 }

// Clear removes all elements.
func (l *List[T]) Clear() { l.items.Clear() }

// Contains reports whether value occurs in the container, compared by
// deep equality.
func (l *List[T]) Contains(value T) bool {
	found := false
	l.items.Do(func(_ int, v T) {
		if !found && reflect.DeepEqual(v, value) {
			found = true
		}
	})
	return found
}

// Count returns the number of occurrences of value, compared by deep
// equality. Counting in an empty container logs a diagnostic.
func (l *List[T]) Count(value T) int {
	if l.items.Len() == 0 {
		diagWarn("counting in an empty container is unhelpful", "name", l.name)
		return 0
	}
	n := 0
	l.items.Do(func(_ int, v T) {
		if reflect.DeepEqual(v, value) {
			n++
		}
	})
	return n
}

// IndicesOf returns every index at which value occurs, compared by deep
// equality. An empty container logs a diagnostic and yields no indices.
func (l *List[T]) IndicesOf(value T) []int {
	if l.items.Len() == 0 {
		diagWarn("searching an empty container is unhelpful", "name", l.name)
		return nil
	}
	var out []int
	l.items.Do(func(i int, v T) {
		if reflect.DeepEqual(v, value) {
			out = append(out, i)
		}
	})
	return out
}

// Curtail removes amount elements from the back; if fewer remain, the
// container is emptied. amount must be positive and the container
// non-empty.
func (l *List[T]) Curtail(amount int) error { return l.curtail(amount, false) }

// CurtailLeft removes amount elements from the front, with the same
// contract as [List.Curtail].
func (l *List[T]) CurtailLeft(amount int) error { return l.curtail(amount, true) }

func (l *List[T]) curtail(amount int, fromLeft bool) error {
	if l.items.Len() == 0 {
		return fmt.Errorf("%w: curtail on empty container %q", ErrInvalidOperation, l.name)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: curtail amount must be positive, got %d", ErrInvalidOperation, amount)
	}
	for ; amount > 0 && l.items.Len() > 0; amount-- {
		if fromLeft {
			l.items.PopFront()
		} else {
			l.items.PopBack()
		}
	}
	return nil
}

// All returns a copy of the elements front to back.
func (l *List[T]) All() []T { return l.items.Values() }

// Elements returns the elements as []any, making List a recognized
// sequence-like value (it implements canon.Sequencer).
func (l *List[T]) Elements() []any {
	out := make([]any, 0, l.items.Len())
	l.items.Do(func(_ int, v T) { out = append(out, any(v)) })
	return out
}

// Each calls fn(index, element) for every element in order.
func (l *List[T]) Each(fn func(int, T)) { l.items.Do(fn) }

// String returns the elements formatted like a plain slice.
// It implements fmt.Stringer.
func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.All())
}

// Clone returns a deep copy of the container, name included. Nested
// slices and maps inside elements are copied recursively.
func (l *List[T]) Clone() *List[T] {
	out := deque.New[T](l.items.Len())
	l.items.Do(func(_ int, v T) {
		c, ok := asElement[T](deepCopyValue(any(v)))
		if !ok {
			c = v
		}
		out.PushBack(c)
	})
	return &List[T]{name: l.name, items: out}
}

// CloneAny returns Clone() as an any, letting element-agnostic callers
// (such as the compose package's default deep clone) copy a contained
// List without knowing its type parameter.
func (l *List[T]) CloneAny() any { return l.Clone() }
