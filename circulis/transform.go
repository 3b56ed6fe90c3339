package circulis

import (
	"fmt"
	"reflect"

	"github.com/kevin-panoptic-dev/circulis/canon"
	"github.com/kevin-panoptic-dev/circulis/deque"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-place transforms
// ─────────────────────────────────────────────────────────────────────────────

// Map replaces every element with fn(element), in place. A nil fn fails
// with ErrTypeMismatch; an empty container is a no-op with a diagnostic.
func (l *List[T]) Map(fn func(T) T) error {
	if fn == nil {
		return fmt.Errorf("%w: map function is nil", ErrTypeMismatch)
	}
	if l.items.Len() == 0 {
		diagWarn("mapping an empty container is unhelpful", "name", l.name)
		return nil
	}
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		l.items.Set(i, fn(v))
	}
	return nil
}

// Filter keeps only the elements for which fn returns true, in place.
// A nil fn fails with ErrTypeMismatch; an empty container is a no-op
// with a diagnostic.
func (l *List[T]) Filter(fn func(T) bool) error {
	if fn == nil {
		return fmt.Errorf("%w: filter function is nil", ErrTypeMismatch)
	}
	if l.items.Len() == 0 {
		diagWarn("filtering an empty container is unhelpful", "name", l.name)
		return nil
	}
	kept := deque.New[T](l.items.Len())
	l.items.Do(func(_ int, v T) {
		if fn(v) {
			kept.PushBack(v)
		}
	})
	l.items = kept
	return nil
}

// VoidFilter removes every nil element, in place.
func (l *List[T]) VoidFilter() {
	kept := deque.New[T](l.items.Len())
	l.items.Do(func(_ int, v T) {
		if !isNilValue(any(v)) {
			kept.PushBack(v)
		}
	})
	l.items = kept
}

// Kind names the expected type of a reduction's start value.
type Kind int

const (
	// KindAny accepts a start value of any type.
	KindAny Kind = iota
	// KindInt expects an int start value.
	KindInt
	// KindFloat expects a float64 start value.
	KindFloat
	// KindString expects a string start value.
	KindString
	// KindBool expects a bool start value.
	KindBool
)

func (k Kind) accepts(v any) bool {
	switch k {
	case KindAny:
		return true
	case KindInt:
		_, ok := v.(int)
		return ok
	case KindFloat:
		_, ok := v.(float64)
		return ok
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// Reduce folds the elements into a single value. fn must be a function
// taking more than two parameters: the first is the accumulator, the
// rest consume elements, one group per call. A trailing group with too
// few elements stops the fold, returning the result so far. start seeds
// the accumulator and must match kind. Call failures (wrong argument
// types at runtime) surface as ErrTypeMismatch rather than panicking.
func (l *List[T]) Reduce(fn any, start any, kind Kind) (result any, err error) {
	if l.items.Len() == 0 {
		return nil, fmt.Errorf("%w: reduce on empty container %q", ErrInvalidOperation, l.name)
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: reduce function is nil", ErrTypeMismatch)
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: reduce needs a function, got %T", ErrTypeMismatch, fn)
	}
	if ft.NumIn() <= 2 || ft.NumOut() != 1 {
		return nil, fmt.Errorf("%w: reduce function must take more than two arguments and return one value",
			ErrInvalidOperation)
	}
	if !kind.accepts(start) {
		return nil, fmt.Errorf("%w: start value %T does not match declared kind", ErrInvalidOperation, start)
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: reduce call failed: %v", ErrTypeMismatch, r)
		}
	}()

	group := ft.NumIn() - 1
	acc := start
	elems := l.Elements()
	for i := 0; i+group <= len(elems); i += group {
		args := make([]reflect.Value, 0, ft.NumIn())
		args = append(args, reflect.ValueOf(acc))
		for _, e := range elems[i : i+group] {
			args = append(args, reflect.ValueOf(e))
		}
		acc = fv.Call(args)[0].Interface()
	}
	return acc, nil
}

// Disentangle flattens nested sequences into their elements, in place
// and recursively, so that no element is itself a sequence. Strings are
// atomic and never expanded. Already-flat containers are untouched, so
// the operation is idempotent. Every leaf must be storable as T.
func (l *List[T]) Disentangle() error {
	flat, err := flatten[T](l.Elements())
	if err != nil {
		return fmt.Errorf("%w in %q", err, l.name)
	}
	l.items = deque.Of(flat...)
	return nil
}

func flatten[T any](elems []any) ([]T, error) {
	var out []T
	for _, e := range elems {
		if _, isStr := e.(string); !isStr {
			if seq, ok := e.(canon.Sequencer); ok {
				nested, err := flatten[T](seq.Elements())
				if err != nil {
					return nil, err
				}
				out = append(out, nested...)
				continue
			}
			if rv := reflect.ValueOf(e); e != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
				inner := make([]any, rv.Len())
				for i := range inner {
					inner[i] = rv.Index(i).Interface()
				}
				nested, err := flatten[T](inner)
				if err != nil {
					return nil, err
				}
				out = append(out, nested...)
				continue
			}
		}
		t, ok := asElement[T](e)
		if !ok {
			return nil, fmt.Errorf("%w: flattened element %T is not storable", ErrTypeMismatch, e)
		}
		out = append(out, t)
	}
	return out, nil
}

// Fragmentize splits the elements into consecutive chunks of the given
// size; the final chunk may be shorter. size must be positive. The
// container is not modified; an empty one yields no chunks, with a
// diagnostic.
func (l *List[T]) Fragmentize(size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: fragment size must be positive, got %d", ErrInvalidOperation, size)
	}
	if l.items.Len() == 0 {
		diagWarn("fragmenting an empty container is unhelpful", "name", l.name)
	}
	all := l.All()
	out := make([][]T, 0, (len(all)+size-1)/size)
	for i := 0; i < len(all); i += size {
		j := i + size
		if j > len(all) {
			j = len(all)
		}
		out = append(out, all[i:j:j])
	}
	return out, nil
}

// Pairs groups consecutive elements two by two. An odd trailing element
// is paired with the zero value and noted in a diagnostic. The
// container itself is not modified. Pairing an empty container fails
// with ErrInvalidOperation.
func (l *List[T]) Pairs() ([]Pair[T, T], error) {
	n := l.items.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: pairing an empty container %q", ErrInvalidOperation, l.name)
	}
	all := l.All()
	out := make([]Pair[T, T], 0, (n+1)/2)
	for i := 0; i < n; i += 2 {
		var second T
		if i+1 < n {
			second = all[i+1]
		} else {
			diagInfo("odd element paired with zero value", "index", i, "name", l.name)
		}
		out = append(out, Pair[T, T]{First: all[i], Second: second})
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-changing transforms
//
// Methods cannot introduce new type parameters, so transforms that
// change the element type live here as package-level functions.
// ─────────────────────────────────────────────────────────────────────────────

// MapTo builds a new List by applying fn to every element of l.
func MapTo[T, U any](l *List[T], fn func(T) U) (*List[U], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: map function is nil", ErrTypeMismatch)
	}
	out := deque.New[U](l.Len())
	l.Each(func(_ int, v T) { out.PushBack(fn(v)) })
	return (&List[U]{name: l.name, items: out}), nil
}

// NoSuchGroup is the diagnostic message logged when a grouping is
// queried for a category that no element produced.
const NoSuchGroup = "requested category has not been created"

// Grouping holds the result of [Convene]: elements bucketed by
// category, with categories remembered in first-seen order.
type Grouping[K comparable, T any] struct {
	order  []K
	groups map[K][]T
}

// Get returns the elements of a category and whether it exists.
func (g *Grouping[K, T]) Get(key K) ([]T, bool) {
	vals, ok := g.groups[key]
	return vals, ok
}

// Fetch returns the elements of a category, or nil with a diagnostic
// when no element produced it.
func (g *Grouping[K, T]) Fetch(key K) []T {
	vals, ok := g.groups[key]
	if !ok {
		diagInfo(NoSuchGroup, "category", key)
	}
	return vals
}

// Keys returns the categories in first-seen order.
func (g *Grouping[K, T]) Keys() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of categories.
func (g *Grouping[K, T]) Len() int { return len(g.order) }

// Convene buckets the elements of l by the category that key assigns
// each one. A nil key function fails with ErrTypeMismatch; a produced
// category that is itself nil fails with ErrInvalidOperation. Grouping
// an empty container yields an empty Grouping with a diagnostic.
func Convene[K comparable, T any](l *List[T], key func(T) K) (*Grouping[K, T], error) {
	if key == nil {
		return nil, fmt.Errorf("%w: grouping key function is nil", ErrTypeMismatch)
	}
	if l.Len() == 0 {
		diagWarn("grouping an empty container is unhelpful", "name", l.name)
	}
	g := &Grouping[K, T]{groups: make(map[K][]T)}
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		k := key(v)
		if isNilValue(any(k)) {
			return nil, fmt.Errorf("%w: grouping key function produced a nil category", ErrInvalidOperation)
		}
		if _, seen := g.groups[k]; !seen {
			g.order = append(g.order, k)
		}
		g.groups[k] = append(g.groups[k], v)
	}
	return g, nil
}

// Synergy combines two containers element by element through fn,
// stopping at the shorter one. A length mismatch is noted in a
// diagnostic; an empty receiver yields an empty result with a
// diagnostic. A nil function or nil other fails with ErrTypeMismatch.
func Synergy[A, B, R any](a *List[A], b *List[B], fn func(A, B) R) ([]R, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: synergy function is nil", ErrTypeMismatch)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: synergy operand is nil", ErrTypeMismatch)
	}
	if a.Len() == 0 {
		diagWarn("combining an empty container is unhelpful", "name", a.name)
		return []R{}, nil
	}
	if a.Len() != b.Len() {
		diagWarn("lengths of combined containers are not congruent", "left", a.Len(), "right", b.Len())
	}
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	av, bv := a.All(), b.All()
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(av[i], bv[i])
	}
	return out, nil
}

// Zip pairs the containers element by element, stopping at the shorter
// one; a length mismatch is noted in a diagnostic.
func Zip[A, B any](a *List[A], b *List[B]) []Pair[A, B] {
	n := a.Len()
	if b.Len() != n {
		diagInfo("zipping containers of unequal length", "left", a.Len(), "right", b.Len())
		if b.Len() < n {
			n = b.Len()
		}
	}
	av, bv := a.All(), b.All()
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: av[i], Second: bv[i]}
	}
	return out
}
