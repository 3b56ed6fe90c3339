package circulis

import (
	"fmt"
	"reflect"

	"github.com/kevin-panoptic-dev/circulis/canon"
	"github.com/kevin-panoptic-dev/circulis/deque"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// numericSum adds up a sequence, reporting whether every element was a
// number.
func numericSum(elems []any) (sum float64, allNumeric bool) {
	allNumeric = true
	for _, e := range elems {
		f, ok := toFloat(e)
		if !ok {
			allNumeric = false
			continue
		}
		sum += f
	}
	return sum, allNumeric
}

func truthyCount(elems []any) float64 {
	n := 0.0
	for _, e := range elems {
		if truthy(e) {
			n++
		}
	}
	return n
}

// Compare orders the container against another sequence, returning -1,
// 0, or 1. When both sides are entirely numeric the comparison is by
// sum; otherwise both sides compare by how many of their elements are
// truthy. other may be a List of any element type, a Pair, a slice, or
// an array.
func (l *List[T]) Compare(other any) (int, error) {
	elems, err := sequenceElements(other)
	if err != nil {
		return 0, err
	}
	mineElems := l.Elements()
	mine, mineNum := numericSum(mineElems)
	theirs, theirNum := numericSum(elems)
	if !mineNum || !theirNum {
		mine = truthyCount(mineElems)
		theirs = truthyCount(elems)
	}
	switch {
	case mine < theirs:
		return -1, nil
	case mine > theirs:
		return 1, nil
	}
	return 0, nil
}

// Less reports whether l orders strictly before other.
func (l *List[T]) Less(other any) (bool, error) {
	c, err := l.Compare(other)
	return c < 0, err
}

// Greater reports whether l orders strictly after other.
func (l *List[T]) Greater(other any) (bool, error) {
	c, err := l.Compare(other)
	return c > 0, err
}

// AtMost reports whether l orders before or equal to other.
func (l *List[T]) AtMost(other any) (bool, error) {
	c, err := l.Compare(other)
	return c <= 0, err
}

// AtLeast reports whether l orders after or equal to other.
func (l *List[T]) AtLeast(other any) (bool, error) {
	c, err := l.Compare(other)
	return c >= 0, err
}

// Equal reports whether the container holds the same elements in the
// same order as other, judged by canonical identity. Sequences that
// cannot be compared are simply unequal.
func (l *List[T]) Equal(other any) bool {
	elems, err := sequenceElements(other)
	if err != nil {
		return false
	}
	mine := l.Elements()
	if len(mine) != len(elems) {
		return false
	}
	for i := range mine {
		a, aerr := canon.Canonicalize(mine[i])
		b, berr := canon.Canonicalize(elems[i])
		if aerr != nil || berr != nil {
			if !reflect.DeepEqual(mine[i], elems[i]) {
				return false
			}
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Concatenation
// ─────────────────────────────────────────────────────────────────────────────

// Concat returns a new List holding l's elements followed by other's.
// Every element of other must be storable as T.
func (l *List[T]) Concat(other any) (*List[T], error) {
	elems, err := sequenceElements(other)
	if err != nil {
		return nil, err
	}
	out := deque.New[T](l.Len() + len(elems))
	l.Each(func(_ int, v T) { out.PushBack(v) })
	for _, e := range elems {
		t, ok := asElement[T](e)
		if !ok {
			return nil, fmt.Errorf("%w: cannot store %T in %q", ErrTypeMismatch, e, l.name)
		}
		out.PushBack(t)
	}
	return &List[T]{name: l.name, items: out}, nil
}

// Extend appends other's elements to l in place, with the same
// storability contract as [List.Concat].
func (l *List[T]) Extend(other any) error {
	elems, err := sequenceElements(other)
	if err != nil {
		return err
	}
	typed := make([]T, 0, len(elems))
	for _, e := range elems {
		t, ok := asElement[T](e)
		if !ok {
			return fmt.Errorf("%w: cannot store %T in %q", ErrTypeMismatch, e, l.name)
		}
		typed = append(typed, t)
	}
	l.items.PushBackAll(typed...)
	return nil
}

// Subtract removes, for each element of other, the first deeply equal
// element of l. Elements of other with no match are skipped with a
// diagnostic rather than failing.
func (l *List[T]) Subtract(other any) error {
	elems, err := sequenceElements(other)
	if err != nil {
		return err
	}
	for _, e := range elems {
		matched := false
		for i := 0; i < l.items.Len(); i++ {
			v, _ := l.items.At(i)
			if reflect.DeepEqual(any(v), e) {
				l.items.DeleteAt(i)
				matched = true
				break
			}
		}
		if !matched {
			diagInfo("subtrahend element not present", "value", e, "name", l.name)
		}
	}
	return nil
}

// Repeat returns a new List holding l's elements repeated n times.
// n must not be negative; zero yields an empty container.
func (l *List[T]) Repeat(n int) (*List[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: repeat count %d is negative", ErrInvalidOperation, n)
	}
	all := l.All()
	out := deque.New[T](len(all) * n)
	for i := 0; i < n; i++ {
		out.PushBackAll(all...)
	}
	return &List[T]{name: l.name, items: out}, nil
}
