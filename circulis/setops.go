package circulis

import (
	"fmt"

	"github.com/kevin-panoptic-dev/circulis/canon"
	"github.com/kevin-panoptic-dev/circulis/deque"
)

// setOperand canonicalizes both sides of a set operation. other may be
// a List of any element type, a Pair, a slice, or an array.
func (l *List[T]) setOperand(other any) (canon.Set, canon.Set, error) {
	elems, err := sequenceElements(other)
	if err != nil {
		return nil, nil, err
	}
	mine, err := canon.NewSet(l.Elements())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	theirs, err := canon.NewSet(elems)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return mine, theirs, nil
}

// Union returns the canonical identities present in either container.
func (l *List[T]) Union(other any) (canon.Set, error) {
	mine, theirs, err := l.setOperand(other)
	if err != nil {
		return nil, err
	}
	return mine.Union(theirs), nil
}

// Intersect returns the canonical identities present in both containers.
func (l *List[T]) Intersect(other any) (canon.Set, error) {
	mine, theirs, err := l.setOperand(other)
	if err != nil {
		return nil, err
	}
	return mine.Intersect(theirs), nil
}

// SymmetricDifference returns the canonical identities present in
// exactly one of the two containers.
func (l *List[T]) SymmetricDifference(other any) (canon.Set, error) {
	mine, theirs, err := l.setOperand(other)
	if err != nil {
		return nil, err
	}
	return mine.SymmetricDifference(theirs), nil
}

// Difference returns a new List holding the elements of l whose
// canonical identity does not occur in other. Unlike the other set
// operations it keeps the elements themselves, in order, with
// duplicates collapsed to their first occurrence.
func (l *List[T]) Difference(other any) (*List[T], error) {
	elems, err := sequenceElements(other)
	if err != nil {
		return nil, err
	}
	theirs, err := canon.NewSet(elems)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	out := deque.New[T](l.Len())
	seen := make(canon.Set)
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		k, cerr := canon.Canonicalize(any(v))
		if cerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrTypeMismatch, cerr)
		}
		if theirs.Has(k) || seen.Has(k) {
			continue
		}
		seen.Add(k)
		out.PushBack(v)
	}
	return &List[T]{name: l.name, items: out}, nil
}

// Hash returns a stable digest of the container's contents. Equal
// containers hash equally regardless of how their elements are nested
// or what concrete numeric types they use. Elements that cannot be
// canonicalized fail with ErrTypeMismatch.
func (l *List[T]) Hash() (uint64, error) {
	k, err := canon.Canonicalize(l)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	return k.Digest(), nil
}
