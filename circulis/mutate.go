package circulis

import (
	"fmt"
	"reflect"
)

// stepRange yields the index sequence start, start+step, ... up to and
// including stop (endpoint inclusive), in either direction depending on
// the sign of step.
func stepRange(start, stop, step int) []int {
	var out []int
	if step > 0 {
		for i := start; i <= stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop+1; i += step {
			out = append(out, i)
		}
	}
	return out
}

// Remove deletes the elements at every index in the inclusive stepped
// range [start, stop] with stride step. Deletion happens one index at a
// time, compensating for the leftward shift of the elements after each
// removal, so the indices refer to positions in the original container.
//
// start, stop, and step must each be smaller than the length; a
// violation fails with ErrIndexOutOfRange. A zero step or an empty
// container fails with ErrInvalidOperation. Negative arguments are
// accepted with a diagnostic: a negative index counts from the tail.
func (l *List[T]) Remove(start, stop, step int) error {
	n := l.items.Len()
	if n == 0 {
		return fmt.Errorf("%w: remove on empty container %q", ErrInvalidOperation, l.name)
	}
	if step == 0 {
		return fmt.Errorf("%w: remove step cannot be zero", ErrInvalidOperation)
	}
	if start >= n || stop >= n || step >= n {
		return fmt.Errorf("%w: remove(%d, %d, %d) exceeds length %d of %q",
			ErrIndexOutOfRange, start, stop, step, n, l.name)
	}
	if start < 0 || stop < 0 || step < 0 {
		diagWarn("negative removal bounds", "start", start, "stop", stop, "step", step, "name", l.name)
	}

	removed := 0
	for _, i := range stepRange(start, stop, step) {
		idx := i - removed
		if idx < 0 {
			idx += l.items.Len()
		}
		if !l.items.DeleteAt(idx) {
			return fmt.Errorf("%w: index %d in %q (len %d)",
				ErrIndexOutOfRange, idx, l.name, l.items.Len())
		}
		removed++
	}
	return nil
}

// RemoveAt deletes the single element at index i with the contract of
// [List.Remove].
func (l *List[T]) RemoveAt(i int) error { return l.Remove(i, i, 1) }

// Insert places item at every index in the inclusive stepped range
// [start, stop] with stride step. Indices beyond either end clamp to
// the nearest end. Negative bounds count from the tail and log a
// diagnostic. Inserting into an empty container or with a zero step
// fails with ErrInvalidOperation.
func (l *List[T]) Insert(item T, start, stop, step int) error {
	n := l.items.Len()
	if n == 0 {
		return fmt.Errorf("%w: insert into empty container %q", ErrInvalidOperation, l.name)
	}
	if step == 0 {
		return fmt.Errorf("%w: insert step cannot be zero", ErrInvalidOperation)
	}
	if start < 0 || stop < 0 {
		diagWarn("negative insertion bounds", "start", start, "stop", stop, "name", l.name)
		if start < 0 {
			start += n
		}
		if stop < 0 {
			stop += n
		}
	}
	for _, i := range stepRange(start, stop, step) {
		l.items.InsertAt(i, item)
	}
	return nil
}

// Discard removes the first element deeply equal to element. Discarding
// from an empty container, or an element that does not occur, fails
// with ErrInvalidOperation.
func (l *List[T]) Discard(element T) error {
	if l.items.Len() == 0 {
		return fmt.Errorf("%w: discard on empty container %q", ErrInvalidOperation, l.name)
	}
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		if reflect.DeepEqual(v, element) {
			l.items.DeleteAt(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %v does not occur in %q", ErrInvalidOperation, element, l.name)
}
