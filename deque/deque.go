// Package deque implements a generic double-ended queue backed by a
// circular ring buffer.
//
// The buffer capacity is always a power of two so positions can be reduced
// with a mask instead of a modulo. Push and pop at either end run in
// amortized O(1); indexed access is O(1); insertion and deletion at an
// arbitrary position shift at most Len()-1 elements.
//
// Deque is not safe for concurrent use; callers needing shared access must
// serialize externally.
package deque

import "math/bits"

const defaultCapacity = 16

// Deque is a double-ended queue of T.
// The zero value is not usable; create instances with [New] or [Of].
type Deque[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// New creates an empty Deque with at least the given initial capacity.
// Non-positive capacities fall back to a small default.
func New[T any](initialCapacity int) *Deque[T] {
	if initialCapacity <= 0 {
		initialCapacity = defaultCapacity
	}
	capacity := 1 << uint(bits.Len(uint(initialCapacity-1)))
	if capacity < 1 {
		capacity = 1
	}
	return &Deque[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// Of creates a Deque holding the given values in order.
func Of[T any](values ...T) *Deque[T] {
	d := New[T](len(values))
	d.PushBackAll(values...)
	return d
}

// idx translates a logical position (0 = front) to a buffer index.
func (d *Deque[T]) idx(i int) int {
	return (d.head + i) & d.mask
}

// resize grows the buffer to hold at least size+capDiff elements,
// unwrapping the ring so the front lands at buffer index 0.
func (d *Deque[T]) resize(capDiff int) {
	need := d.size + capDiff
	newCapacity := 1 << uint(bits.Len(uint(need-1)))
	newBuf := make([]T, newCapacity)

	if d.head+d.size <= len(d.buf) {
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around: copy head..end, then start..tail
		n := copy(newBuf, d.buf[d.head:])
		tail := (d.head + d.size) & d.mask
		copy(newBuf[n:], d.buf[:tail])
	}

	d.buf = newBuf
	d.head = 0
	d.mask = newCapacity - 1
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	if d.size == len(d.buf) {
		d.resize(1)
	}
	d.buf[d.idx(d.size)] = v
	d.size++
}

// PushBackAll appends all values at the back in order.
func (d *Deque[T]) PushBackAll(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	if d.size+n > len(d.buf) {
		d.resize(n)
	}
	tail := d.idx(d.size)
	if tail+n <= len(d.buf) {
		copy(d.buf[tail:], values)
	} else {
		// wrapped around
		part := len(d.buf) - tail
		copy(d.buf[tail:], values[:part])
		copy(d.buf, values[part:])
	}
	d.size += n
}

// PushFront prepends v at the front.
func (d *Deque[T]) PushFront(v T) {
	if d.size == len(d.buf) {
		d.resize(1)
	}
	d.head = (d.head - 1) & d.mask
	d.buf[d.head] = v
	d.size++
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	i := d.idx(d.size - 1)
	value = d.buf[i]
	var zero T
	d.buf[i] = zero // clear reference
	d.size--
	return value, true
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	value = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = (d.head + 1) & d.mask
	d.size--
	return value, true
}

// At returns the element at logical position i (0 = front).
func (d *Deque[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= d.size {
		return value, false
	}
	return d.buf[d.idx(i)], true
}

// Set replaces the element at logical position i.
func (d *Deque[T]) Set(i int, v T) bool {
	if i < 0 || i >= d.size {
		return false
	}
	d.buf[d.idx(i)] = v
	return true
}

// InsertAt inserts v so that it ends up at logical position i, shifting
// later elements one place toward the back. Positions past either end
// clamp to a front or back push.
func (d *Deque[T]) InsertAt(i int, v T) {
	switch {
	case i <= 0:
		d.PushFront(v)
		return
	case i >= d.size:
		d.PushBack(v)
		return
	}
	if d.size == len(d.buf) {
		d.resize(1)
	}
	for j := d.size; j > i; j-- {
		d.buf[d.idx(j)] = d.buf[d.idx(j-1)]
	}
	d.buf[d.idx(i)] = v
	d.size++
}

// DeleteAt removes the element at logical position i, shifting later
// elements one place toward the front.
func (d *Deque[T]) DeleteAt(i int) bool {
	if i < 0 || i >= d.size {
		return false
	}
	for j := i; j < d.size-1; j++ {
		d.buf[d.idx(j)] = d.buf[d.idx(j+1)]
	}
	var zero T
	d.buf[d.idx(d.size-1)] = zero
	d.size--
	return true
}

// Rotate rotates the deque n steps. Positive n moves elements from the
// back to the front (the last element becomes the first); negative n
// rotates the opposite way. Rotating an empty deque is a no-op.
func (d *Deque[T]) Rotate(n int) {
	if d.size == 0 {
		return
	}
	n %= d.size
	if n == 0 {
		return
	}
	if n < 0 {
		n += d.size
	}
	// rotate right by n: take the cheaper direction
	if n <= d.size-n {
		for ; n > 0; n-- {
			v, _ := d.PopBack()
			d.PushFront(v)
		}
	} else {
		for n = d.size - n; n > 0; n-- {
			v, _ := d.PopFront()
			d.PushBack(v)
		}
	}
}

// Values returns the elements front-to-back as a new slice.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.size)
	if d.head+d.size <= len(d.buf) {
		copy(out, d.buf[d.head:d.head+d.size])
	} else {
		n := copy(out, d.buf[d.head:])
		tail := (d.head + d.size) & d.mask
		copy(out[n:], d.buf[:tail])
	}
	return out
}

// Do calls fn(i, v) for each element in order.
func (d *Deque[T]) Do(fn func(int, T)) {
	for i := 0; i < d.size; i++ {
		fn(i, d.buf[d.idx(i)])
	}
}

// Clear removes all elements, releasing element references.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}
