package circulis

import (
	"math/rand"
	"sort"

	"github.com/kevin-panoptic-dev/circulis/deque"
)

// Sort orders the elements in place by the given comparison. The sort
// is stable. Sorting an empty container is a no-op with a diagnostic.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.items.Len() == 0 {
		diagWarn("sorting an empty container is unhelpful", "name", l.name)
		return
	}
	all := l.All()
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	l.items = deque.Of(all...)
}

// SortBy orders the elements in place by a numeric key, descending when
// reverse is set.
func (l *List[T]) SortBy(key func(T) float64, reverse bool) {
	if reverse {
		l.Sort(func(a, b T) bool { return key(a) > key(b) })
		return
	}
	l.Sort(func(a, b T) bool { return key(a) < key(b) })
}

// Reverse flips the element order in place. Reversing an empty
// container is a no-op with a diagnostic.
func (l *List[T]) Reverse() {
	if l.items.Len() == 0 {
		diagWarn("reversing an empty container is unhelpful", "name", l.name)
		return
	}
	all := l.All()
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	l.items = deque.Of(all...)
}

// Shuffle permutes the elements in place. The walk runs front to back
// swapping each position with a uniformly chosen one at or after it,
// except that positions already used as a swap target keep the element
// that landed there and are passed over.
func (l *List[T]) Shuffle() {
	n := l.items.Len()
	if n == 0 {
		diagWarn("shuffling an empty container is unhelpful", "name", l.name)
		return
	}
	if n < 2 {
		return
	}
	swapped := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		if _, taken := swapped[i]; taken {
			continue
		}
		j := i + rand.Intn(n-i)
		if j != i {
			a, _ := l.items.At(i)
			b, _ := l.items.At(j)
			l.items.Set(i, b)
			l.items.Set(j, a)
			swapped[j] = struct{}{}
		}
	}
}
