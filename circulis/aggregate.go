package circulis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kevin-panoptic-dev/circulis/canon"
)

// Policy selects how [List.Sum] treats elements that are not numbers.
type Policy int

const (
	// PolicyFail aborts the sum at the first non-numeric element.
	PolicyFail Policy = iota
	// PolicyCoerce converts what it can (booleans, numeric strings)
	// and skips the rest.
	PolicyCoerce
	// PolicyTerminate stops at the first non-numeric element and
	// returns the partial sum.
	PolicyTerminate
)

func (p Policy) valid() bool {
	return p == PolicyFail || p == PolicyCoerce || p == PolicyTerminate
}

// Sum adds every numeric element to start. Booleans are not numbers
// here. Non-numeric elements are handled per policy. Summing an empty
// container yields 0, with a diagnostic.
func (l *List[T]) Sum(start float64, policy Policy) (float64, error) {
	if !policy.valid() {
		return 0, fmt.Errorf("%w: unknown sum policy %d", ErrInvalidOperation, policy)
	}
	if l.items.Len() == 0 {
		diagWarn("summing an empty container is unhelpful, 0 is returned", "name", l.name)
		return 0, nil
	}
	total := start
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		dyn := any(v)
		if f, ok := toFloat(dyn); ok {
			total += f
			continue
		}
		switch policy {
		case PolicyFail:
			return 0, fmt.Errorf("%w: cannot sum %T in %q", ErrInvalidOperation, dyn, l.name)
		case PolicyTerminate:
			return total, nil
		case PolicyCoerce:
			switch c := dyn.(type) {
			case bool:
				if c {
					total++
				}
			case string:
				if f, err := strconv.ParseFloat(c, 64); err == nil {
					total += f
				} else {
					diagInfo("skipping uncoercible element", "value", c, "name", l.name)
				}
			default:
				diagInfo("skipping uncoercible element", "type", fmt.Sprintf("%T", dyn), "name", l.name)
			}
		}
	}
	return total, nil
}

// strictNumeric converts every element to float64, failing with
// ErrInvalidOperation at the first element that is not a number.
func (l *List[T]) strictNumeric() ([]float64, error) {
	out := make([]float64, 0, l.items.Len())
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		f, ok := toFloat(any(v))
		if !ok {
			return nil, fmt.Errorf("%w: %T in %q is not numeric", ErrInvalidOperation, any(v), l.name)
		}
		out = append(out, f)
	}
	return out, nil
}

// Mean returns the arithmetic mean of the numeric elements, rounded to
// two decimal places. Non-numeric elements are filtered out; a
// container with nothing numeric in it has no mean.
func (l *List[T]) Mean() (float64, error) {
	if l.items.Len() == 0 {
		return 0, fmt.Errorf("%w: mean of empty container %q", ErrInvalidOperation, l.name)
	}
	var total float64
	count := 0
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		if f, ok := toFloat(any(v)); ok {
			total += f
			count++
		}
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: nothing numeric in %q to average", ErrInvalidOperation, l.name)
	}
	mean := total / float64(count)
	return math.Round(mean*100) / 100, nil
}

// Median returns the element at the middle position of the current
// order. The container is not sorted first; the positional middle of
// whatever order the elements are in is what comes back.
func (l *List[T]) Median() (T, error) {
	var zero T
	n := l.items.Len()
	if n == 0 {
		return zero, fmt.Errorf("%w: median of empty container %q", ErrInvalidOperation, l.name)
	}
	v, _ := l.items.At(n / 2)
	return v, nil
}

// Dominant returns the most frequent element and its count. Frequency
// is judged by canonical identity, so equal nested sequences count as
// the same element. Ties go to the element seen first.
func (l *List[T]) Dominant() (T, int, error) {
	var zero T
	if l.items.Len() == 0 {
		return zero, 0, fmt.Errorf("%w: dominant of empty container %q", ErrInvalidOperation, l.name)
	}
	counts := make(map[canon.Key]int, l.items.Len())
	firstAt := make(map[canon.Key]int, l.items.Len())
	var keys []canon.Key
	for i := 0; i < l.items.Len(); i++ {
		v, _ := l.items.At(i)
		k, err := canon.Canonicalize(any(v))
		if err != nil {
			return zero, 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		if _, seen := counts[k]; !seen {
			keys = append(keys, k)
			firstAt[k] = i
		}
		counts[k]++
	}
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	v, _ := l.items.At(firstAt[best])
	return v, counts[best], nil
}

// Stride returns the differences between each pair of consecutive
// elements. Every element must be numeric and at least two are needed.
func (l *List[T]) Stride() ([]float64, error) {
	if l.items.Len() < 2 {
		return nil, fmt.Errorf("%w: stride needs at least two elements in %q", ErrInvalidOperation, l.name)
	}
	vals, err := l.strictNumeric()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals)-1)
	for i := 1; i < len(vals); i++ {
		out[i-1] = vals[i] - vals[i-1]
	}
	return out, nil
}

// percentile search bounds; any stored number must fall strictly
// between them.
const (
	percentilePeak   = 1e8
	percentileTrough = -1e8
)

// Percentile locates an element splitting the container near the given
// fraction p in (0, 0.99). It bisects over stored values rather than
// positions: a pivot is accepted when the counts at or below and at or
// above it match the targets derived from p, otherwise the search
// window narrows around the pivot. When no stored value remains inside
// the window, the maximum is returned with a diagnostic.
func (l *List[T]) Percentile(p float64) (float64, error) {
	if p <= 0 || p >= 0.99 {
		return 0, fmt.Errorf("%w: percentile fraction %v outside (0, 0.99)", ErrInvalidOperation, p)
	}
	if l.items.Len() <= 1 {
		return 0, fmt.Errorf("%w: percentile needs at least two elements in %q", ErrInvalidOperation, l.name)
	}
	vals, err := l.strictNumeric()
	if err != nil {
		return 0, err
	}
	n := len(vals)
	above := int(math.Ceil(float64(n)*p)) + 1
	below := n - above

	peak, trough := float64(percentilePeak), float64(percentileTrough)
	for {
		pivot, found := 0.0, false
		for _, v := range vals {
			if v > trough && v < peak {
				pivot, found = v, true
				break
			}
		}
		if !found {
			max := vals[0]
			for _, v := range vals[1:] {
				if v > max {
					max = v
				}
			}
			diagWarn("percentile search exhausted, falling back to maximum",
				"fraction", p, "name", l.name)
			return max, nil
		}
		atOrBelow, atOrAbove := 0, 0
		for _, v := range vals {
			if v <= pivot {
				atOrBelow++
			}
			if v >= pivot {
				atOrAbove++
			}
		}
		if atOrBelow == above || atOrAbove == below || (atOrBelow > above && atOrAbove > below) {
			return pivot, nil
		}
		if atOrBelow > above {
			peak = pivot
		} else {
			trough = pivot
		}
	}
}
