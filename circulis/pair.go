package circulis

import "fmt"

// Pair holds two values of possibly different types. It is the
// container's tuple analogue: the element type produced by [Zip] and
// [List.Pairs], and the one sequence-like value that [List.Append]
// keeps atomic unless unpacking of pairs is requested explicitly.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Elements returns the pair's values in order, making Pair a recognized
// sequence-like value for set algebra and canonicalization.
func (p Pair[A, B]) Elements() []any { return []any{p.First, p.Second} }

// isPair marks the type for atomic-by-default append handling.
func (p Pair[A, B]) isPair() {}

type pairMarker interface{ isPair() }
