// Package circulis provides a richly-operated, double-ended ordered
// container built on a ring-buffer deque.
//
// # Overview
//
// The central type is [List][T]: a mutable ordered sequence with O(1)
// amortized push/pop at both ends that layers structural algorithms on
// top of the basic deque operations: circular rotation, ranged bulk
// mutation, statistical aggregation, grouping, flattening, set algebra
// over nested elements, shuffling, and whole-container comparison.
//
//	l := circulis.New[any](10, 20, 30, 40, 50).Named("readings")
//	l.Rotate(2)                 // [40 50 10 20 30]
//	l.Remove(1, 3, 1)           // [40 30]
//	total, _ := l.Sum(0, circulis.PolicyCoerce)
//
// Unlike an immutable pipeline collection, nearly every List operation
// mutates the receiver in place; operations that build a new value
// (Concat, Difference, Fragmentize, Pairs, Repeat, Slice) say so
// explicitly.
//
// # Heterogeneous elements
//
// List is generic, but most of the interesting behavior (numeric
// aggregation with per-element policies, set algebra over nested
// values, truthiness comparison) inspects element values dynamically,
// so List[any] is the common instantiation for mixed data:
//
//	l := circulis.New[any](1, "x", 2)
//	sum, _ := l.Sum(0, circulis.PolicyCoerce) // 3, "x" skipped
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type or need a typed key are
// package-level functions: [MapTo], [Convene], [Synergy], [Zip].
//
// # Failures and diagnostics
//
// Invalid input fails fast with one of three sentinel errors
// ([ErrTypeMismatch], [ErrInvalidOperation], [ErrIndexOutOfRange]) and
// leaves the container unmodified. Operations that are merely
// ill-advised, such as rotating or sorting an empty container,
// negative indexing, or zipping mismatched lengths, never
// fail; they log a diagnostic through the package logger (see
// [SetLogger]) and carry on.
package circulis
