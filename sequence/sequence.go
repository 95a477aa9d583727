package sequence

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Sequence represents an immutable, ordered collection of values of type T.
// The zero value is an empty sequence ready to use.
type Sequence[T any] struct {
	values []T
}

// Of creates a new Sequence holding a copy of values, in order.
func Of[T any](values ...T) Sequence[T] {
	return Sequence[T]{values: clone(values)}
}

// Build creates a new Sequence of length n with all its values set to x.
// A negative n is treated as 0.
func Build[T any](x T, n int) Sequence[T] {
	return BuildFunc(func(int) T { return x }, n)
}

// BuildFunc creates a new Sequence of length n where the value at position i
// is f(i). The sequence is accumulated from the back, one value prepended per
// step, so f is called exactly n times with positions n-1 down to 0. A
// negative n is treated as 0. The whole sequence is allocated upfront, so n
// is bounded by available memory.
func BuildFunc[T any](f func(position int) T, n int) Sequence[T] {
	if n <= 0 {
		return Sequence[T]{}
	}
	acc := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		acc[i] = f(i)
	}
	return Sequence[T]{values: acc}
}

// Len returns the number of values in the sequence.
func (s Sequence[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the values stored in the sequence.
func (s Sequence[T]) Values() []T {
	return clone(s.values)
}

// Push returns a new sequence with x appended after the last value.
func (s Sequence[T]) Push(x T) Sequence[T] {
	acc := make([]T, len(s.values)+1)
	copy(acc, s.values)
	acc[len(s.values)] = x
	return Sequence[T]{values: acc}
}

// Unshift returns a new sequence with x inserted before the first value.
func (s Sequence[T]) Unshift(x T) Sequence[T] {
	acc := make([]T, len(s.values)+1)
	acc[0] = x
	copy(acc[1:], s.values)
	return Sequence[T]{values: acc}
}

// Pop returns the sequence without its last value. An empty sequence is
// returned unchanged.
func (s Sequence[T]) Pop() Sequence[T] {
	init, _, ok := s.unsnoc()
	if !ok {
		return s
	}
	return init
}

// Shift returns the sequence without its first value. An empty sequence is
// returned unchanged.
func (s Sequence[T]) Shift() Sequence[T] {
	_, rest, ok := s.uncons()
	if !ok {
		return s
	}
	return rest
}

// Reverse returns a new sequence holding the values of s in opposite order.
// The last value is repeatedly split off the remaining front part and
// accumulated, so the cost is linear in the length of s and the call stack
// does not grow with it.
func (s Sequence[T]) Reverse() Sequence[T] {
	acc := make([]T, 0, len(s.values))
	rest := s
	for {
		init, last, ok := rest.unsnoc()
		if !ok {
			break
		}
		acc = append(acc, last)
		rest = init
	}
	return Sequence[T]{values: acc}
}

// At returns the value at index i. Negative indices count from the end of the
// sequence, -1 being the last value. The method returns an error wrapping
// ErrNotFound if the resolved index is out of range.
func (s Sequence[T]) At(i int) (T, error) {
	n := len(s.values)
	j := translate(i, n)
	if j < 0 || j >= n {
		var zero T
		return zero, errors.Wrapf(ErrNotFound, "index %d out of range for length %d", i, n)
	}
	return s.values[j], nil
}

// First returns the first value of the sequence, or an error wrapping
// ErrNotFound if the sequence is empty.
func (s Sequence[T]) First() (T, error) {
	head, _, ok := s.uncons()
	if !ok {
		return head, errors.Wrap(ErrNotFound, "first of empty sequence")
	}
	return head, nil
}

// Last returns the last value of the sequence, or an error wrapping
// ErrNotFound if the sequence is empty.
func (s Sequence[T]) Last() (T, error) {
	_, last, ok := s.unsnoc()
	if !ok {
		return last, errors.Wrap(ErrNotFound, "last of empty sequence")
	}
	return last, nil
}

// String returns the values of the sequence formatted as by fmt.Sprint
// applied to a slice.
func (s Sequence[T]) String() string {
	return fmt.Sprint(s.values)
}

// Includes reports whether x equals at least one value of s.
func Includes[T comparable](s Sequence[T], x T) bool {
	return IncludesFunc(s, func(v T) bool { return v == x })
}

// IncludesFunc reports whether at least one value of s satisfies match.
func IncludesFunc[T any](s Sequence[T], match func(T) bool) bool {
	for rest := s; ; {
		head, tail, ok := rest.uncons()
		if !ok {
			return false
		}
		if match(head) {
			return true
		}
		rest = tail
	}
}

// Equal reports whether x and y have the same length and equal values at
// every position.
func Equal[T comparable](x, y Sequence[T]) bool {
	if len(x.values) != len(y.values) {
		return false
	}
	for i := range x.values {
		if x.values[i] != y.values[i] {
			return false
		}
	}
	return true
}

// uncons splits the sequence into its first value and the remaining values.
// The last value returned is false if the sequence is empty.
func (s Sequence[T]) uncons() (T, Sequence[T], bool) {
	if len(s.values) == 0 {
		var zero T
		return zero, s, false
	}
	return s.values[0], Sequence[T]{values: s.values[1:]}, true
}

// unsnoc splits the sequence into its values but the last one and the last
// value. The last value returned is false if the sequence is empty.
func (s Sequence[T]) unsnoc() (Sequence[T], T, bool) {
	n := len(s.values)
	if n == 0 {
		var zero T
		return s, zero, false
	}
	return Sequence[T]{values: s.values[:n-1:n-1]}, s.values[n-1], true
}

// clone returns a copy of x, or nil if x is empty.
func clone[T any](x []T) []T {
	if len(x) == 0 {
		return nil
	}
	c := make([]T, len(x))
	copy(c, x)
	return c
}
