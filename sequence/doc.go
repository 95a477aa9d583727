/*
Package sequence implements a small algebra over immutable, fixed-order sequences.
It defines the type Sequence, with methods for adding, removing and accessing
values at both ends, and the type Store, with methods for interacting with a
collection of named sequences.

A Sequence never changes once created. Every operation returns a new Sequence
(or a scalar) and leaves its receiver untouched, so values can be shared freely
between goroutines. The zero value is the empty sequence:

	var s sequence.Sequence[int]    // []
	s = s.Push(1).Push(2).Unshift(0) // [0 1 2]

Operations that need an element at a position that does not exist (First, Last,
At) return an error wrapping ErrNotFound rather than a zero value. Pop and Shift
on an empty sequence return the empty sequence unchanged; this is not an error.

Join and the length helpers operate on literal elements, values with a canonical
textual form:

	type Literal interface {
	  Number | ~string | ~bool
	}

A Store is essentially a wrapper around a map of sequences that provides convenience methods
safe to use from multiple goroutines.
*/
package sequence
