package sequence

// Slice returns the values of s from index start up to but excluding index
// end. Negative indices count from the end of the sequence. Indices beyond
// either end are clamped, and an empty sequence is returned if the resulting
// range is empty.
func (s Sequence[T]) Slice(start, end int) Sequence[T] {
	n := len(s.values)
	r, ok := span(n).intersect(interval{start: translate(start, n), end: translate(end, n)})
	if !ok {
		return Sequence[T]{}
	}
	return Sequence[T]{values: clone(s.values[r.start:r.end])}
}

// Splice returns a new sequence where deleteCount values starting at index
// start are replaced with items. A negative start counts from the end of the
// sequence; start is clamped to [0, s.Len()] and deleteCount to the number
// of values available from start. With a deleteCount of 0, items are
// inserted before the value at start.
func (s Sequence[T]) Splice(start, deleteCount int, items ...T) Sequence[T] {
	n := len(s.values)
	at := resolve(start, n)
	removed := interval{start: at, end: at + min(max(deleteCount, 0), n-at)}
	acc := make([]T, 0, n-removed.len()+len(items))
	acc = append(acc, s.values[:removed.start]...)
	acc = append(acc, items...)
	acc = append(acc, s.values[removed.end:]...)
	return Sequence[T]{values: acc}
}
