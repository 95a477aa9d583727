package sequence

// interval represents a half-open interval of positions [start, end).
type interval struct {
	start int
	end   int
}

// span returns the interval covering every position of a sequence of
// length n.
func span(n int) interval {
	return interval{start: 0, end: n}
}

// intersect returns the intersection with the half-open interval y. If no
// intersection is found, the second value returned by the method
// is false.
func (x interval) intersect(y interval) (interval, bool) {
	r := interval{start: max(x.start, y.start), end: min(x.end, y.end)}
	if r.start >= r.end {
		return interval{}, false
	}
	return r, true
}

// len returns the number of positions in the interval.
func (x interval) len() int {
	return x.end - x.start
}

// translate returns the position designated by offset in a sequence of
// length n, negative offsets counting from the end. The result is not
// bounds-checked.
func translate(offset, n int) int {
	if offset < 0 {
		return offset + n
	}
	return offset
}

// resolve returns translate(offset, n) clamped to [0, n].
func resolve(offset, n int) int {
	return min(max(translate(offset, n), 0), n)
}
