package sequence

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValues = []int{10, 20, 30}

func TestOf(t *testing.T) {
	values := []int{1, 2, 3}
	s := Of(values...)
	values[0] = 9
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.Equal(t, 0, Of[int]().Len())
}

func TestBuild(t *testing.T) {
	for n := 0; n <= 16; n++ {
		s := Build("v", n)
		require.Equal(t, n, s.Len(), "length %d", n)
		for _, v := range s.Values() {
			require.Equal(t, "v", v)
		}
	}
	assert.Equal(t, 0, Build(1, -3).Len())
}

func TestBuildFunc(t *testing.T) {
	var calls []int
	s := BuildFunc(func(i int) int {
		calls = append(calls, i)
		return i * i
	}, 4)
	assert.Equal(t, []int{0, 1, 4, 9}, s.Values())
	assert.Equal(t, []int{3, 2, 1, 0}, calls)

	calls = nil
	assert.Equal(t, 0, BuildFunc(func(i int) int { calls = append(calls, i); return i }, 0).Len())
	assert.Empty(t, calls)
}

func TestPushUnshift(t *testing.T) {
	s := Of(testValues...)
	got := s.Push(40)
	assert.Equal(t, []int{10, 20, 30, 40}, got.Values())
	got = s.Unshift(0)
	assert.Equal(t, []int{0, 10, 20, 30}, got.Values())
	assert.Equal(t, testValues, s.Values(), "receiver should not change")

	var empty Sequence[int]
	assert.Equal(t, []int{1}, empty.Push(1).Values())
	assert.Equal(t, []int{1}, empty.Unshift(1).Values())
}

func TestPushDoesNotShareStorage(t *testing.T) {
	s := Of(1, 2, 3).Pop()
	x := s.Push(7)
	y := s.Push(8)
	assert.Equal(t, []int{1, 2, 7}, x.Values())
	assert.Equal(t, []int{1, 2, 8}, y.Values())
}

func TestPopShift(t *testing.T) {
	s := Of(testValues...)
	assert.Equal(t, []int{10, 20}, s.Pop().Values())
	assert.Equal(t, []int{20, 30}, s.Shift().Values())
	assert.Equal(t, testValues, s.Values(), "receiver should not change")

	var empty Sequence[int]
	assert.True(t, Equal(empty, empty.Pop()))
	assert.True(t, Equal(empty, empty.Shift()))
	assert.Equal(t, 0, Of(1).Pop().Len())
	assert.Equal(t, 0, Of(1).Shift().Len())
}

func TestPopAfterPush(t *testing.T) {
	for _, values := range [][]int{{1}, {1, 2}, {3, 2, 1, 0}} {
		s := Of(values...)
		got := s.Push(99).Pop()
		assert.True(t, Equal(s, got), "%v", values)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		id   int
		in   []int
		want []int
	}{
		{1, nil, nil},
		{2, []int{1}, []int{1}},
		{3, []int{1, 2}, []int{2, 1}},
		{4, []int{1, 2, 3, 4, 5}, []int{5, 4, 3, 2, 1}},
		{5, []int{7, 7, 7}, []int{7, 7, 7}},
	}
	for _, tt := range tests {
		s := Of(tt.in...)
		got := s.Reverse()
		assert.True(t, Equal(got, Of(tt.want...)), "test %d: got %v, want %v", tt.id, got, tt.want)
		assert.True(t, Equal(s, got.Reverse()), "test %d: reverse is not an involution", tt.id)
	}
}

func TestReverseLong(t *testing.T) {
	n := 1 << 20
	s := BuildFunc(func(i int) int { return i }, n)
	got := s.Reverse()
	first, err := got.First()
	require.NoError(t, err)
	assert.Equal(t, n-1, first)
	assert.True(t, Equal(s, got.Reverse()))
}

func TestIncludes(t *testing.T) {
	s := Of(1, 2, 3)
	assert.True(t, Includes(s, 2))
	assert.False(t, Includes(s, 4))
	assert.False(t, Includes(Of[int](), 1))
	assert.True(t, IncludesFunc(s, func(v int) bool { return v > 2 }))
	assert.False(t, IncludesFunc(s, func(v int) bool { return v > 3 }))
}

func TestAt(t *testing.T) {
	s := Of(testValues...)
	tests := []struct {
		id    int
		index int
		want  int
	}{
		{1, 0, 10},
		{2, 1, 20},
		{3, 2, 30},
		{4, -1, 30},
		{5, -3, 10},
	}
	for _, tt := range tests {
		got, err := s.At(tt.index)
		require.NoError(t, err, "test %d", tt.id)
		assert.Equal(t, tt.want, got, "test %d", tt.id)
	}
	for _, index := range []int{3, 5, -4, -100} {
		got, err := s.At(index)
		assert.True(t, errors.Is(err, ErrNotFound), "index %d: got error %v", index, err)
		assert.Zero(t, got)
	}
	_, err := Of[int]().At(0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirstLast(t *testing.T) {
	s := Of(7, 8, 9)
	first, err := s.First()
	require.NoError(t, err)
	assert.Equal(t, 7, first)
	last, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, 9, last)

	var empty Sequence[int]
	_, err = empty.First()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = empty.Last()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, ErrNotFound, errors.Cause(err))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Of[int](), Sequence[int]{}))
	assert.True(t, Equal(Of(1, 2), Of(1, 2)))
	assert.False(t, Equal(Of(1, 2), Of(2, 1)))
	assert.False(t, Equal(Of(1, 2), Of(1, 2, 3)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[]", Sequence[int]{}.String())
	assert.Equal(t, "[a b]", Of("a", "b").String())
}

func TestUnconsUnsnoc(t *testing.T) {
	_, _, ok := Sequence[int]{}.uncons()
	assert.False(t, ok)
	_, _, ok = Sequence[int]{}.unsnoc()
	assert.False(t, ok)

	head, rest, ok := Of(1, 2, 3).uncons()
	require.True(t, ok)
	assert.Equal(t, 1, head)
	assert.Equal(t, []int{2, 3}, rest.Values())

	init, last, ok := Of(1, 2, 3).unsnoc()
	require.True(t, ok)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{1, 2}, init.Values())
}
