package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Contains(t *testing.T) {
	odd := New(1, 9)
	even := New(2, 8)

	tests := []struct {
		name string
		r    Range
		n    int
		want bool
	}{
		{"OddInside", odd, 5, true},
		{"OddLowerBound", odd, 1, true},
		{"OddUpperBound", odd, 9, true},
		{"OddWrongParity", odd, 4, false},
		{"OddAbove", odd, 11, false},
		{"EvenInside", even, 6, true},
		{"EvenWrongParity", even, 5, false},
		{"EvenBelow", even, 0, false},
		{"EvenAbove", even, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.n))
		})
	}
}

func TestRange_ContainsMatchesDefinition(t *testing.T) {
	r := New(3, 11)
	for x := -5; x < 20; x++ {
		want := x%2 != 0 && 3 <= x && x <= 11
		assert.Equal(t, want, r.Contains(x), "x=%d", x)
	}
}

func TestRange_Equal(t *testing.T) {
	assert.True(t, New(1, 5).Equal(New(1, 5)))
	assert.False(t, New(1, 5).Equal(New(1, 7)))
	assert.False(t, New(1, 5).Equal(New(3, 5)))
}

func TestSet_Contains(t *testing.T) {
	s := Set{New(1, 3), New(2, 4)}

	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
	assert.False(t, Set{}.Contains(1))
}

func TestSet_Equal(t *testing.T) {
	a := Set{New(1, 3), New(2, 4)}

	assert.True(t, a.Equal(Set{New(1, 3), New(2, 4)}))
	assert.False(t, a.Equal(Set{New(2, 4), New(1, 3)}))
	assert.False(t, a.Equal(Set{New(1, 3)}))
}

func TestDefault(t *testing.T) {
	d := Default()

	assert.True(t, d.Contains(1))
	assert.True(t, d.Contains(998))
	assert.True(t, d.Contains(999))
	assert.False(t, d.Contains(0))
	assert.False(t, d.Contains(1000))
	assert.False(t, d.Contains(1001))
}
