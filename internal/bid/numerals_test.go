package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumeralRange_Defaults(t *testing.T) {
	r := NewNumeralRange(RangeOptions{})

	assert.Equal(t, PolicyLazy, r.Policy())
	assert.Equal(t, DefaultInitialCeiling, r.Ceiling())
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(DefaultInitialCeiling))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(DefaultInitialCeiling+1))
}

func TestNewNumeralRange_Fixed(t *testing.T) {
	r := NewNumeralRange(RangeOptions{Policy: PolicyFixed})

	assert.Equal(t, DefaultFixedCeiling, r.Ceiling())
	for _, idx := range []int{1, 270, 299, 300} {
		assert.False(t, r.Reach(idx), "fixed policy must never extend (index %d)", idx)
	}
	assert.Equal(t, DefaultFixedCeiling, r.Ceiling())
}

// TestNumeralRange_ReachExtendsByIncrement checks that rendering at or past
// ceiling-threshold grows the ceiling by exactly one increment.
func TestNumeralRange_ReachExtendsByIncrement(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		extended bool
		want     int
	}{
		{name: "far below threshold", index: 1, extended: false, want: 200},
		{name: "just below threshold", index: 169, extended: false, want: 200},
		{name: "at threshold", index: 170, extended: true, want: 400},
		{name: "at ceiling", index: 200, extended: true, want: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewNumeralRange(DefaultRangeOptions())

			assert.Equal(t, tt.extended, r.Reach(tt.index))
			assert.Equal(t, tt.want, r.Ceiling())
		})
	}
}

// TestNumeralRange_ReachIdempotent ensures repeated renders of the same item
// do not keep growing the ceiling.
func TestNumeralRange_ReachIdempotent(t *testing.T) {
	r := NewNumeralRange(DefaultRangeOptions())

	require.True(t, r.Reach(185))
	require.Equal(t, 400, r.Ceiling())

	for i := 0; i < 10; i++ {
		assert.False(t, r.Reach(185))
	}
	assert.Equal(t, 400, r.Ceiling())
}

// TestNumeralRange_ThresholdBelowIncrement checks that a threshold wider than
// the increment is narrowed so one repeated render extends only once.
func TestNumeralRange_ThresholdBelowIncrement(t *testing.T) {
	r := NewNumeralRange(RangeOptions{InitialCeiling: 200, ExtendThreshold: 250, ExtendBy: 100})

	require.True(t, r.Reach(180))
	require.Equal(t, 300, r.Ceiling())

	for i := 0; i < 5; i++ {
		assert.False(t, r.Reach(180), "render %d at the same index extended again", i)
	}
	assert.Equal(t, 300, r.Ceiling())
}

// TestNumeralRange_ZeroThreshold extends only when the ceiling itself renders.
func TestNumeralRange_ZeroThreshold(t *testing.T) {
	r := NewNumeralRange(RangeOptions{InitialCeiling: 50, ExtendThreshold: 0, ExtendBy: 50})

	assert.False(t, r.Reach(49))
	assert.Equal(t, 50, r.Ceiling())
	assert.True(t, r.Reach(50))
	assert.Equal(t, 100, r.Ceiling())
	assert.False(t, r.Reach(50))
}

// TestNumeralRange_NeverShrinks walks the strip forward and back and checks the
// range stays contiguous and monotonic.
func TestNumeralRange_NeverShrinks(t *testing.T) {
	r := NewNumeralRange(DefaultRangeOptions())
	prev := r.Ceiling()

	visit := func(idx int) {
		r.Reach(idx)
		require.GreaterOrEqual(t, r.Ceiling(), prev)
		require.True(t, r.Contains(1))
		require.True(t, r.Contains(r.Ceiling()))
		prev = r.Ceiling()
	}

	for idx := 1; idx <= 1000; idx++ {
		if idx <= r.Ceiling() {
			visit(idx)
		}
	}
	for idx := 1000; idx >= 1; idx-- {
		visit(idx)
	}

	assert.GreaterOrEqual(t, r.Ceiling(), 1000)
	assert.Zero(t, (r.Ceiling()-DefaultInitialCeiling)%DefaultExtendBy)
}

func TestNumeralRange_Clamp(t *testing.T) {
	r := NewNumeralRange(RangeOptions{Policy: PolicyFixed, FixedCeiling: 50})

	assert.Equal(t, 1, r.Clamp(-4))
	assert.Equal(t, 1, r.Clamp(0))
	assert.Equal(t, 25, r.Clamp(25))
	assert.Equal(t, 50, r.Clamp(51))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("fixed")
	require.NoError(t, err)
	assert.Equal(t, PolicyFixed, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyLazy, p)

	_, err = ParsePolicy("infinite")
	assert.Error(t, err)
}
