package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestCompositeMeanOfAllThree(t *testing.T) {
	a := NewAggregator(60, 25)

	final, ok := a.Composite(intPtr(80), intPtr(70), intPtr(60))
	assert.True(t, ok)
	assert.Equal(t, 70, final)
}

func TestCompositeMeanOfPresentOnly(t *testing.T) {
	a := NewAggregator(60, 25)

	final, ok := a.Composite(intPtr(80), nil, intPtr(60))
	assert.True(t, ok)
	assert.Equal(t, 70, final)
}

func TestCompositeRounds(t *testing.T) {
	a := NewAggregator(60, 25)

	final, ok := a.Composite(intPtr(80), intPtr(71), nil)
	assert.True(t, ok)
	assert.Equal(t, 76, final) // 75.5 rounds up
}

func TestCompositeNoInputs(t *testing.T) {
	a := NewAggregator(60, 25)

	_, ok := a.Composite(nil, nil, nil)
	assert.False(t, ok)
}

func TestCompositeIsIdempotent(t *testing.T) {
	a := NewAggregator(60, 25)

	first, _ := a.Composite(intPtr(82), intPtr(75), intPtr(90))
	second, _ := a.Composite(intPtr(82), intPtr(75), intPtr(90))
	assert.Equal(t, first, second)
	assert.Equal(t, a.IsElite(first), a.IsElite(second))
}

func TestClampInterviewBand(t *testing.T) {
	a := NewAggregator(60, 25)

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below floor", 5, 25},
		{"at floor", 25, 25},
		{"in band", 64, 64},
		{"above ceiling", 140, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ClampInterview(tt.in))
		})
	}
}

func TestEliteThreshold(t *testing.T) {
	a := NewAggregator(60, 25)

	assert.True(t, a.IsElite(82))
	assert.True(t, a.IsElite(60))
	assert.False(t, a.IsElite(59))
}
