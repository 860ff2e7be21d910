package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	testCases := []struct {
		name          string
		values        []int
		expectedMode  int
		expectedCount int
	}{
		{"empty", []int{}, 0, 0},
		{"single", []int{2}, 2, 1},
		{"clear winner", []int{1, 1, 1, 2}, 1, 3},
		{"tie keeps first to reach count", []int{1, 2, 3}, 1, 1},
		{"late mode", []int{1, 2, 2, 2}, 2, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mode, count := Mode(tc.values)
			assert.Equal(t, tc.expectedMode, mode)
			assert.Equal(t, tc.expectedCount, count)
		})
	}
}

func TestModeCoverage(t *testing.T) {
	mode, coverage := ModeCoverage([]int{1, 1, 1, 2})
	assert.Equal(t, 1, mode)
	assert.Equal(t, 75, coverage)

	mode, coverage = ModeCoverage(nil)
	assert.Equal(t, 0, mode)
	assert.Equal(t, 0, coverage)

	// An evenly spread cohort has no dominant mode
	_, coverage = ModeCoverage([]int{1, 2, 3})
	assert.Equal(t, 33, coverage)
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 2.0, Average([]int{1, 2, 3}))
	assert.InDelta(t, 2.5, Average([]int{2, 3}), 0.0001)
}

func TestAverageFloat(t *testing.T) {
	assert.Equal(t, 0.0, AverageFloat(nil))
	assert.InDelta(t, 1.5, AverageFloat([]float64{1.0, 2.0}), 0.0001)
}

func TestPercentWhere(t *testing.T) {
	assert.Equal(t, 0, PercentWhere(0, 0))
	assert.Equal(t, 50, PercentWhere(4, 2))
	assert.Equal(t, 100, PercentWhere(3, 3))
	assert.Equal(t, 33, PercentWhere(3, 1))
}
