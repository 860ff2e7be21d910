package patterns

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectQuantifiedMetrics_Families(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		example string
	}{
		{"percentage", "grew revenue by 25%", "25%"},
		{"decimal percentage", "reduced latency by 12.5%", "12.5%"},
		{"currency", "saved $2M annually", "$2M"},
		{"thousands", "processed 1,200,000 events", "1,200,000"},
		{"multiplier", "achieved 3x throughput", "3x"},
		{"count noun", "supported 40 customers", "40 customers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			metrics := detectQuantifiedMetrics(tc.text)
			require.Equal(t, 1, metrics.Count)
			assert.Contains(t, metrics.Examples[0], tc.example)
		})
	}
}

func TestDetectQuantifiedMetrics_UniqueExamples(t *testing.T) {
	// The same matched substring counts once
	metrics := detectQuantifiedMetrics("grew 25% then another 25% then 30%")
	assert.Equal(t, 2, metrics.Count)
	assert.Equal(t, []string{"25%", "30%"}, metrics.Examples)
}

func TestDetectQuantifiedMetrics_ExampleCap(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 15; i++ {
		sb.WriteString(fmt.Sprintf("improved step by %d%% ", i))
	}

	metrics := detectQuantifiedMetrics(sb.String())
	assert.Equal(t, maxMetricExamples, metrics.Count)
	assert.Len(t, metrics.Examples, maxMetricExamples)
}

func TestDetectQuantifiedMetrics_NoMetrics(t *testing.T) {
	metrics := detectQuantifiedMetrics("wrote software and attended meetings")
	assert.Equal(t, 0, metrics.Count)
	assert.Empty(t, metrics.Examples)
}
