package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-parstat/parstat"
)

func TestRunDemoReport(t *testing.T) {
	var sb strings.Builder
	err := runDemo(&sb, 100, 4, parstat.NewSeededSource(7))
	require.NoError(t, err)
	out := sb.String()

	assert.Contains(t, out, "=== parstat demo ===")
	assert.Contains(t, out, "samples: 100, workers: 4")
	assert.Contains(t, out, "first raw samples:")
	assert.Contains(t, out, "raw stats:")
	for _, name := range []string{"square", "sqrt_approx", "log_approx", "sigmoid_approx"} {
		assert.Contains(t, out, name+":")
		assert.Contains(t, out, name+" stats:")
	}
}

func TestRunDemoEmptyBuffer(t *testing.T) {
	var sb strings.Builder
	err := runDemo(&sb, 0, 4, parstat.NewSeededSource(7))
	require.NoError(t, err)
	// Zero-length input is a defined default, not an error.
	assert.Contains(t, sb.String(), "raw stats: mean=0.000000")
}

func TestFormatHead(t *testing.T) {
	assert.Equal(t, "[]", formatHead(nil, 5))
	assert.Equal(t, "[1.000000 2.000000]", formatHead([]float64{1, 2}, 5))
	assert.Equal(t, "[1.000000]", formatHead([]float64{1, 2}, 1))
}
