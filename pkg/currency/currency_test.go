package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	f := Default()

	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "$0.00"},
		{name: "single cent", cents: 1, want: "$0.01"},
		{name: "whole amount", cents: 70000, want: "$700.00"},
		{name: "thousands are grouped", cents: 123456, want: "$1,234.56"},
		{name: "millions are grouped", cents: 123456789, want: "$1,234,567.89"},
		{name: "negative amount", cents: -500, want: "-$5.00"},
		{name: "beyond float precision", cents: 9007199254740993, want: "$90,071,992,547,409.93"},
		{name: "largest amount", cents: math.MaxInt64, want: "$92,233,720,368,547,758.07"},
		{name: "smallest amount", cents: math.MinInt64, want: "-$92,233,720,368,547,758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.cents))
		})
	}
}

func TestNewFormatter(t *testing.T) {
	t.Run("empty locale falls back to en-US", func(t *testing.T) {
		f, err := NewFormatter("", "$")
		require.NoError(t, err)
		assert.Equal(t, "$12.50", f.Format(1250))
	})

	t.Run("custom symbol", func(t *testing.T) {
		f, err := NewFormatter("en-US", "US$")
		require.NoError(t, err)
		assert.Equal(t, "US$3.00", f.Format(300))
	})

	t.Run("invalid locale", func(t *testing.T) {
		_, err := NewFormatter("not a locale!", "$")
		assert.Error(t, err)
	})
}
