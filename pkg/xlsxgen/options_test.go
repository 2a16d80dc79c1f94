package xlsxgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 1_000_000, opts.Rows)
	assert.Equal(t, 100_000, opts.ProgressInterval())
	assert.NoError(t, opts.Validate())
}

func TestProgressInterval(t *testing.T) {
	tests := []struct {
		every    int
		expected int
	}{
		{0, DefaultProgressEvery},
		{-1, 0},
		{1, 1},
		{500, 500},
	}

	for _, tt := range tests {
		opts := Options{ProgressEvery: tt.every}
		if got := opts.ProgressInterval(); got != tt.expected {
			t.Errorf("ProgressInterval() with ProgressEvery=%d = %d, expected %d", tt.every, got, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Options{Rows: 0}.Validate())
	assert.NoError(t, Options{Rows: MaxRows}.Validate())
	assert.ErrorIs(t, Options{Rows: -5}.Validate(), ErrInvalidRowCount)
	assert.ErrorIs(t, Options{Rows: MaxRows + 1}.Validate(), ErrTooManyRows)
}

func TestEffectiveSeed(t *testing.T) {
	assert.Equal(t, uint64(77), Options{Seed: 77}.EffectiveSeed())
	assert.NotZero(t, Options{}.EffectiveSeed())
}
