package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMicros(t *testing.T) {
	t.Run("Whole Units", func(t *testing.T) {
		micros, err := ToMicros("10")
		assert.NoError(t, err)
		assert.Equal(t, int64(10_000_000), micros)
	})

	t.Run("Target CPA", func(t *testing.T) {
		micros, err := ToMicros("50")
		assert.NoError(t, err)
		assert.Equal(t, int64(50_000_000), micros)
	})

	t.Run("Fractional Units", func(t *testing.T) {
		micros, err := ToMicros("10.50")
		assert.NoError(t, err)
		assert.Equal(t, int64(10_500_000), micros)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ToMicros("")
		assert.Error(t, err)
	})

	t.Run("Not A Number", func(t *testing.T) {
		_, err := ToMicros("ten")
		assert.Error(t, err)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := ToMicros("-1")
		assert.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		out, err := FormatDate("2024-02-26")
		assert.NoError(t, err)
		assert.Equal(t, "20240226", out)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		_, err := FormatDate("26/02/2024")
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := FormatDate("")
		assert.Error(t, err)
	})
}

func TestColumnLetter(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{10, "K"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ColumnLetter(tc.index))
	}
}
