package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOfBirth(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		parsed, err := ParseDateOfBirth("1990-05-17")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Round Trip Preserves Calendar Date", func(t *testing.T) {
		parsed, err := ParseDateOfBirth("1990-05-17")

		assert.NoError(t, err)
		assert.Equal(t, "1990-05-17", FormatDateOfBirth(parsed), "no timezone drift from the date to datetime normalization")
	})

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := ParseDateOfBirth("17/05/1990")

		assert.Error(t, err)
	})

	t.Run("Rejects Impossible Calendar Date", func(t *testing.T) {
		_, err := ParseDateOfBirth("1990-02-31")

		assert.Error(t, err)
	})
}

func TestFormatDateOfBirth(t *testing.T) {
	t.Run("Non UTC Stored Value Keeps Calendar Date", func(t *testing.T) {
		stored := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC).In(time.FixedZone("UTC+0", 0))

		assert.Equal(t, "1990-05-17", FormatDateOfBirth(stored))
	})
}
