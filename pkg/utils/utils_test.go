package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 2025-06-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	// 01:30 UTC ainda é o dia anterior em UTC-3
	now := time.Date(2025, 6, 2, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), StartOfDay(now, loc))
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StartOfDay(now, nil))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.125000001))
	assert.Equal(t, -50.0, RoundWithTwoDecimalPlace(-49.999))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}
