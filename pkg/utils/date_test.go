package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("10/03/2024")
	assert.Error(t, err)
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "10/03/2024", FormatDateBR(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestMostRecent(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, MostRecent(nil, nil))
	assert.Equal(t, &older, MostRecent(&older, nil))
	assert.Equal(t, &newer, MostRecent(nil, &newer))
	assert.Equal(t, &newer, MostRecent(&older, &newer))
	assert.Equal(t, &newer, MostRecent(&newer, &older))
}
