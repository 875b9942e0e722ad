package weekday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMondayFirst(t *testing.T) {
	assert.Equal(t, 0, MondayFirst(time.Monday))
	assert.Equal(t, 4, MondayFirst(time.Friday))
	assert.Equal(t, 5, MondayFirst(time.Saturday))
	assert.Equal(t, 6, MondayFirst(time.Sunday))
}

func TestDefaultWorking(t *testing.T) {
	assert.True(t, DefaultWorking(time.Monday))
	assert.True(t, DefaultWorking(time.Friday))
	assert.False(t, DefaultWorking(time.Saturday))
	assert.False(t, DefaultWorking(time.Sunday))
}

func TestTruncate(t *testing.T) {
	input := time.Date(2025, time.March, 15, 18, 42, 7, 123, time.UTC)
	expected := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, Truncate(input))
}

func TestUTCDate(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	input := time.Date(2025, time.March, 15, 23, 30, 0, 0, zone)

	// Календарная дата сохраняется, зона и время отбрасываются
	expected := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, UTCDate(input))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, 2)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), last)

	first, last = MonthBounds(2025, 12)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), last)
}
