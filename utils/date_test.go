package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayIntAndBack(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 20240101, DayInt(at))
	assert.Equal(t, 540, MinuteOfDay(at))
	assert.Equal(t, at, DayToTime(20240101, 540, time.UTC))
}

func TestPrevMonthAcrossYearBoundary(t *testing.T) {
	year, month := PrevMonth(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, month)

	year, month = PrevMonth(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 7, month)
}

func TestMonthDayRange(t *testing.T) {
	first, last := MonthDayRange(2024, 2)
	assert.Equal(t, 20240201, first)
	assert.Equal(t, 20240229, last)

	first, last = MonthDayRange(2026, 12)
	assert.Equal(t, 20261201, first)
	assert.Equal(t, 20261231, last)
}
