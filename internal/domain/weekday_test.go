package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayFromTime(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{date: "2025-06-15", want: WeekdaySunday},
		{date: "2025-06-16", want: WeekdayMonday},
		{date: "2025-06-17", want: WeekdayTuesday},
		{date: "2025-06-18", want: WeekdayWednesday},
		{date: "2025-06-19", want: WeekdayThursday},
		{date: "2025-06-20", want: WeekdayFriday},
		{date: "2025-06-21", want: WeekdaySaturday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := time.Parse(DateFormat, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, WeekdayFromTime(date))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, WeekdayMonday, day)

	// Только канонические английские названия, без учёта регистра не парсим
	_, err = ParseWeekday("monday")
	assert.Error(t, err)

	_, err = ParseWeekday("Понедельник")
	assert.Error(t, err)
}

func TestWeekday_Valid(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, day.Valid(), "day %s", day)
	}
	assert.False(t, Weekday("Someday").Valid())
}
