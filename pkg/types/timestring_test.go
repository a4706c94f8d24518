package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "with seconds", input: "09:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "across hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "zero", start: "12:00", minutes: 0, want: "12:00"},
		// Граница суток: результат используется только для сравнения интервалов
		{name: "past midnight", start: "23:50", minutes: 30, want: "24:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes_Invalid(t *testing.T) {
	_, err := TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:10").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("09:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Лексикографическое сравнение корректно благодаря ведущим нулям
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	// И для значений за пределами суток
	assert.True(t, TimeString("23:59").IsBefore("24:20"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 15, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Колонки TIME приходят с секундами
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("17:30")))
	assert.Equal(t, TimeString("17:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)
}
