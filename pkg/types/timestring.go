package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString время в формате "HH:MM" (например, "09:30")
// Используется для хранения времени слотов без привязки к дате и часовому поясу.
// Благодаря ведущим нулям строки корректно сравниваются лексикографически.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка имеет формат HH:MM (00:00 - 23:59)
func (t TimeString) Validate() error {
	hours, minutes, err := t.split()
	if err != nil {
		return err
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return fmt.Errorf("%w: %q out of range", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	hours, minutes, err := t.split()
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// AddMinutes возвращает время через m минут
// Результат может выходить за пределы суток (например, "23:50" + 30 = "24:20") -
// такие значения используются только для сравнения границ интервалов.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 {
		return "", fmt.Errorf("%w: negative result", ErrInvalidTimeString)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки вида "09:00" и "09:00:00" (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	// Отбрасываем секунды, если колонка типа TIME
	if len(s) > 5 {
		s = s[:5]
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeString) split() (int, int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return hours, minutes, nil
}
