package domain

import (
	"fmt"
	"time"
)

// Weekday канонический идентификатор дня недели
// Хранится в БД как английское название дня ("Sunday" ... "Saturday").
// Никогда не выводится через локале-зависимое форматирование: преобразование
// даты в день недели делается явным switch по time.Weekday, чтобы результат
// не зависел от окружения.
type Weekday string

const (
	WeekdaySunday    Weekday = "Sunday"
	WeekdayMonday    Weekday = "Monday"
	WeekdayTuesday   Weekday = "Tuesday"
	WeekdayWednesday Weekday = "Wednesday"
	WeekdayThursday  Weekday = "Thursday"
	WeekdayFriday    Weekday = "Friday"
	WeekdaySaturday  Weekday = "Saturday"
)

// Weekdays все дни недели в порядке Sunday..Saturday
var Weekdays = []Weekday{
	WeekdaySunday,
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
}

// WeekdayFromTime возвращает день недели для даты
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Sunday:
		return WeekdaySunday
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	default:
		return WeekdaySaturday
	}
}

// ParseWeekday преобразует хранимую строку в Weekday
func ParseWeekday(s string) (Weekday, error) {
	for _, day := range Weekdays {
		if string(day) == s {
			return day, nil
		}
	}
	return "", fmt.Errorf("domain: unknown weekday %q", s)
}

// Valid возвращает true, если значение является одним из семи дней недели
func (w Weekday) Valid() bool {
	_, err := ParseWeekday(string(w))
	return err == nil
}

// String реализует fmt.Stringer
func (w Weekday) String() string {
	return string(w)
}
