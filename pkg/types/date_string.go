// Package types доменные типы-обертки для дат
package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout формат даты YYYY-MM-DD
const dateLayout = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString дата в формате "YYYY-MM-DD" без компоненты времени
// Используется на границе HTTP API; внутри домена даты хранятся как time.Time
type DateString string

// NewDateString создает DateString из time.Time (отбрасывая время)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := d.Time(time.UTC)
	return err
}

// Time конвертирует в time.Time (полночь в указанной локации)
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// Before сравнивает даты лексикографически (формат это позволяет)
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After сравнивает даты лексикографически
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}
