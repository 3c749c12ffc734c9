// Package dayclock вычисляет календарные дни в одной канонической временной зоне.
package dayclock

import (
	"fmt"
	"time"
)

// DateFormat формат ключа календарного дня (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Clock источник текущего времени, привязанный к временной зоне
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New создает часы для переданной временной зоны
func New(loc *time.Location) *Clock {
	return NewWithNow(loc, time.Now)
}

// NewWithNow создает часы с подменяемым источником времени (для тестов)
func NewWithNow(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc, now: now}
}

// Load создает часы по имени IANA зоны ("UTC", "Europe/Paris")
func Load(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("dayclock: load timezone %q: %w", timezone, err)
	}
	return New(loc), nil
}

// Location возвращает каноническую зону
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now возвращает текущее время в канонической зоне
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today возвращает ключ текущего дня
func (c *Clock) Today() string {
	return c.DateKey(c.now())
}

// DateKey возвращает ключ дня, к которому относится момент t
func (c *Clock) DateKey(t time.Time) string {
	return t.In(c.loc).Format(DateFormat)
}

// DayBounds возвращает границы дня [00:00:00.000, 23:59:59.999] включительно
func (c *Clock) DayBounds(dateKey string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateFormat, dateKey, c.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("dayclock: invalid date key %q: %w", dateKey, err)
	}

	// AddDate корректно учитывает переходы на летнее время
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end, nil
}
