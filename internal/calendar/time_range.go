package calendar

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidClock     = errors.New("invalid time of day, expected HH:MM")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// TimeRange представляет временной интервал [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange создаёт интервал и отбрасывает пустые и перевёрнутые.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Window: нормализованное окно бронирования: дата и время суток в каноничном виде.
type Window struct {
	Date      string
	StartTime string
	EndTime   string
	Range     TimeRange
}

// NormalizeDate приводит дату к виду 2006-01-02.
func NormalizeDate(s string) (string, time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return "", time.Time{}, ErrInvalidDate
	}
	return d.Format(DateLayout), d, nil
}

// NormalizeClock приводит время суток к виду 15:04 ("9:05" -> "09:05").
func NormalizeClock(s string) (string, time.Duration, error) {
	c, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return "", 0, ErrInvalidClock
	}
	offset := time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute
	return c.Format(ClockLayout), offset, nil
}

// ParseWindow разбирает дату и интервал времени суток.
// Интервалы нулевой длины и перевёрнутые отклоняются с ErrInvalidTimeRange.
func ParseWindow(date, startTime, endTime string) (Window, error) {
	day, dayStart, err := NormalizeDate(date)
	if err != nil {
		return Window{}, err
	}
	start, startOff, err := NormalizeClock(startTime)
	if err != nil {
		return Window{}, err
	}
	end, endOff, err := NormalizeClock(endTime)
	if err != nil {
		return Window{}, err
	}

	tr, err := NewTimeRange(dayStart.Add(startOff), dayStart.Add(endOff))
	if err != nil {
		return Window{}, err
	}

	return Window{Date: day, StartTime: start, EndTime: end, Range: tr}, nil
}

// HasOverlap проверяет, пересекается ли newRange с existing.
// Интервалы полуоткрытые: касание концами пересечением не считается.
// Вторым значением возвращаются индексы пересекающихся интервалов в existing.
func HasOverlap(newRange TimeRange, existing []TimeRange) (bool, []int) {
	var conflicts []int

	for i, tr := range existing {
		if rangesOverlap(newRange, tr) {
			conflicts = append(conflicts, i)
		}
	}

	return len(conflicts) > 0, conflicts
}

// [a.Start, a.End) и [b.Start, b.End) пересекаются, если a.Start < b.End && b.Start < a.End
func rangesOverlap(a, b TimeRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
