package pds

import (
	"fmt"
	"strconv"
	"strings"
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date represents a calendar date in one of two mutually exclusive
// forms: year-month-day, or year and day-of-year.
type Date struct {
	year  int
	month int // 0 means the day-of-year form
	day   int
}

// NewDate creates a Date in year-month-day form.
func NewDate(year, month, day int) (*Date, error) {
	if year < 0 {
		return nil, validationErrorf("year %d is negative", year)
	}
	if month < 1 || month > 12 {
		return nil, validationErrorf("month %d is not between 1 and 12", month)
	}
	maxDay := monthDays[month]
	if month == 2 && isLeapYear(year) {
		maxDay = 29
	}
	if day < 1 || day > maxDay {
		return nil, validationErrorf("day %d is not between 1 and %d", day, maxDay)
	}
	return &Date{year: year, month: month, day: day}, nil
}

// NewDateDayOfYear creates a Date in day-of-year form.
func NewDateDayOfYear(year, day int) (*Date, error) {
	if year < 0 {
		return nil, validationErrorf("year %d is negative", year)
	}
	maxDay := 365
	if isLeapYear(year) {
		maxDay = 366
	}
	if day < 1 || day > maxDay {
		return nil, validationErrorf("day %d is not between 1 and %d", day, maxDay)
	}
	return &Date{year: year, day: day}, nil
}

// Year returns the year.
func (d *Date) Year() int {
	return d.year
}

// Month returns the month, with ok false for the day-of-year form.
func (d *Date) Month() (month int, ok bool) {
	if d.month == 0 {
		return 0, false
	}
	return d.month, true
}

// Day returns the day of the month, or the day of the year when Month
// reports absent.
func (d *Date) Day() int {
	return d.day
}

func (d *Date) String() string {
	if d.month == 0 {
		return fmt.Sprintf("%04d-%03d", d.year, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Time represents a local, UTC or zone-offset time of day.
type Time struct {
	hour       int
	minute     int
	second     float64
	hasSecond  bool
	utc        bool
	zoneHour   int
	zoneMinute int
	hasZone    bool
	hasZoneMin bool
}

// TimeOption configures optional Time fields at construction.
type TimeOption func(*Time)

// WithSecond sets the seconds field, which may carry a fraction.
func WithSecond(second float64) TimeOption {
	return func(t *Time) {
		t.second = second
		t.hasSecond = true
	}
}

// WithUTC marks the time as UTC. UTC takes precedence: any zone offset
// supplied alongside it is discarded.
func WithUTC() TimeOption {
	return func(t *Time) {
		t.utc = true
	}
}

// WithZone sets a zone offset hour.
func WithZone(hour int) TimeOption {
	return func(t *Time) {
		t.zoneHour = hour
		t.hasZone = true
	}
}

// WithZoneMinute sets a zone offset with a minutes part.
func WithZoneMinute(hour, minute int) TimeOption {
	return func(t *Time) {
		t.zoneHour = hour
		t.zoneMinute = minute
		t.hasZone = true
		t.hasZoneMin = true
	}
}

// NewTime creates a Time. Without options the time is local; WithUTC
// and WithZone select the other two forms, with WithUTC winning when
// both are supplied.
func NewTime(hour, minute int, opts ...TimeOption) (*Time, error) {
	t := &Time{hour: hour, minute: minute}
	for _, opt := range opts {
		opt(t)
	}
	if t.utc {
		t.zoneHour = 0
		t.zoneMinute = 0
		t.hasZone = false
		t.hasZoneMin = false
	}
	if t.hour < 0 || t.hour > 23 {
		return nil, validationErrorf("hour %d is not between 0 and 23", t.hour)
	}
	if t.minute < 0 || t.minute > 59 {
		return nil, validationErrorf("minute %d is not between 0 and 59", t.minute)
	}
	if t.hasSecond && (t.second < 0 || t.second >= 60) {
		return nil, validationErrorf("second %v is not between 0 and 59", t.second)
	}
	if t.hasZone {
		if t.zoneHour < -12 || t.zoneHour > 12 {
			return nil, validationErrorf("zone hour %d is not between -12 and 12", t.zoneHour)
		}
		if t.hasZoneMin && (t.zoneMinute < 0 || t.zoneMinute > 59) {
			return nil, validationErrorf("zone minute %d is not between 0 and 59", t.zoneMinute)
		}
	}
	return t, nil
}

// Hour returns the hour.
func (t *Time) Hour() int {
	return t.hour
}

// Minute returns the minute.
func (t *Time) Minute() int {
	return t.minute
}

// Second returns the seconds field, with ok false when absent.
func (t *Time) Second() (second float64, ok bool) {
	return t.second, t.hasSecond
}

// UTC reports whether the time is UTC.
func (t *Time) UTC() bool {
	return t.utc
}

// Zone returns the zone offset hour, with ok false for local and UTC
// times.
func (t *Time) Zone() (hour int, ok bool) {
	if !t.hasZone {
		return 0, false
	}
	return t.zoneHour, true
}

// ZoneMinute returns the zone offset minutes part, with ok false when
// absent.
func (t *Time) ZoneMinute() (minute int, ok bool) {
	if !t.hasZoneMin {
		return 0, false
	}
	return t.zoneMinute, true
}

func (t *Time) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%02d:%02d", t.hour, t.minute)
	if t.hasSecond {
		sb.WriteByte(':')
		sb.WriteString(formatSecond(t.second))
	}
	switch {
	case t.utc:
		sb.WriteByte('Z')
	case t.hasZone:
		fmt.Fprintf(&sb, "%+03d", t.zoneHour)
		if t.hasZoneMin {
			fmt.Fprintf(&sb, ":%02d", t.zoneMinute)
		}
	}
	return sb.String()
}

// formatSecond renders seconds with a two-digit integer part and the
// shortest fraction that round-trips.
func formatSecond(second float64) string {
	s := strconv.FormatFloat(second, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i == 1 || (i < 0 && len(s) == 1) {
		s = "0" + s
	}
	return s
}

// DateTime composes one Date and one Time.
type DateTime struct {
	date *Date
	time *Time
}

// NewDateTime creates a DateTime from date and time.
func NewDateTime(date *Date, time *Time) (*DateTime, error) {
	if date == nil {
		return nil, validationErrorf("date must not be nil")
	}
	if time == nil {
		return nil, validationErrorf("time must not be nil")
	}
	return &DateTime{date: date, time: time}, nil
}

// Date returns the date component.
func (dt *DateTime) Date() *Date {
	return dt.date
}

// Time returns the time component.
func (dt *DateTime) Time() *Time {
	return dt.time
}

func (dt *DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}
