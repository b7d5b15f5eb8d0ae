package vnlunar

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTimeZone is the UTC offset, in hours, of Vietnamese civil time.
const DefaultTimeZone = 7.0

// ErrInvalidLeapFlag is returned when a lunar date claims to be in a leap
// month that its lunar year does not have.
var ErrInvalidLeapFlag = errors.New("vnlunar: invalid leap month flag")

// LeapFlagError describes a lunar date whose leap flag does not match its
// lunar year. It unwraps to [ErrInvalidLeapFlag].
type LeapFlagError struct {
	Month     int // The month that was flagged as leap.
	Year      int // The lunar year.
	LeapMonth int // The actual leap month of Year, or 0 if it has none.
}

func (e *LeapFlagError) Error() string {
	if e.LeapMonth == 0 {
		return fmt.Sprintf("%v: lunar year %d has no leap month, got leap month %d", ErrInvalidLeapFlag, e.Year, e.Month)
	}
	return fmt.Sprintf("%v: leap month of lunar year %d is %d, got leap month %d", ErrInvalidLeapFlag, e.Year, e.LeapMonth, e.Month)
}

func (e *LeapFlagError) Unwrap() error { return ErrInvalidLeapFlag }

// LunarDate is a date in the Vietnamese lunar calendar. Leap is set when the
// date lies in the repeated (leap) occurrence of Month. LunarDate values are
// comparable with ==.
type LunarDate struct {
	Day   int
	Month int
	Year  int
	Leap  bool
}

func (l LunarDate) String() string {
	if l.Leap {
		return fmt.Sprintf("%04d-%02d-%02d (leap)", l.Year, l.Month, l.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", l.Year, l.Month, l.Day)
}

// ConvertSolarToLunar converts the solar date day/month/year, read in a zone
// tz hours east of UTC, to a lunar date.
func ConvertSolarToLunar(day, month, year int, tz float64) LunarDate {
	dayNumber := JDFromDate(day, month, year)
	k := newMoonIndex(dayNumber)

	monthStart := NewMoonDay(k+1, tz)
	if monthStart > dayNumber {
		monthStart = NewMoonDay(k, tz)
	}

	a11 := month11(year, tz)
	b11 := a11
	var lunarYear int
	if a11 >= monthStart {
		lunarYear = year
		a11 = month11(year-1, tz)
	} else {
		lunarYear = year + 1
		b11 = month11(year+1, tz)
	}

	lunarDay := dayNumber - monthStart + 1
	diff := floorDiv(monthStart-a11, 29)
	lunarMonth := diff + 11
	leap := false
	if isLeapYear(a11, b11) {
		leapOff := leapOffset(a11, tz)
		if diff >= leapOff {
			lunarMonth = diff + 10
			leap = diff == leapOff
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}

	return LunarDate{Day: lunarDay, Month: lunarMonth, Year: lunarYear, Leap: leap}
}

// monthStartIndex returns the index of the new moon that begins the given
// lunar month.
func monthStartIndex(month, year int, leap bool, tz float64) (int, error) {
	a11, b11 := yearAnchors(month, year, tz)

	off := month - 11
	if off < 0 {
		off += 12
	}

	if isLeapYear(a11, b11) {
		leapOff := leapOffset(a11, tz)
		if leap && month != leapMonthNumber(leapOff) {
			return 0, &LeapFlagError{Month: month, Year: year, LeapMonth: LeapMonth(year, tz)}
		}
		if leap || off >= leapOff {
			off++
		}
	} else if leap {
		return 0, &LeapFlagError{Month: month, Year: year, LeapMonth: LeapMonth(year, tz)}
	}

	return nearestNewMoonIndex(a11) + off, nil
}

// ConvertLunarToSolar converts a lunar date to the solar date it falls on in
// a zone tz hours east of UTC. Day is not checked against the length of the
// month; a day past the month's end yields a date in the following month.
// It returns an error wrapping [ErrInvalidLeapFlag] if leap is set but month
// is not the leap month of year.
func ConvertLunarToSolar(day, month, year int, leap bool, tz float64) (d, m, y int, err error) {
	k, err := monthStartIndex(month, year, leap, tz)
	if err != nil {
		return 0, 0, 0, err
	}
	d, m, y = JDToDate(NewMoonDay(k, tz) + day - 1)
	return d, m, y, nil
}

// SolarToLunar returns the lunar date of the calendar day t falls on in a
// zone tz hours east of UTC.
func SolarToLunar(t time.Time, tz float64) LunarDate {
	d := dateFromTime(t, tz)
	return ConvertSolarToLunar(d.day, int(d.month), d.year, tz)
}

// LunarToSolar returns midnight UTC of the solar day that l falls on in a
// zone tz hours east of UTC.
func LunarToSolar(l LunarDate, tz float64) (time.Time, error) {
	d, m, y, err := ConvertLunarToSolar(l.Day, l.Month, l.Year, l.Leap, tz)
	if err != nil {
		return time.Time{}, err
	}
	return date{year: y, month: time.Month(m), day: d}.toTime(), nil
}

// MonthLength returns the number of days, 29 or 30, in the given lunar month.
func MonthLength(month, year int, leap bool, tz float64) (int, error) {
	k, err := monthStartIndex(month, year, leap, tz)
	if err != nil {
		return 0, err
	}
	return NewMoonDay(k+1, tz) - NewMoonDay(k, tz), nil
}
