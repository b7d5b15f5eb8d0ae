package vnlunar

import "time"

// searchWindow is how far, in days, NextHoliday and PreviousHoliday look.
// It spans three lunar years so that an observance skipped in short months
// is still found.
const searchWindow = 3 * 385

// NextHoliday returns the next observance strictly after the given date.
// Returns false if none falls within the next three lunar years.
func (c *Calendar) NextHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t, c.tz)
	from := dateFromJDN(d.jdn() + 1)
	to := dateFromJDN(d.jdn() + searchWindow)

	found := c.holidaysInRange(from, to)
	if len(found) == 0 {
		return Holiday{}, false
	}
	return found[0], true
}

// PreviousHoliday returns the most recent observance strictly before the
// given date. Returns false if none falls within the previous three lunar
// years.
func (c *Calendar) PreviousHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t, c.tz)
	from := dateFromJDN(d.jdn() - searchWindow)
	to := dateFromJDN(d.jdn() - 1)

	found := c.holidaysInRange(from, to)
	if len(found) == 0 {
		return Holiday{}, false
	}
	return found[len(found)-1], true
}

// LunarNewYear returns the solar date (midnight UTC) of Tết, the first day
// of lunar year year.
func (c *Calendar) LunarNewYear(year int) time.Time {
	// A regular month never fails the leap check.
	t, _ := c.ToSolar(LunarDate{Day: 1, Month: 1, Year: year})
	return t
}

// LeapMonth returns the leap month of lunar year year in the calendar's
// zone, or 0 if the year has no leap month.
func (c *Calendar) LeapMonth(year int) int {
	return LeapMonth(year, c.tz)
}

// MonthLength returns the number of days in the given lunar month.
func (c *Calendar) MonthLength(month, year int, leap bool) (int, error) {
	return MonthLength(month, year, leap, c.tz)
}

// --- Package-level convenience functions ---

// NextHoliday returns the next observance strictly after the given date.
func NextHoliday(t time.Time) (Holiday, bool) { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent observance strictly before the given date.
func PreviousHoliday(t time.Time) (Holiday, bool) { return defaultCal.PreviousHoliday(t) }

// LunarNewYear returns the solar date of Tết for lunar year year at UTC+7.
func LunarNewYear(year int) time.Time { return defaultCal.LunarNewYear(year) }
