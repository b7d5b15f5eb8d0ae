// Package vnlunar converts between the solar calendar and the Vietnamese
// lunar calendar (âm lịch), and computes the lunar observances that follow
// from it.
//
// Conversions use Hồ Ngọc Đức's astronomical approximation: new moons and
// solar terms are computed from truncated series rather than read from a
// table, so any year can be converted. Intermediate astronomical results are
// memoized process-wide; all functions are safe for concurrent use.
//
// A time zone is a plain offset in hours east of UTC. Vietnamese civil time
// is [DefaultTimeZone] (UTC+7); other offsets shift new moons and solar terms
// across midnight and can move a result by a day.
//
// Basic conversions:
//
//	l := vnlunar.SolarToLunar(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), vnlunar.DefaultTimeZone)
//	// l == vnlunar.LunarDate{Day: 1, Month: 1, Year: 2024}
//	t, err := vnlunar.LunarToSolar(vnlunar.LunarDate{Day: 1, Month: 2, Year: 2004, Leap: true}, vnlunar.DefaultTimeZone)
//	// t == 2004-03-21
//
// For observances, use the package-level functions or a Calendar instance:
//
//	cal := vnlunar.New(vnlunar.WithTimeZone(7))
//	cal.AddCustomHoliday(3, 12, "Giỗ ông nội")
package vnlunar

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Holiday represents one occurrence of a lunar observance.
type Holiday struct {
	Date  time.Time // The solar date of the observance (midnight UTC).
	Lunar LunarDate // The lunar date of the observance.
	Name  string    // The Vietnamese name of the observance (e.g., "Tết Nguyên Đán").
}

// monthDay identifies an annual lunar observance. Day 0 stands for the last
// day before the following month begins, so {12, 0} is New Year's Eve.
type monthDay struct {
	month int
	day   int
}

// builtinHolidays are the traditional observances, kept in the regular
// (non-leap) occurrence of their month.
var builtinHolidays = map[monthDay]string{
	{1, 1}:   "Tết Nguyên Đán",
	{1, 15}:  "Tết Nguyên Tiêu",
	{3, 3}:   "Tết Hàn Thực",
	{3, 10}:  "Giỗ Tổ Hùng Vương",
	{4, 15}:  "Lễ Phật Đản",
	{5, 5}:   "Tết Đoan Ngọ",
	{7, 15}:  "Lễ Vu Lan",
	{8, 15}:  "Tết Trung Thu",
	{9, 9}:   "Tết Trùng Cửu",
	{12, 23}: "Tết Ông Công Ông Táo",
	{12, 0}:  "Giao Thừa",
}

// Calendar holds observance data for one time zone and supports custom
// observances. Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	tz float64

	mu      sync.RWMutex
	custom  map[monthDay]string
	removed map[monthDay]bool
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithTimeZone sets the UTC offset, in hours, used for conversions and for
// normalizing input times. The default is [DefaultTimeZone].
func WithTimeZone(hours float64) Option {
	return func(c *Calendar) {
		c.tz = hours
	}
}

// New creates a new Calendar backed by the built-in observances.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		tz:      DefaultTimeZone,
		custom:  make(map[monthDay]string),
		removed: make(map[monthDay]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// TimeZone returns the calendar's UTC offset in hours.
func (c *Calendar) TimeZone() float64 { return c.tz }

// ToLunar returns the lunar date of the calendar day t falls on in the
// calendar's zone.
func (c *Calendar) ToLunar(t time.Time) LunarDate {
	return SolarToLunar(t, c.tz)
}

// ToSolar returns the solar date (midnight UTC) of a lunar date.
func (c *Calendar) ToSolar(l LunarDate) (time.Time, error) {
	return LunarToSolar(l, c.tz)
}

// active returns the name of the observance for key, checking custom
// observances first, then built-in ones (unless removed).
// The caller must hold c.mu.
func (c *Calendar) active(key monthDay) (string, bool) {
	if name, ok := c.custom[key]; ok {
		return name, true
	}
	if c.removed[key] {
		return "", false
	}
	name, ok := builtinHolidays[key]
	return name, ok
}

// lookup returns the observance falling on day d.
func (c *Calendar) lookup(d date) (string, bool) {
	l := c.lunarOf(d)
	next := c.lunarOf(dateFromJDN(d.jdn() + 1))

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !l.Leap {
		if name, ok := c.active(monthDay{month: l.Month, day: l.Day}); ok {
			return name, true
		}
	}
	if next.Day == 1 && !next.Leap {
		if name, ok := c.active(monthDay{month: prevMonth(next.Month), day: 0}); ok {
			return name, true
		}
	}
	return "", false
}

func (c *Calendar) lunarOf(d date) LunarDate {
	return ConvertSolarToLunar(d.day, int(d.month), d.year, c.tz)
}

func prevMonth(m int) int {
	if m == 1 {
		return 12
	}
	return m - 1
}

// IsHoliday reports whether a lunar observance (built-in or custom) falls
// on the given date. The input time is converted to the calendar's zone
// before extracting the calendar date.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(dateFromTime(t, c.tz))
	return ok
}

// HolidayName returns the observance name for the given date, or an empty
// string if there is none.
func (c *Calendar) HolidayName(t time.Time) string {
	name, _ := c.lookup(dateFromTime(t, c.tz))
	return name
}

// HolidaysInYear returns all observances in the given solar year, sorted by
// date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	from := date{year: year, month: time.January, day: 1}
	to := date{year: year, month: time.December, day: 31}
	return c.holidaysInRange(from, to)
}

// HolidaysInMonth returns all observances in the given solar year and month,
// sorted by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := date{year: year, month: month, day: 1}
	to := dateFromJDN(date{year: year, month: month + 1, day: 1}.jdn() - 1)
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns all observances in the range [from, to]
// inclusive, sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from, c.tz)
	toD := dateFromTime(to, c.tz)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// observances returns the active observance keys with their names.
func (c *Calendar) observances() map[monthDay]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[monthDay]string, len(builtinHolidays)+len(c.custom))
	for key := range builtinHolidays {
		if name, ok := c.active(key); ok {
			out[key] = name
		}
	}
	for key, name := range c.custom {
		out[key] = name
	}
	return out
}

// resolve returns the solar day on which observance key falls in lunar year
// year. It reports false when the day does not exist that year, such as the
// 30th of a 29-day month.
func (c *Calendar) resolve(key monthDay, year int) (date, bool) {
	if key.month < 1 || key.month > 12 || key.day < 0 || key.day > 30 {
		return date{}, false
	}
	if key.day == 0 {
		month, y := key.month+1, year
		if month > 12 {
			month, y = 1, year+1
		}
		dd, mm, yy, err := ConvertLunarToSolar(1, month, y, false, c.tz)
		if err != nil {
			return date{}, false
		}
		return dateFromJDN(JDFromDate(dd, mm, yy) - 1), true
	}
	dd, mm, yy, err := ConvertLunarToSolar(key.day, key.month, year, false, c.tz)
	if err != nil {
		return date{}, false
	}
	want := LunarDate{Day: key.day, Month: key.month, Year: year}
	if ConvertSolarToLunar(dd, mm, yy, c.tz) != want {
		return date{}, false
	}
	return date{year: yy, month: time.Month(mm), day: dd}, true
}

// holidaysInRange collects observances within the given date range
// (inclusive).
func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	obs := c.observances()

	var result []Holiday
	// A lunar year starts between late January and late February, so lunar
	// year from.year-1 may still have observances in from.year.
	for year := from.year - 1; year <= to.year; year++ {
		for key, name := range obs {
			d, ok := c.resolve(key, year)
			if !ok || !d.inRange(from, to) {
				continue
			}
			result = append(result, Holiday{Date: d.toTime(), Lunar: c.lunarOf(d), Name: name})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// AddCustomHoliday registers an observance recurring every lunar year on
// the given lunar month and day, in the regular (non-leap) month. Day 0 means
// the last day before the following month begins. Names are stored in
// Unicode NFC form.
// If a custom observance already exists on that day, it is overwritten.
// If a built-in observance exists on the same day, the custom one takes
// precedence in lookups and list APIs.
func (c *Calendar) AddCustomHoliday(month, day int, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[monthDay{month: month, day: day}] = norm.NFC.String(name)
}

// RemoveCustomHoliday removes a previously added custom observance.
// Has no effect if no custom observance exists on that day.
func (c *Calendar) RemoveCustomHoliday(month, day int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, monthDay{month: month, day: day})
}

// RemoveHoliday suppresses a built-in observance so it no longer appears in
// queries. Has no effect on custom observances. Use [Calendar.RestoreHoliday]
// to undo.
func (c *Calendar) RemoveHoliday(month, day int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed[monthDay{month: month, day: day}] = true
}

// RestoreHoliday restores a previously removed built-in observance.
func (c *Calendar) RestoreHoliday(month, day int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.removed, monthDay{month: month, day: day})
}

// --- Package-level convenience functions ---

// IsHoliday reports whether a lunar observance falls on the given date.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the observance name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidaysInYear returns all observances in the given solar year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns all observances in the given solar year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all observances in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultCal.HolidaysBetween(from, to)
}

// AddCustomHoliday registers a custom observance on the default calendar.
func AddCustomHoliday(month, day int, name string) { defaultCal.AddCustomHoliday(month, day, name) }

// RemoveCustomHoliday removes a custom observance from the default calendar.
func RemoveCustomHoliday(month, day int) { defaultCal.RemoveCustomHoliday(month, day) }

// RemoveHoliday suppresses a built-in observance on the default calendar.
func RemoveHoliday(month, day int) { defaultCal.RemoveHoliday(month, day) }

// RestoreHoliday restores a suppressed built-in observance on the default calendar.
func RestoreHoliday(month, day int) { defaultCal.RestoreHoliday(month, day) }
