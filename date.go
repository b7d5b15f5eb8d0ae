package vnlunar

import (
	"math"
	"strconv"
	"time"
)

// unixEpochJDN is the day number of 1970-01-01.
const unixEpochJDN = 2440588

const secondsPerDay = 24 * 60 * 60

// zoneFor returns the fixed zone tz hours east of UTC, used to normalize
// input times to a local calendar day before conversion.
func zoneFor(tz float64) *time.Location {
	secs := int(math.Round(tz * 60 * 60))
	if secs == 0 {
		return time.UTC
	}
	return time.FixedZone("UTC"+strconv.FormatFloat(tz, 'f', -1, 64), secs)
}

// date is a civil calendar day: Julian before 1582-10-15, Gregorian after.
// It is comparable and used as a map key.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime converts a time.Time to a date by first normalizing to the
// zone tz hours east of UTC.
func dateFromTime(t time.Time, tz float64) date {
	y, m, d := t.In(zoneFor(tz)).Date()
	// time.Time is proleptic Gregorian; go through the day number so days
	// before the reform come out in the Julian calendar.
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return dateFromJDN(unixEpochJDN + int(floorDiv64(midnight, secondsPerDay)))
}

func dateFromJDN(jd int) date {
	d, m, y := JDToDate(jd)
	return date{year: y, month: time.Month(m), day: d}
}

func (d date) jdn() int {
	return JDFromDate(d.day, int(d.month), d.year)
}

// toTime returns midnight UTC of the day.
func (d date) toTime() time.Time {
	return time.Unix(int64(d.jdn()-unixEpochJDN)*secondsPerDay, 0).UTC()
}

func (d date) before(other date) bool {
	return d.jdn() < other.jdn()
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) inRange(from, to date) bool {
	return !d.before(from) && !to.before(d)
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
