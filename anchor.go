package vnlunar

import "math"

// maxLeapScan bounds the leap month search to one lunar year plus margin.
const maxLeapScan = 14

// newMoonIndex estimates the new moon index k of the lunation containing day jd.
func newMoonIndex(jd int) int {
	return int(math.Floor((float64(jd) - epochNewMoonJD) / synodicMonth))
}

// nearestNewMoonIndex returns the index of the new moon closest to day jd.
func nearestNewMoonIndex(jd int) int {
	return int(math.Floor((float64(jd)-epochNewMoonJD)/synodicMonth + 0.5))
}

// lunarMonth11 returns the day number of the new moon that begins lunar
// month 11 (the month containing the December solstice) of solar year year.
func lunarMonth11(year int, tz float64) int {
	off := JDFromDate(31, 12, year) - 2415021
	k := int(math.Floor(float64(off) / synodicMonth))
	nm := NewMoonDay(k, tz)
	if SunLongitude(nm, tz) >= 9 {
		// The solstice has not been reached at the start of this lunation,
		// so month 11 is the one before it.
		nm = NewMoonDay(k-1, tz)
	}
	return nm
}

// leapMonthOffset returns, for a 13-month lunar year whose month 11 starts on
// day a11, the offset in lunations from a11 to the month without a major
// solar term, which is the leap month.
func leapMonthOffset(a11 int, tz float64) int {
	k := nearestNewMoonIndex(a11)
	i := 1
	arc := SunLongitude(NewMoonDay(k+i, tz), tz)
	for {
		last := arc
		i++
		arc = SunLongitude(NewMoonDay(k+i, tz), tz)
		if arc == last || i >= maxLeapScan {
			break
		}
	}
	return i - 1
}

// month11 is the memoized form of lunarMonth11.
func month11(year int, tz float64) int {
	return lunarMonth11Memo.get(year, tz)
}

// leapOffset is the memoized form of leapMonthOffset.
func leapOffset(a11 int, tz float64) int {
	return leapMonthOffsetMemo.get(a11, tz)
}

// isLeapYear reports whether the lunar year between anchors a11 and b11 has
// thirteen months.
func isLeapYear(a11, b11 int) bool {
	return b11-a11 > 365
}

// leapMonthNumber converts a leap offset from month 11 into the number of
// the month the leap month repeats. Offset 1 follows month 11, offset 2
// follows month 12 and so on.
func leapMonthNumber(leapOff int) int {
	n := leapOff - 2
	if n <= 0 {
		n += 12
	}
	return n
}

// yearAnchors returns the month 11 anchors bracketing the lunar year that
// month of lunar year year belongs to.
func yearAnchors(month, year int, tz float64) (a11, b11 int) {
	if month < 11 {
		return month11(year-1, tz), month11(year, tz)
	}
	return month11(year, tz), month11(year+1, tz)
}

// leapMonthBetween returns the leap month of the lunar year running from
// anchor a11 to anchor b11, or 0 if it has twelve months.
func leapMonthBetween(a11, b11 int, tz float64) int {
	if !isLeapYear(a11, b11) {
		return 0
	}
	return leapMonthNumber(leapOffset(a11, tz))
}

// LeapMonth returns the leap month of lunar year year, that is the month
// number that occurs twice, or 0 if the year has no leap month.
func LeapMonth(year int, tz float64) int {
	// Months 1-10 hang off the previous year's month 11 anchor,
	// months 11 and 12 off this year's.
	if n := leapMonthBetween(month11(year-1, tz), month11(year, tz), tz); n >= 1 && n <= 10 {
		return n
	}
	if n := leapMonthBetween(month11(year, tz), month11(year+1, tz), tz); n >= 11 {
		return n
	}
	return 0
}
