package vnlunar

// gregorianStartJDN is the first day of the Gregorian calendar (1582-10-15).
// Earlier days are expressed in the Julian calendar.
const gregorianStartJDN = 2299161

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// JDFromDate returns the Julian Day Number of the given calendar date.
// Dates from 1582-10-15 onward are read as Gregorian, earlier dates as Julian.
// No validation is performed; impossible dates still map to some day number.
func JDFromDate(day, month, year int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3

	jd := day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
	if jd < gregorianStartJDN {
		jd = day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
	}
	return jd
}

// JDToDate is the inverse of [JDFromDate].
func JDToDate(jd int) (day, month, year int) {
	var b, c int
	if jd >= gregorianStartJDN {
		a := jd + 32044
		b = floorDiv(4*a+3, 146097)
		c = a - floorDiv(b*146097, 4)
	} else {
		c = jd + 32082
	}

	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = e - floorDiv(153*m+2, 5) + 1
	month = m + 3 - 12*floorDiv(m, 10)
	year = b*100 + d - 4800 + floorDiv(m, 10)
	return day, month, year
}
