package vnlunar

import "math"

const (
	// epochNewMoonJD is the (fractional) Julian day of new moon k = 0,
	// close to 1900-01-01.
	epochNewMoonJD = 2415021.076998695

	// synodicMonth is the mean length of a lunation in days.
	synodicMonth = 29.530588853

	dr = math.Pi / 180
)

// NewMoonDay returns the day number of the k-th new moon after the epoch
// new moon of January 1900, as observed in a zone tz hours east of UTC.
func NewMoonDay(k int, tz float64) int {
	return newMoonDayMemo.get(k, tz)
}

func newMoonDay(k int, tz float64) int {
	kf := float64(k)
	t := kf / 1236.85 // Julian centuries from 1900-01-01 12:00
	t2 := t * t
	t3 := t2 * t

	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 += 0.00033 * math.Sin((166.56+132.87*t-0.009173*t2)*dr)

	m := 359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3     // sun's mean anomaly
	mpr := 306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3 // moon's mean anomaly
	f := 21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3   // moon's argument of latitude

	c1 := (0.1734-0.000393*t)*math.Sin(m*dr) + 0.0021*math.Sin(2*dr*m)
	c1 = c1 - 0.4068*math.Sin(mpr*dr) + 0.0161*math.Sin(dr*2*mpr)
	c1 = c1 - 0.0004*math.Sin(dr*3*mpr)
	c1 = c1 + 0.0104*math.Sin(dr*2*f) - 0.0051*math.Sin(dr*(m+mpr))
	c1 = c1 - 0.0074*math.Sin(dr*(m-mpr)) + 0.0004*math.Sin(dr*(2*f+m))
	c1 = c1 - 0.0004*math.Sin(dr*(2*f-m)) - 0.0006*math.Sin(dr*(2*f+mpr))
	c1 = c1 + 0.0010*math.Sin(dr*(2*f-mpr)) + 0.0005*math.Sin(dr*(2*mpr+m))

	var deltat float64
	if t < -11 {
		deltat = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltat = -0.000278 + 0.000265*t + 0.000262*t2
	}

	jdNew := jd1 + c1 - deltat
	return int(math.Floor(jdNew + 0.5 + tz/24))
}

// SunLongitude returns which of the twelve 30° sectors the sun's apparent
// longitude falls in at local midnight starting day jdn. Sector 0 begins at
// the March equinox; sector 9 begins at the December solstice.
func SunLongitude(jdn int, tz float64) int {
	return sunLongitudeMemo.get(jdn, tz)
}

func sunLongitude(jdn int, tz float64) int {
	t := (float64(jdn) - 2451545.5 - tz/24) / 36525 // Julian centuries from J2000
	t2 := t * t

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2 // mean anomaly
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2                   // mean longitude

	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(dr*m)
	dl += (0.019993-0.000101*t)*math.Sin(dr*2*m) + 0.000290*math.Sin(dr*3*m)

	l := (l0 + dl) * dr
	l -= 2 * math.Pi * math.Floor(l/(2*math.Pi))
	return int(math.Floor(l / math.Pi * 6))
}
