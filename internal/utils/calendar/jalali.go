// Package calendar converts between the Gregorian and the solar hijri (Jalali)
// calendars using the 2820-year grand cycle arithmetic.
package calendar

import "time"

// JalaliDate is a day of the solar hijri calendar.
type JalaliDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

const (
	// Julian day number of 1 Farvardin 1.
	persianEpoch = 1948321
	// Days in one 2820-year grand cycle.
	grandCycleDays = 1029983
)

var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// IsLeapYear reports whether the Jalali year jy has 366 days.
func IsLeapYear(jy int) bool {
	return floorMod((floorMod(jy-474, 2820)+474+38)*31, 128) < 31
}

// MonthLength returns the number of days of month jm in Jalali year jy.
func MonthLength(jy, jm int) int {
	switch {
	case jm >= 1 && jm <= 6:
		return 31
	case jm >= 7 && jm <= 11:
		return 30
	case IsLeapYear(jy):
		return 30
	default:
		return 29
	}
}

// MonthName returns the name of a 1-based Jalali month. Indexes wrap around,
// so 13 is Farvardin again and 0 is Esfand.
func MonthName(month int) string {
	return monthNames[floorMod(month-1, 12)]
}

// ToJalali converts a Gregorian date. Inputs outside the calendar (month 13,
// day 32) are normalized the same way time.Date normalizes them.
func ToJalali(gy, gm, gd int) JalaliDate {
	return jdnToJalali(gregorianToJDN(gy, gm, gd))
}

// FromTime converts the calendar day of t.
func FromTime(t time.Time) JalaliDate {
	y, m, d := t.Date()
	return ToJalali(y, int(m), d)
}

// ToGregorian converts a Jalali date to midnight UTC of the matching Gregorian day.
// Days past the end of a Jalali month spill into the next month.
func ToGregorian(jy, jm, jd int) time.Time {
	y, m, d := jdnToGregorian(jalaliToJDN(jy, jm, jd))
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func jalaliToJDN(jy, jm, jd int) int {
	epbase := jy - 474
	if jy < 0 {
		epbase = jy - 473
	}
	epyear := 474 + floorMod(epbase, 2820)

	monthDays := (jm-1)*30 + 6
	if jm <= 7 {
		monthDays = (jm - 1) * 31
	}

	return jd + monthDays +
		floorDiv(epyear*682-110, 2816) +
		(epyear-1)*365 +
		floorDiv(epbase, 2820)*grandCycleDays +
		persianEpoch - 1
}

func jdnToJalali(jdn int) JalaliDate {
	depoch := jdn - jalaliToJDN(475, 1, 1)
	cycle := floorDiv(depoch, grandCycleDays)
	cyear := floorMod(depoch, grandCycleDays)

	var ycycle int
	if cyear == grandCycleDays-1 {
		ycycle = 2820
	} else {
		aux1 := cyear / 366
		aux2 := cyear % 366
		ycycle = (2134*aux1+2816*aux2+2815)/1028522 + aux1 + 1
	}

	year := ycycle + 2820*cycle + 474
	if year <= 0 {
		year--
	}

	yday := jdn - jalaliToJDN(year, 1, 1) + 1
	var month int
	if yday <= 186 {
		month = (yday + 30) / 31
	} else {
		month = (yday - 6 + 29) / 30
	}
	day := jdn - jalaliToJDN(year, month, 1) + 1

	return JalaliDate{Year: year, Month: month, Day: day}
}

func gregorianToJDN(y, m, d int) int {
	// normalize out-of-range months and days first
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	y, mm, d := t.Date()
	m = int(mm)

	a := (14 - m) / 12
	yy := y + 4800 - a
	mo := m + 12*a - 3
	return d + (153*mo+2)/5 + 365*yy + floorDiv(yy, 4) - floorDiv(yy, 100) + floorDiv(yy, 400) - 32045
}

func jdnToGregorian(jdn int) (int, int, int) {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := (5*e + 2) / 153
	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10
	return year, month, day
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
