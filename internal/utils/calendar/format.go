package calendar

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatDate renders a YYYY-MM-DD Gregorian string as a Jalali date in the
// digits of tag, for example "۱۴۰۳/۰۱/۰۱" for "fa". Empty or unparsable input
// yields an empty string.
func FormatDate(gregorian string, tag language.Tag) string {
	if gregorian == "" {
		return ""
	}
	t, err := time.Parse(time.DateOnly, gregorian)
	if err != nil {
		return ""
	}
	return Format(FromTime(t), tag)
}

// Format renders j as year/MM/DD in the digits of tag.
func Format(j JalaliDate, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v/%v/%v",
		number.Decimal(j.Year, number.NoSeparator()),
		number.Decimal(j.Month, number.MinIntegerDigits(2)),
		number.Decimal(j.Day, number.MinIntegerDigits(2)),
	)
}

// FormatYear renders a Jalali year without digit grouping.
func FormatYear(year int, tag language.Tag) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(year, number.NoSeparator()))
}
