package utils

import (
	"math"
	"strings"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/SscSPs/household_finance/internal/utils/calendar"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts and dates for display in one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	suffix  string
}

// NewFormatter creates a Formatter for tag. suffix is appended to every
// formatted amount, e.g. "تومان".
func NewFormatter(tag language.Tag, suffix string) *Formatter {
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		suffix:  suffix,
	}
}

// FormatCurrency formats an amount with locale digit grouping and the currency suffix.
// Example: 1500000 with English and "Toman" returns "1,500,000 Toman"
func (f *Formatter) FormatCurrency(amount int64) string {
	s := f.GroupDigits(amount)
	if f.suffix == "" {
		return s
	}
	return s + " " + f.suffix
}

// GroupDigits formats an amount with locale digit grouping only.
func (f *Formatter) GroupDigits(amount int64) string {
	return f.printer.Sprint(number.Decimal(amount))
}

// FormatDate renders a Gregorian day as a Jalali date string in the locale's digits.
func (f *Formatter) FormatDate(d domain.Date) string {
	return calendar.FormatDate(d.String(), f.tag)
}

// MonthLabel names the Jalali month d falls in, followed by its Jalali year,
// e.g. "فروردین ۱۴۰۳".
func (f *Formatter) MonthLabel(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	j := calendar.FromTime(d.Time())
	return calendar.MonthName(j.Month) + " " + calendar.FormatYear(j.Year, f.tag)
}

var englishPrinter = message.NewPrinter(language.English)

// GroupDigits formats value with ASCII digits and comma thousands separators.
// It is the input format of editable amount fields.
func GroupDigits(value int64) string {
	return englishPrinter.Sprint(number.Decimal(value))
}

var digitNormalizer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	",", "", "٬", "", "،", "", " ", "", "\u00a0", "", "\u202f", "",
	"\u200e", "", "\u200f", "",
	"\u2212", "-",
)

var (
	minAmount = decimal.NewFromInt(math.MinInt64)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

// ParseGrouped reads back an amount written with digit grouping, in ASCII,
// Persian or Arabic-Indic digits. Empty, invalid or out-of-range input yields 0;
// fractions are truncated.
func ParseGrouped(s string) int64 {
	s = digitNormalizer.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	d = d.Truncate(0)
	if d.LessThan(minAmount) || d.GreaterThan(maxAmount) {
		return 0
	}
	return d.IntPart()
}
