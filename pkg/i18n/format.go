package i18n

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPosition places the currency symbol around the amount.
type CurrencyPosition string

const (
	CurrencyBefore CurrencyPosition = "before"
	CurrencyAfter  CurrencyPosition = "after"
)

// LocaleFormat formats money and dates for one locale.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	currencyPosition  CurrencyPosition
	dateFormat        string
	weekdays          [7]string
	months            [12]string
	longDate          func(lf *LocaleFormat, t time.Time) string
}

// LocaleFormatOption configures a LocaleFormat.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat returns an English format with euro amounts: "€1,234.50".
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "€",
		currencyPosition:  CurrencyBefore,
		dateFormat:        "01/02/2006",
		weekdays:          [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		longDate: monthFirst,
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

func WithCurrencyPosition(pos CurrencyPosition) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == CurrencyBefore || pos == CurrencyAfter {
			lf.currencyPosition = pos
		}
	}
}

func WithDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = layout
	}
}

// WithCalendarNames sets weekday (Sunday first) and month names used by
// FormatLongDate.
func WithCalendarNames(weekdays [7]string, months [12]string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.weekdays = weekdays
		lf.months = months
	}
}

// WithDayFirst renders long dates as "lundi 20 octobre 2026".
func WithDayFirst() LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.longDate = dayFirst
	}
}

// FormatCurrency renders amount rounded to cents.
func (lf *LocaleFormat) FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	num := lf.FormatNumber(amount.Abs(), 2)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if lf.currencyPosition == CurrencyBefore {
		b.WriteString(lf.currencySymbol)
		b.WriteString(num)
	} else {
		b.WriteString(num)
		b.WriteString(" ")
		b.WriteString(lf.currencySymbol)
	}
	return b.String()
}

// FormatNumber renders n with exactly places decimals and grouped thousands.
func (lf *LocaleFormat) FormatNumber(n decimal.Decimal, places int32) string {
	s := n.StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	out := sign + groupThousands(intPart, lf.thousandSeparator)
	if frac != "" {
		out += lf.decimalSeparator + frac
	}
	return out
}

// FormatDate renders t with the short date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}

// FormatLongDate renders t with weekday and month names.
func (lf *LocaleFormat) FormatLongDate(t time.Time) string {
	return lf.longDate(lf, t)
}

func monthFirst(lf *LocaleFormat, t time.Time) string {
	return lf.weekdays[t.Weekday()] + ", " + lf.months[t.Month()-1] + " " +
		strconv.Itoa(t.Day()) + ", " + strconv.Itoa(t.Year())
}

func dayFirst(lf *LocaleFormat, t time.Time) string {
	return lf.weekdays[t.Weekday()] + " " + strconv.Itoa(t.Day()) + " " +
		lf.months[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
