// Package format renders numbers, money, phones and dates the way the
// console shows them (Indonesian locale, IDR).
package format

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencyPrefix = "Rp\u00a0"

var (
	printer     = message.NewPrinter(language.Indonesian)
	phoneGroups = regexp.MustCompile(`^(\d{4})(\d{4})(\d+)`)
)

// Currency formats an IDR amount with no forced minor units. The prefix is
// "Rp" and a non-breaking space: Currency(0) is "Rp\u00a00", Currency(1500)
// is "Rp\u00a01.500".
func Currency(amount float64) string {
	return currencyPrefix + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// Number formats n with id-ID digit grouping.
func Number(n float64) string {
	return printer.Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}

// Phone groups a phone of at least ten characters as dddd-dddd-rest.
// Shorter or non-numeric prefixes are returned unchanged.
func Phone(phone string) string {
	if len(phone) < 10 {
		return phone
	}
	return phoneGroups.ReplaceAllString(phone, "$1-$2-$3")
}

// Date renders t as a long US date, e.g. "March 4, 2025".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006")
}

// Initial returns the upper-cased first letter of name for avatars.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
