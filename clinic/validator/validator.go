package validator

import "regexp"

// Field formats accepted by the conversational flows. Each check is a
// pure predicate over the raw message text; error reporting belongs to
// the caller.
var (
	nameRe  = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\s]+$`)
	phoneRe = regexp.MustCompile(`^(\+?\d{11}|\d{10})$`)
	// Date checks only the YYYY-MM-DD prefix. Trailing characters are
	// accepted on purpose to stay compatible with previously stored input.
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Name accepts non-empty strings of Latin or Cyrillic letters and spaces.
func Name(s string) bool {
	return nameRe.MatchString(s)
}

// Surname accepts the same character set as Name.
func Surname(s string) bool {
	return nameRe.MatchString(s)
}

// Phone accepts an optional leading plus followed by 11 digits,
// or exactly 10 digits with no prefix.
func Phone(s string) bool {
	return phoneRe.MatchString(s)
}

// Date accepts strings beginning with a YYYY-MM-DD prefix.
func Date(s string) bool {
	return dateRe.MatchString(s)
}

// Time accepts exactly two digits, a colon, and two digits.
// Hour and minute ranges are not checked.
func Time(s string) bool {
	return timeRe.MatchString(s)
}
