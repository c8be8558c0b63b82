// Package dateutils parses the compact OFX timestamp layout into time values.
package dateutils

import (
	"regexp"
	"strconv"
	"time"

	"fjacquet/ofx-csv/internal/parsererror"
)

const DateLayoutISO = "2006-01-02"

// TimestampFactory assembles a time value from the broken-out components of
// an OFX timestamp. Injecting the factory lets callers pick the location the
// resulting times live in.
type TimestampFactory func(year int, month time.Month, day, hour, min, sec int) time.Time

// DefaultTimestampFactory builds timestamps in UTC.
func DefaultTimestampFactory(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

// ofxTimestamp matches YYYYMMDD with optional HHMMSS, optional millisecond
// fraction and optional [gmt offset:TZN] suffix. The fraction and zone are
// validated but discarded; OFX servers disagree too much on the zone field
// for it to be trustworthy.
var ofxTimestamp = regexp.MustCompile(
	`^(\d{4})(\d{2})(\d{2})(?:(\d{2})(\d{2})(\d{2}))?(?:\.(\d{3}))?(?:\[(-?\d+(?:\.\d+)?):(\w{3})\])?$`)

// ParseDate parses an OFX timestamp using the default factory. An empty or
// whitespace-only value yields (nil, nil); a malformed value yields a
// TimestampFormatError.
func ParseDate(value string) (*time.Time, error) {
	return ParseDateWithFactory(value, DefaultTimestampFactory)
}

// ParseDateWithFactory parses an OFX timestamp, constructing the result
// through the given factory.
func ParseDateWithFactory(value string, factory TimestampFactory) (*time.Time, error) {
	if isBlank(value) {
		return nil, nil
	}

	m := ofxTimestamp.FindStringSubmatch(value)
	if m == nil {
		return nil, &parsererror.TimestampFormatError{Value: value}
	}

	year := mustAtoi(m[1])
	month := time.Month(mustAtoi(m[2]))
	day := mustAtoi(m[3])
	var hour, min, sec int
	if m[4] != "" {
		hour = mustAtoi(m[4])
		min = mustAtoi(m[5])
		sec = mustAtoi(m[6])
	}

	t := factory(year, month, day, hour, min, sec)
	return &t, nil
}

// ParseDateTolerant parses an optional OFX timestamp: a malformed value
// yields nil instead of an error, the same as a blank one. Server dates,
// balance as-of dates and statement ranges go through this path, since
// servers routinely mangle them.
func ParseDateTolerant(value string) *time.Time {
	return ParseDateTolerantWithFactory(value, DefaultTimestampFactory)
}

// ParseDateTolerantWithFactory is ParseDateTolerant with an explicit
// timestamp factory.
func ParseDateTolerantWithFactory(value string, factory TimestampFactory) *time.Time {
	t, err := ParseDateWithFactory(value, factory)
	if err != nil {
		return nil
	}
	return t
}

// ToISODate formats a time value as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

func isBlank(value string) bool {
	for _, r := range value {
		if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
			return false
		}
	}
	return true
}

// mustAtoi is only called on substrings the timestamp regexp already proved
// to be digits.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
