//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// DateLayout is the display and interchange form of an exact date.
const DateLayout = "2006-01-02"

// Sentinels standing in for an open-ended date.
const (
	SentinelPresent  = "Present"
	SentinelOngoing  = "Ongoing"
	SentinelNoExpiry = "No Expiry"
)

// DateKind tags which variant a Date holds.
type DateKind uint8

const (
	// DateUnset means no date was entered.
	DateUnset DateKind = iota
	// DateExact holds a calendar day.
	DateExact
	// DateOpen holds one of the open-ended sentinels.
	DateOpen
)

// Date is either unset, an exact calendar day, or an open-ended sentinel such as
// "Present". The zero value is unset.
type Date struct {
	kind     DateKind
	day      time.Time
	sentinel string
}

// On returns an exact date.
func On(year int, month time.Month, day int) Date {
	return Date{kind: DateExact, day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Present is the open end of a current position.
func Present() Date { return Date{kind: DateOpen, sentinel: SentinelPresent} }

// Ongoing is the open end of an unfinished project.
func Ongoing() Date { return Date{kind: DateOpen, sentinel: SentinelOngoing} }

// NoExpiry is the open end of a certification that does not expire.
func NoExpiry() Date { return Date{kind: DateOpen, sentinel: SentinelNoExpiry} }

// ParseDate parses the display form: "", YYYY-MM-DD, or a sentinel.
func ParseDate(s string) (Date, error) {
	switch s {
	case "":
		return Date{}, nil
	case SentinelPresent, SentinelOngoing, SentinelNoExpiry:
		return Date{kind: DateOpen, sentinel: s}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or one of %q, %q, %q",
			s, SentinelPresent, SentinelOngoing, SentinelNoExpiry)
	}
	return Date{kind: DateExact, day: t}, nil
}

// Kind returns the variant tag.
func (d Date) Kind() DateKind { return d.kind }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.kind == DateUnset }

// IsOpen reports whether the date is an open-ended sentinel.
func (d Date) IsOpen() bool { return d.kind == DateOpen }

// Time returns the calendar day; ok is false unless the date is exact.
func (d Date) Time() (t time.Time, ok bool) {
	return d.day, d.kind == DateExact
}

// String returns the display form.
func (d Date) String() string {
	switch d.kind {
	case DateExact:
		return d.day.Format(DateLayout)
	case DateOpen:
		return d.sentinel
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
