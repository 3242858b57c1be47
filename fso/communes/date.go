package communes

import (
	"time"

	"github.com/alpstat/swissdata/errors"
)

// dateLayout is the registry wire format for dates.
const dateLayout = "02.01.2006"

// Date is a calendar day in the registry's DD.MM.YYYY wire format.
// Parsing and formatting are symmetric: String on a parsed Date
// reproduces the original input exactly.
type Date struct {
	t time.Time
}

// ParseDate parses a DD.MM.YYYY date. Any other form, including
// unpadded day or month, is rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}
	d := Date{t: t}
	if d.String() != s {
		return Date{}, errors.Newf("invalid date %q: not in DD.MM.YYYY form", s)
	}
	return d, nil
}

// MustDate parses a DD.MM.YYYY date, panicking on failure. For tests and
// fixed reference dates.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String formats the date back into its DD.MM.YYYY wire form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// Equal reports whether two dates denote the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}
