package homehive

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// MonthFormat is the format used to represent year-month keys ("2025-01").
const MonthFormat = "2006-01"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String format the date in date RFC3339
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// MonthKey returns the year-month key containing d.
func (d Date) MonthKey() MonthKey { return NewMonthKey(d.y, d.m) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	// Keep this parsing strict, as it's for data files.
	// But not too strict, also supports 2025-7-1
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// MonthKey identifies a calendar month of a specific year ("2025-01").
// It is the unit rent payments are keyed on.
type MonthKey struct {
	y int
	m time.Month
}

// NewMonthKey returns a normalized MonthKey for the given year and month.
func NewMonthKey(year int, month time.Month) MonthKey {
	d := NewDate(year, month, 1)
	return MonthKey{y: d.Year(), m: d.Month()}
}

// Year returns the year of the key.
func (k MonthKey) Year() int { return k.y }

// Month returns the month of the key.
func (k MonthKey) Month() time.Month { return k.m }

// IsZero returns true if the key is the zero value.
func (k MonthKey) IsZero() bool { return k.y == 0 && k.m == 0 }

// String formats the key as "2006-01".
func (k MonthKey) String() string {
	return time.Date(k.y, k.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Next returns the key of the following month.
func (k MonthKey) Next() MonthKey { return NewMonthKey(k.y, k.m+1) }

// Before reports whether k is strictly before x.
func (k MonthKey) Before(x MonthKey) bool {
	return k.y < x.y || (k.y == x.y && k.m < x.m)
}

// After reports whether k is strictly after x.
func (k MonthKey) After(x MonthKey) bool { return x.Before(k) }

// ParseMonthKey parses a "2006-01" key. It is lenient and accepts "2025-1".
func ParseMonthKey(str string) (MonthKey, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonthKey(on.Year(), on.Month()), nil
}

// MustParseMonthKey is like ParseMonthKey but panics on error.
func MustParseMonthKey(str string) MonthKey {
	k, err := ParseMonthKey(str)
	if err != nil {
		panic(err.Error())
	}
	return k
}

// UnmarshalJSON parses a month key from a json string.
func (k *MonthKey) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	key, err := ParseMonthKey(str)
	if err != nil {
		return fmt.Errorf("invalid month %q in data file: %w", str, err)
	}
	*k = key
	return nil
}

func (k MonthKey) MarshalJSON() ([]byte, error) {
	str := k.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*MonthKey)(nil)
var _ json.Unmarshaler = (*MonthKey)(nil)
