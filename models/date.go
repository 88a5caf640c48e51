// date.go - Calendar date column type for job postings

package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time of day. It is stored in a DATE column
// and written to JSON as "2006-01-02".
type Date time.Time

// NewDate returns midnight UTC of the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func truncateDay(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) Format(layout string) string { return time.Time(d).Format(layout) }

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) GormDataType() string { return "date" }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = truncateDay(t)
	return nil
}

// Value writes midnight UTC; drivers store it in the DATE column.
func (d Date) Value() (driver.Value, error) {
	return time.Time(truncateDay(time.Time(d))), nil
}

// Layouts SQLite may hand back for a DATE column, depending on how it was written.
var scanLayouts = []string{
	dateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = truncateDay(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	for _, layout := range scanLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = truncateDay(t)
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", s)
}
