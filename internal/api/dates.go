package api

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseISODate parses s as a YYYY-MM-DD date in UTC.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
