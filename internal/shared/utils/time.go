package utils

import "time"

// TimestampFormat is the wire format for ping probes and audit fields,
// matching what the admin SPA expects ("2006-01-02 15:04:05").
const TimestampFormat = time.DateTime

// FormatTimestamp renders t in the wire timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

// NowTimestamp renders the current time in the wire timestamp format.
func NowTimestamp() string {
	return FormatTimestamp(time.Now())
}
