package timeline

import "time"

// DateLayout is the ISO calendar date habitbox stores completions under.
const DateLayout = "2006-01-02"

// Day truncates t to midnight of its calendar day, keeping its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today is the current local calendar day.
func Today() time.Time {
	return Day(time.Now())
}

func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a YYYY-MM-DD date as a local calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DaysInMonth uses day zero of the following month, which time.Date
// normalises to the last day of month m (December rolls into January).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
