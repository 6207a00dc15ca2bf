package trip

import (
	"regexp"
	"strings"
	"time"
)

var (
	datePattern  = regexp.MustCompile(`^([0-9]{4})-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`)
	clockPattern = regexp.MustCompile(`^([0-9]|0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`)
)

// ParseTime combines a service date ("YYYY-MM-DD") with a time-of-day cell
// ("H:MM" or "HH:MM") into a naive local timestamp.
//
// A blank or malformed date or clock yields nil. Absence is a normal state
// for timetable cells, not an error, so this function never fails; callers
// must treat nil as "not observed".
func ParseTime(date, clock string) *time.Time {
	date = strings.TrimSpace(date)
	if !datePattern.MatchString(date) {
		return nil
	}

	clock = strings.TrimSpace(clock)
	if !clockPattern.MatchString(clock) {
		return nil
	}

	t, err := time.ParseInLocation("2006-1-2 15:04", date+" "+clock, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
