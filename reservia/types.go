package reservia

import "errors"

// ErrTripNotFound means the train number and date do not correspond to any
// journey the upstream publishes time data for. Fatal to the update that hit
// it; no partial timetable is produced.
var ErrTripNotFound = errors.New("trip not found")

// ErrTripIncomplete means the journey exists but the upstream has no
// per-station time detail for it. Callers may fall back to a schedule-only
// trip instead of failing outright.
var ErrTripIncomplete = errors.New("trip is missing data")

// TimeStrings holds the three raw time-of-day cells for one event. An empty
// string is an absent cell, anything else is "H:MM" or "HH:MM".
type TimeStrings struct {
	Scheduled string
	Estimated string
	Actual    string
}

// StationRow is one station's row of the status table, untouched beyond
// whitespace trimming. The first station of a journey carries only departure
// cells, the last only arrival cells.
type StationRow struct {
	Name      string
	Arrival   TimeStrings
	Departure TimeStrings
}
