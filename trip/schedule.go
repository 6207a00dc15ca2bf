package trip

import (
	"fmt"
	"time"

	"github.com/railtools/viastatus/reservia"
)

// StationTime is one stop on a journey. The six timestamp fields are nil
// when the upstream timetable has no value for that cell; estimated and
// actual for the same event are mutually exclusive in practice but that is
// not enforced here.
type StationTime struct {
	Name     string
	Position int

	ArrivalScheduled *time.Time
	ArrivalEstimated *time.Time
	ArrivalActual    *time.Time

	DepartureScheduled *time.Time
	DepartureEstimated *time.Time
	DepartureActual    *time.Time
}

// Schedule is the ordered list of stops for one journey. After BuildSchedule
// returns, the first record carries no arrival times, the last no departure
// times, and positions increase monotonically from zero.
type Schedule []StationTime

// BuildSchedule parses the raw timetable rows against the service date and
// applies day-rollover correction. Fewer than two stations means the
// upstream page had no usable timetable, reported as reservia.ErrTripIncomplete.
func BuildSchedule(rows []reservia.StationRow, date string) (Schedule, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: timetable has %d stations, need at least 2", reservia.ErrTripIncomplete, len(rows))
	}

	s := make(Schedule, 0, len(rows))
	last := len(rows) - 1
	for i, row := range rows {
		st := StationTime{Name: row.Name, Position: i}
		// No arrival before the journey starts, no departure after it ends.
		if i > 0 {
			st.ArrivalScheduled = ParseTime(date, row.Arrival.Scheduled)
			st.ArrivalEstimated = ParseTime(date, row.Arrival.Estimated)
			st.ArrivalActual = ParseTime(date, row.Arrival.Actual)
		}
		if i < last {
			st.DepartureScheduled = ParseTime(date, row.Departure.Scheduled)
			st.DepartureEstimated = ParseTime(date, row.Departure.Estimated)
			st.DepartureActual = ParseTime(date, row.Departure.Actual)
		}
		s = append(s, st)
	}

	correctDayRollover(s)
	return s, nil
}

// timeColumn accesses one time-type column (scheduled, estimated or actual)
// of a StationTime, so the rollover pass can treat the three columns
// uniformly and independently.
type timeColumn struct {
	arrival   func(*StationTime) **time.Time
	departure func(*StationTime) **time.Time
}

var timeColumns = []timeColumn{
	{
		arrival:   func(st *StationTime) **time.Time { return &st.ArrivalScheduled },
		departure: func(st *StationTime) **time.Time { return &st.DepartureScheduled },
	},
	{
		arrival:   func(st *StationTime) **time.Time { return &st.ArrivalEstimated },
		departure: func(st *StationTime) **time.Time { return &st.DepartureEstimated },
	},
	{
		arrival:   func(st *StationTime) **time.Time { return &st.ArrivalActual },
		departure: func(st *StationTime) **time.Time { return &st.DepartureActual },
	},
}

// Parsing attaches every time-of-day to the service date, so a journey that
// crosses midnight comes out with later stops apparently earlier than the
// departure. The grace window exists because a train can depart a station
// one minute after arriving without implying a day change.
const rolloverGrace = 10 * time.Minute

// correctDayRollover pushes timestamps that belong to the following calendar
// day forward by 24 hours. It scans left to right so that a corrected
// departure at station i is already in effect when station i+1's arrival is
// checked, which is what lets a multi-day journey be reconstructed from
// time-of-day values alone. Running it again on corrected data changes
// nothing, and it never moves a timestamp backward.
func correctDayRollover(s Schedule) {
	for i := range s {
		for _, col := range timeColumns {
			arr := col.arrival(&s[i])
			dep := col.departure(&s[i])

			// Same station: departure before arrival means the train
			// leaves on the next day.
			if *arr != nil && *dep != nil && (*dep).Add(rolloverGrace).Before(**arr) {
				next := (*dep).AddDate(0, 0, 1)
				*dep = &next
			}

			// Between stations: the next arrival cannot precede this
			// departure.
			if i+1 < len(s) {
				nextArr := col.arrival(&s[i+1])
				if *dep != nil && *nextArr != nil && (*nextArr).Before(**dep) {
					next := (*nextArr).AddDate(0, 0, 1)
					*nextArr = &next
				}
			}
		}
	}
}
