package trip

import "errors"

// ErrLocationIndeterminate is returned when no location rule matches the
// schedule. That only happens on malformed upstream data; it is reported
// rather than defaulting to an arbitrary station.
var ErrLocationIndeterminate = errors.New("train location indeterminate")

// CurrentStation returns the position of the station where the train was
// last definitively observed.
//
// The actual-time columns tell the story: a missing actual departure at the
// origin means the trip has not started; an actual arrival at the
// destination means it has concluded; otherwise the train sits at, or has
// just left, the last station with an actual arrival.
func CurrentStation(s Schedule) (int, error) {
	if len(s) < 2 {
		return 0, ErrLocationIndeterminate
	}

	if s[0].DepartureActual == nil {
		return 0, nil
	}
	if s[len(s)-1].ArrivalActual != nil {
		return len(s) - 1, nil
	}

	for i := 0; i < len(s)-1; i++ {
		// No actual arrival at the next station: the train is between
		// i and i+1.
		if s[i+1].ArrivalActual == nil {
			return i, nil
		}
		// Arrived but not departed: the train is standing at i.
		if s[i].ArrivalActual != nil && s[i].DepartureActual == nil {
			return i, nil
		}
	}
	return 0, ErrLocationIndeterminate
}
