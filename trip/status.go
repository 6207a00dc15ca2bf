package trip

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingTime is returned when a status regime needs a timestamp the
// schedule does not carry. The regime selectors guarantee the operands they
// subtract, so hitting this means the upstream data violated the schedule
// invariants; it is never silently coerced to zero.
var ErrMissingTime = errors.New("required timestamp absent")

// Status is the derived snapshot of a journey. It is recomputed in full on
// every update, never patched incrementally. CurrentStation indexes into the
// Schedule the snapshot was computed from.
type Status struct {
	Departed bool
	Arrived  bool

	// CurrentStation is the position of the station where the train was
	// last seen.
	CurrentStation int

	// Late and Early are mutually exclusive; both false means on time.
	Late  bool
	Early bool

	// ScheduleDelta is the magnitude of the deviation from schedule,
	// zero when on time.
	ScheduleDelta time.Duration

	// TimeElapsed is zero until the trip is underway; TimeLeft is zero
	// once it has concluded.
	TimeElapsed time.Duration
	TimeLeft    time.Duration
}

// ComputeStatus derives the Status for a normalized schedule. Exactly one of
// three regimes applies:
//
//   - not yet underway: the origin has no actual departure, or the first
//     intermediate stop has no actual arrival yet;
//   - concluded: the destination has an actual arrival;
//   - in progress: everything else, judged at the current station.
func ComputeStatus(s Schedule) (Status, error) {
	cur, err := CurrentStation(s)
	if err != nil {
		return Status{}, err
	}

	origin := s[0]
	dest := s[len(s)-1]
	st := Status{
		Departed:       origin.DepartureActual != nil,
		Arrived:        dest.ArrivalActual != nil,
		CurrentStation: cur,
	}

	switch {
	case origin.DepartureActual == nil || s[1].ArrivalActual == nil:
		// Not yet meaningfully underway. Lateness is judged on the
		// origin's expected departure: the estimate when there is one,
		// the observed departure when the train has left but not yet
		// reached the first stop.
		expected := origin.DepartureEstimated
		if expected == nil {
			expected = origin.DepartureActual
		}
		st.Late, st.Early, st.ScheduleDelta = compareTimes(expected, origin.DepartureScheduled)
		if origin.DepartureScheduled == nil || dest.ArrivalScheduled == nil {
			return Status{}, fmt.Errorf("pre-departure regime: %w", ErrMissingTime)
		}
		st.TimeLeft = dest.ArrivalScheduled.Sub(*origin.DepartureScheduled)

	case dest.ArrivalActual != nil:
		// Concluded.
		st.Late, st.Early, st.ScheduleDelta = compareTimes(dest.ArrivalActual, dest.ArrivalScheduled)
		if origin.DepartureActual == nil {
			return Status{}, fmt.Errorf("concluded regime: %w", ErrMissingTime)
		}
		st.TimeElapsed = dest.ArrivalActual.Sub(*origin.DepartureActual)

	default:
		// In progress. The reference time is the current station's
		// actual arrival, or its actual departure when the train has
		// been seen leaving without an arrival record.
		curSt := s[cur]
		ref := curSt.ArrivalActual
		if ref == nil {
			ref = curSt.DepartureActual
		}
		if ref == nil {
			return Status{}, fmt.Errorf("in-progress regime at %q: %w", curSt.Name, ErrMissingTime)
		}
		st.Late, st.Early, st.ScheduleDelta = compareTimes(ref, curSt.ArrivalScheduled)
		if origin.DepartureActual == nil || dest.ArrivalEstimated == nil {
			return Status{}, fmt.Errorf("in-progress regime: %w", ErrMissingTime)
		}
		st.TimeElapsed = ref.Sub(*origin.DepartureActual)
		st.TimeLeft = dest.ArrivalEstimated.Sub(*ref)
	}

	return st, nil
}

// compareTimes classifies an observed instant against a scheduled one.
// A strictly later observation is late, strictly earlier is early; equal or
// absent operands are on time with a zero delta.
func compareTimes(observed, scheduled *time.Time) (late, early bool, delta time.Duration) {
	if observed == nil || scheduled == nil {
		return false, false, 0
	}
	switch {
	case observed.After(*scheduled):
		return true, false, observed.Sub(*scheduled)
	case observed.Before(*scheduled):
		return false, true, scheduled.Sub(*observed)
	}
	return false, false, 0
}
