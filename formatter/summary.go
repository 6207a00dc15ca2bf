package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/railtools/viastatus/trip"
)

// Summary writes the human-readable recap of a trip: route, departure and
// arrival lines, last known position and lateness. Schedule-only trips get
// the route and timetable facts without the derived lines.
func Summary(t *trip.Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip: Train #%d (%s to %s) on %s\n", t.Train, t.StartStation(), t.EndStation(), t.Date)

	s := t.Schedule()
	if len(s) == 0 {
		return b.String()
	}
	origin, dest := s[0], s[len(s)-1]

	status, ok := t.Status()
	if !ok {
		fmt.Fprintf(&b, "Scheduled to leave %s at %s and arrive in %s at %s.\n",
			origin.Name, clockOr(origin.DepartureScheduled, "?"), dest.Name, clockOr(dest.ArrivalScheduled, "?"))
		return b.String()
	}

	if status.Departed {
		fmt.Fprintf(&b, "The train has left %s at %s.\n", origin.Name, clockOr(origin.DepartureActual, "?"))
	} else {
		fmt.Fprintf(&b, "The train has not left %s yet. It is scheduled to leave at %s.\n",
			origin.Name, clockOr(origin.DepartureScheduled, "?"))
	}

	switch {
	case status.Arrived:
		fmt.Fprintf(&b, "The train has arrived in %s at %s.\n", dest.Name, clockOr(dest.ArrivalActual, "?"))
	case status.Departed:
		fmt.Fprintf(&b, "The train is estimated to arrive in %s at %s.\n", dest.Name, clockOr(dest.ArrivalEstimated, "?"))
	default:
		fmt.Fprintf(&b, "The train is scheduled to arrive in %s at %s.\n", dest.Name, clockOr(dest.ArrivalScheduled, "?"))
	}

	fmt.Fprintf(&b, "The train was last seen in %s.\n", t.CurrentStationName())

	lateness := "on time"
	if status.Late {
		lateness = "late"
	} else if status.Early {
		lateness = "early"
	}
	fmt.Fprintf(&b, "Time difference with schedule: %s (%s).\n", status.ScheduleDelta, lateness)
	fmt.Fprintf(&b, "Time elapsed: %s. Time left: %s.\n", status.TimeElapsed, status.TimeLeft)
	return b.String()
}

func clockOr(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format("15:04")
}
