package trip

import (
	"context"
	"errors"

	"github.com/railtools/viastatus/reservia"
)

// ScheduleSource supplies the raw per-station timetable for a journey.
// reservia.Client is the production implementation; tests substitute fakes.
type ScheduleSource interface {
	TrainStatus(ctx context.Context, train int, date string) ([]reservia.StationRow, error)
}

// Trip is one scheduled run of a train on one service date. Update fetches
// the timetable, normalizes it and recomputes the status snapshot; the
// previous snapshot stays in place when an update fails.
//
// A Trip is owned by a single caller for the duration of an update cycle;
// independent Trip instances share nothing and need no coordination.
type Trip struct {
	Train int
	Date  string

	source       ScheduleSource
	scheduleOnly bool

	schedule Schedule
	status   *Status
}

// New returns a Trip that computes the full status snapshot on each update.
func New(source ScheduleSource, train int, date string) *Trip {
	return &Trip{Train: train, Date: date, source: source}
}

// NewScheduleOnly returns a Trip that skips location and status derivation,
// for journeys the upstream reports as incomplete (timetable present but no
// per-station detail worth trusting) where only the scheduled times and the
// station list are wanted.
func NewScheduleOnly(source ScheduleSource, train int, date string) *Trip {
	return &Trip{Train: train, Date: date, source: source, scheduleOnly: true}
}

// Update fetches the timetable and recomputes the trip from scratch.
// Upstream conditions (reservia.ErrTripNotFound, reservia.ErrTripIncomplete)
// propagate unchanged, as do ErrLocationIndeterminate and ErrMissingTime
// from the derivation steps.
func (t *Trip) Update(ctx context.Context) error {
	rows, err := t.source.TrainStatus(ctx, t.Train, t.Date)
	if err != nil {
		// An incomplete timetable still carries stations and scheduled
		// times, which is all a schedule-only trip needs.
		if !(t.scheduleOnly && errors.Is(err, reservia.ErrTripIncomplete) && len(rows) > 0) {
			return err
		}
	}

	schedule, err := BuildSchedule(rows, t.Date)
	if err != nil {
		return err
	}

	if t.scheduleOnly {
		t.schedule = schedule
		t.status = nil
		return nil
	}

	status, err := ComputeStatus(schedule)
	if err != nil {
		return err
	}

	t.schedule = schedule
	t.status = &status
	return nil
}

// Schedule returns the normalized schedule from the latest successful
// update, nil before the first one.
func (t *Trip) Schedule() Schedule { return t.schedule }

// Status returns the latest snapshot. ok is false before the first
// successful update and always for schedule-only trips.
func (t *Trip) Status() (Status, bool) {
	if t.status == nil {
		return Status{}, false
	}
	return *t.status, true
}

// Stations returns the number of stops on the journey.
func (t *Trip) Stations() int { return len(t.schedule) }

// StartStation returns the origin's display name, "" before the first update.
func (t *Trip) StartStation() string {
	if len(t.schedule) == 0 {
		return ""
	}
	return t.schedule[0].Name
}

// EndStation returns the destination's display name, "" before the first update.
func (t *Trip) EndStation() string {
	if len(t.schedule) == 0 {
		return ""
	}
	return t.schedule[len(t.schedule)-1].Name
}

// CurrentStationName returns the display name of the station the train was
// last seen at, "" when no status snapshot is available.
func (t *Trip) CurrentStationName() string {
	if t.status == nil || t.status.CurrentStation >= len(t.schedule) {
		return ""
	}
	return t.schedule[t.status.CurrentStation].Name
}
