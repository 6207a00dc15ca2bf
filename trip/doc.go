// Package trip derives the real-time status of a single VIA Rail journey
// from its per-station timetable.
//
// The raw timetable rows come from a ScheduleSource (normally the reservia
// client). BuildSchedule turns them into an ordered, day-rollover-corrected
// Schedule; CurrentStation infers where the train was last seen; and
// ComputeStatus combines both into a Status snapshot (departed/arrived,
// late/early, elapsed and remaining time).
//
// All derivation steps are pure, synchronous transformations over an
// immutable Schedule. A Trip recomputes everything from scratch on each
// Update call; there is no incremental state.
package trip
