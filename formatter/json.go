package formatter

import (
	"encoding/json"
	"time"

	"github.com/railtools/viastatus/trip"
)

// TripDocument is the JSON shape of a trip snapshot. Status is omitted for
// schedule-only trips.
type TripDocument struct {
	Train    int               `json:"train"`
	Date     string            `json:"date"`
	Stations []StationDocument `json:"stations"`
	Status   *StatusDocument   `json:"status,omitempty"`
}

// StationDocument is one stop. Absent timestamps serialize as null.
type StationDocument struct {
	Name     string `json:"name"`
	Position int    `json:"position"`

	ArrivalScheduled *time.Time `json:"arrival_scheduled"`
	ArrivalEstimated *time.Time `json:"arrival_estimated"`
	ArrivalActual    *time.Time `json:"arrival_actual"`

	DepartureScheduled *time.Time `json:"departure_scheduled"`
	DepartureEstimated *time.Time `json:"departure_estimated"`
	DepartureActual    *time.Time `json:"departure_actual"`
}

// StatusDocument is the derived snapshot. Durations are reported in whole
// seconds.
type StatusDocument struct {
	Departed             bool   `json:"departed"`
	Arrived              bool   `json:"arrived"`
	CurrentStation       int    `json:"current_station"`
	CurrentStationName   string `json:"current_station_name"`
	Late                 bool   `json:"late"`
	Early                bool   `json:"early"`
	ScheduleDeltaSeconds int64  `json:"schedule_delta_seconds"`
	TimeElapsedSeconds   int64  `json:"time_elapsed_seconds"`
	TimeLeftSeconds      int64  `json:"time_left_seconds"`
}

// BuildDocument assembles the JSON document for a trip's latest snapshot.
func BuildDocument(t *trip.Trip) TripDocument {
	doc := TripDocument{
		Train:    t.Train,
		Date:     t.Date,
		Stations: make([]StationDocument, 0, t.Stations()),
	}
	for _, st := range t.Schedule() {
		doc.Stations = append(doc.Stations, StationDocument{
			Name:               st.Name,
			Position:           st.Position,
			ArrivalScheduled:   st.ArrivalScheduled,
			ArrivalEstimated:   st.ArrivalEstimated,
			ArrivalActual:      st.ArrivalActual,
			DepartureScheduled: st.DepartureScheduled,
			DepartureEstimated: st.DepartureEstimated,
			DepartureActual:    st.DepartureActual,
		})
	}
	if status, ok := t.Status(); ok {
		doc.Status = &StatusDocument{
			Departed:             status.Departed,
			Arrived:              status.Arrived,
			CurrentStation:       status.CurrentStation,
			CurrentStationName:   t.CurrentStationName(),
			Late:                 status.Late,
			Early:                status.Early,
			ScheduleDeltaSeconds: int64(status.ScheduleDelta / time.Second),
			TimeElapsedSeconds:   int64(status.TimeElapsed / time.Second),
			TimeLeftSeconds:      int64(status.TimeLeft / time.Second),
		}
	}
	return doc
}

// BuildJSON serializes a trip snapshot document.
func BuildJSON(t *trip.Trip) []byte {
	b, _ := json.Marshal(BuildDocument(t))
	return b
}
