package reservation

import (
	"context"
	"errors"
	"log"

	"github.com/railtools/viastatus/boardingpass"
	"github.com/railtools/viastatus/reservia"
	"github.com/railtools/viastatus/station"
	"github.com/railtools/viastatus/trip"
)

// Reservation is the composed view of one booking. Trip is nil when the
// journey could not be retrieved at all; DepartStation and ArrivalStation
// are nil when the pass carries a code outside the reference data.
type Reservation struct {
	Pass *boardingpass.BoardingPass
	Trip *trip.Trip

	DepartStation  *station.Station
	ArrivalStation *station.Station
}

// FromBoardingPass builds the reservation view for a decoded pass.
//
// An incomplete trip (timetable without per-station detail) is retried in
// schedule-only mode rather than failing the reservation. Any other trip
// error leaves Trip nil; the rest of the reservation is still usable.
func FromBoardingPass(ctx context.Context, pass *boardingpass.BoardingPass, source trip.ScheduleSource, stations *station.Directory) *Reservation {
	r := &Reservation{Pass: pass}
	date := pass.DepartTime.Format("2006-01-02")

	t := trip.New(source, pass.TrainNumber, date)
	err := t.Update(ctx)
	if errors.Is(err, reservia.ErrTripIncomplete) {
		t = trip.NewScheduleOnly(source, pass.TrainNumber, date)
		err = t.Update(ctx)
	}
	if err != nil {
		log.Printf("reservation: trip %d on %s unavailable: %v", pass.TrainNumber, date, err)
		t = nil
	}
	r.Trip = t

	if s, err := stations.ByCode(pass.DepartCode); err == nil {
		r.DepartStation = &s
	} else {
		log.Printf("reservation: %v", err)
	}
	if s, err := stations.ByCode(pass.ArrivalCode); err == nil {
		r.ArrivalStation = &s
	} else {
		log.Printf("reservation: %v", err)
	}
	return r
}
