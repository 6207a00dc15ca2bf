package boardingpass

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/railtools/viastatus/station"
)

// ErrBarcodeFormat is returned when a decoded string does not look like a
// VIA boarding pass.
var ErrBarcodeFormat = errors.New("bad boarding pass format")

// messageLength is the fixed width of the encoded string.
const messageLength = 130

// BoardingPass is the decoded content of one pass. Car and Seat are nil/""
// on open seating. Raw preserves the decoded string so the barcode can be
// reconstructed.
type BoardingPass struct {
	ETF          string
	LastName     string
	FirstName    string
	Car          *int
	Seat         string
	DepartCode   string
	ArrivalCode  string
	Operator     string
	TrainNumber  int
	DepartTime   time.Time
	AgeGroup     string
	Confirmation string
	ReservedAt   time.Time
	LuggageRule  string

	Raw string
}

// Field offsets of the encoded string (example):
//
//	0507201327229Durette                       4   8D MTRLTRTOVIA69
//	|------------|----------------------------|---|--|---|---|--|--- ...
//	  \_ ETF       \_ Last name      Train car_/    | |    |  |  \_Train number
//	                                     Train seat_/  |    |  \_Operator
//	                                  Departure station_/    \_Arrival station
//
//	...  201308111830Pierre Nicolas      P1YSADTZZG41720130705225402C2 NB
//	... ------------|------------------|------|-----|-------------|-----|
//	       \_Departure time  |   Unknown_/    |        |            \_Luggage rule
//	                         \_First name     |         \_Reservation time
//	                                          \_Confirmation
func Parse(message string, stations *station.Directory) (*BoardingPass, error) {
	if len(message) != messageLength {
		return nil, fmt.Errorf("%w: decoded string is %d characters, expected %d", ErrBarcodeFormat, len(message), messageLength)
	}

	bp := &BoardingPass{
		ETF:          message[0:13],
		LastName:     title(message[13:43]),
		Seat:         strings.TrimSpace(message[47:50]),
		DepartCode:   message[50:54],
		ArrivalCode:  message[54:58],
		Operator:     message[58:61],
		FirstName:    title(message[77:97]),
		AgeGroup:     strings.TrimSpace(message[101:104]),
		Confirmation: message[104:110],
		LuggageRule:  strings.TrimSpace(message[124:130]),
		Raw:          message,
	}

	if car := strings.TrimSpace(message[43:45]); car != "" {
		n, err := strconv.Atoi(car)
		if err != nil {
			return nil, fmt.Errorf("%w: train car %q", ErrBarcodeFormat, car)
		}
		bp.Car = &n
	}

	trainNumber, err := strconv.Atoi(strings.TrimSpace(message[61:65]))
	if err != nil {
		return nil, fmt.Errorf("%w: train number %q", ErrBarcodeFormat, message[61:65])
	}
	bp.TrainNumber = trainNumber

	bp.DepartTime, err = time.ParseInLocation("200601021504", message[65:77], time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: departure time %q", ErrBarcodeFormat, message[65:77])
	}
	bp.ReservedAt, err = time.ParseInLocation("20060102150405", message[110:124], time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation time %q", ErrBarcodeFormat, message[110:124])
	}

	// Station codes must resolve against the reference data.
	if _, err := stations.ByCode(bp.DepartCode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBarcodeFormat, err)
	}
	if _, err := stations.ByCode(bp.ArrivalCode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBarcodeFormat, err)
	}

	return bp, nil
}

// title normalizes an all-caps padded name field to "First Last" casing.
func title(s string) string {
	s = strings.TrimSpace(s)
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
