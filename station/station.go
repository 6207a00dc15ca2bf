package station

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:embed data/stations.json
var stationsJSON []byte

// ErrStationNotFound is returned when neither code nor name matches a known
// station.
var ErrStationNotFound = errors.New("station not found")

// record mirrors the raw reference data. Field keys are the source's own
// ("sc" station code, "sn" station name).
type record struct {
	Code     string   `json:"sc"`
	Name     string   `json:"sn"`
	FullName string   `json:"name"`
	URL      string   `json:"url"`
	Lat      *float64 `json:"lat"`
	Long     *float64 `json:"long"`
	Address  string   `json:"address"`
}

// Station is one canonical station record. FullName falls back to Name when
// the source has no long-form name; Lat, Long and Address are nil/empty when
// unknown.
type Station struct {
	Code     string
	Name     string
	FullName string
	URL      string
	Lat      *float64
	Long     *float64
	Address  string
}

// Directory holds the loaded station reference data.
type Directory struct {
	stations []Station
}

// Load parses the embedded station data.
func Load() (*Directory, error) {
	var records []record
	if err := json.Unmarshal(stationsJSON, &records); err != nil {
		return nil, fmt.Errorf("station: parse reference data: %w", err)
	}
	d := &Directory{stations: make([]Station, 0, len(records))}
	for _, r := range records {
		s := Station{
			Code:     r.Code,
			Name:     r.Name,
			FullName: r.FullName,
			URL:      r.URL,
			Lat:      r.Lat,
			Long:     r.Long,
			Address:  r.Address,
		}
		if s.FullName == "" {
			s.FullName = s.Name
		}
		d.stations = append(d.stations, s)
	}
	return d, nil
}

// ByCode looks a station up by its four-letter code.
func (d *Directory) ByCode(code string) (Station, error) {
	for _, s := range d.stations {
		if strings.EqualFold(s.Code, code) {
			return s, nil
		}
	}
	return Station{}, fmt.Errorf("%w: code %q", ErrStationNotFound, code)
}

// ByName looks a station up by its display name.
func (d *Directory) ByName(name string) (Station, error) {
	for _, s := range d.stations {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Station{}, fmt.Errorf("%w: name %q", ErrStationNotFound, name)
}

// Len reports the number of known stations.
func (d *Directory) Len() int { return len(d.stations) }
