package reservia

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statusPage assembles a train status page from station fixtures. The first
// and last stations render as terminal rows (plain time cells), the rest
// with the nested arrival/departure tables the real page uses.
func statusPage(stations ...StationRow) string {
	var b strings.Builder
	b.WriteString(`<html><body><div id="tsicontent"><table>`)
	b.WriteString(`<tr><td colspan="5">Train status</td></tr>`)
	b.WriteString(`<tr><td>Station</td><td></td><td>Scheduled</td><td>Estimated</td><td>Actual</td></tr>`)
	for i, s := range stations {
		switch i {
		case 0:
			fmt.Fprintf(&b, `<tr><td>%s</td><td>Dep:</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				s.Name, s.Departure.Scheduled, s.Departure.Estimated, s.Departure.Actual)
		case len(stations) - 1:
			fmt.Fprintf(&b, `<tr><td>%s</td><td>Arr:</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				s.Name, s.Arrival.Scheduled, s.Arrival.Estimated, s.Arrival.Actual)
		default:
			cell := func(arr, dep string) string {
				return fmt.Sprintf(`<td><table><tr><td>%s</td></tr><tr><td>%s</td></tr></table></td>`, arr, dep)
			}
			fmt.Fprintf(&b, `<tr><td>%s</td><td>Arr:<br/>Dep:</td>%s%s%s</tr>`, s.Name,
				cell(s.Arrival.Scheduled, s.Departure.Scheduled),
				cell(s.Arrival.Estimated, s.Departure.Estimated),
				cell(s.Arrival.Actual, s.Departure.Actual))
		}
	}
	b.WriteString(`<tr><td colspan="5">All times are local.</td></tr>`)
	b.WriteString(`</table></div></body></html>`)
	return b.String()
}

func corridorTrip() []StationRow {
	return []StationRow{
		{Name: "TORONTO", Departure: TimeStrings{Scheduled: "19:05", Actual: "19:05"}},
		{Name: "OAKVILLE",
			Arrival:   TimeStrings{Scheduled: "19:26", Actual: "19:31"},
			Departure: TimeStrings{Scheduled: "19:28", Actual: "19:33"}},
		{Name: "CHATHAM",
			Arrival:   TimeStrings{Scheduled: "22:17", Estimated: "22:20"},
			Departure: TimeStrings{Scheduled: "22:19", Estimated: "22:22"}},
		{Name: "WINDSOR", Arrival: TimeStrings{Scheduled: "23:10", Estimated: "23:13"}},
	}
}

func TestParseTrainStatus(t *testing.T) {
	want := corridorTrip()
	rows, err := ParseTrainStatus([]byte(statusPage(want...)))
	require.NoError(t, err)
	assert.Equal(t, want, rows)
}

func TestParseTrainStatusBlankCells(t *testing.T) {
	rows, err := ParseTrainStatus([]byte(statusPage(
		StationRow{Name: "TORONTO", Departure: TimeStrings{Scheduled: "19:05"}},
		StationRow{Name: "OAKVILLE", Arrival: TimeStrings{Scheduled: "19:26"}},
		StationRow{Name: "WINDSOR"},
	)))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, TimeStrings{}, rows[0].Arrival)
	assert.Equal(t, TimeStrings{Scheduled: "19:26"}, rows[1].Arrival)
	assert.Equal(t, TimeStrings{}, rows[1].Departure)
	assert.Equal(t, TimeStrings{}, rows[2].Arrival)
}

func TestParseTrainStatusNotFound(t *testing.T) {
	page := `<html><body><div id="content">No results for your request.</div></body></html>`
	_, err := ParseTrainStatus([]byte(page))
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestParseTrainStatusIncompleteStub(t *testing.T) {
	page := `<html><body><div id="tsicontent"><p>Currently, further information is unavailable for this train.</p></div></body></html>`
	_, err := ParseTrainStatus([]byte(page))
	assert.ErrorIs(t, err, ErrTripIncomplete)
}

func TestParseTrainStatusIncompleteWithTimetable(t *testing.T) {
	page := strings.Replace(statusPage(
		StationRow{Name: "TORONTO", Departure: TimeStrings{Scheduled: "19:05"}},
		StationRow{Name: "WINDSOR", Arrival: TimeStrings{Scheduled: "23:10"}},
	), "All times are local.", "Currently, further information is unavailable.", 1)

	rows, err := ParseTrainStatus([]byte(page))
	assert.ErrorIs(t, err, ErrTripIncomplete)
	require.Len(t, rows, 2, "rows must accompany the incomplete condition")
	assert.Equal(t, "TORONTO", rows[0].Name)
}

func TestParseTrainStatusTooFewRows(t *testing.T) {
	page := `<html><body><div id="tsicontent"><table>` +
		`<tr><td>Train status</td></tr>` +
		`<tr><td>Station</td></tr>` +
		`<tr><td>Legend</td></tr>` +
		`</table></div></body></html>`
	_, err := ParseTrainStatus([]byte(page))
	assert.ErrorIs(t, err, ErrTripIncomplete)
}
