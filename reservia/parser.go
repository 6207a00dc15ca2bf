package reservia

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The upstream serves a stub page with this marker when a trip exists but
// carries no per-station detail.
const incompleteMarker = "Currently, further information is unavailable"

// ParseTrainStatus extracts the per-station rows from a train status page.
//
// The timetable is the table under div#tsicontent: a caption row, a column
// title row, one row per station, and a bottom caption row. The origin and
// destination rows hold their three times in plain cells; intermediate rows
// nest a two-cell table (arrival above departure) inside each time column.
//
// When the page carries the "further information is unavailable" marker the
// extracted rows are returned together with ErrTripIncomplete.
func ParseTrainStatus(page []byte) ([]StationRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("reservia: parse status page: %w", err)
	}

	content := doc.Find("#tsicontent")
	if content.Length() == 0 {
		return nil, fmt.Errorf("%w: invalid train number, train does not run on that date, date outside the published window, or trip leaves the corridor", ErrTripNotFound)
	}

	table := content.Find("table").First()
	trs := table.ChildrenFiltered("tbody").ChildrenFiltered("tr")
	if trs.Length() == 0 {
		trs = table.ChildrenFiltered("tr")
	}

	// Two caption rows and the column titles surround the station rows.
	if trs.Length() < 5 {
		return nil, fmt.Errorf("%w: timetable has no usable station rows", ErrTripIncomplete)
	}
	stations := trs.Slice(2, trs.Length()-1)

	rows := make([]StationRow, 0, stations.Length())
	last := stations.Length() - 1
	stations.Each(func(i int, tr *goquery.Selection) {
		tds := tr.ChildrenFiltered("td")
		row := StationRow{Name: strings.TrimSpace(tds.Eq(0).Text())}
		switch i {
		case 0:
			row.Departure = flatTimes(tds)
		case last:
			row.Arrival = flatTimes(tds)
		default:
			row.Arrival, row.Departure = nestedTimes(tds)
		}
		rows = append(rows, row)
	})

	// An incomplete page still lists the stations and scheduled times but
	// warns that live detail is unavailable. The rows are returned
	// alongside the error so a schedule-only caller can use them.
	if strings.Contains(doc.Text(), incompleteMarker) {
		return rows, fmt.Errorf("%w: only scheduled times are published", ErrTripIncomplete)
	}
	return rows, nil
}

// flatTimes reads the three single-cell time columns of a terminal row.
func flatTimes(tds *goquery.Selection) TimeStrings {
	return TimeStrings{
		Scheduled: strings.TrimSpace(tds.Eq(2).Text()),
		Estimated: strings.TrimSpace(tds.Eq(3).Text()),
		Actual:    strings.TrimSpace(tds.Eq(4).Text()),
	}
}

// nestedTimes reads an intermediate row, where each time column contains a
// two-cell inner table: arrival first, departure second.
func nestedTimes(tds *goquery.Selection) (arr, dep TimeStrings) {
	pick := func(col int) (string, string) {
		inner := tds.Eq(col).Find("td")
		return strings.TrimSpace(inner.Eq(0).Text()), strings.TrimSpace(inner.Eq(1).Text())
	}
	arr.Scheduled, dep.Scheduled = pick(2)
	arr.Estimated, dep.Estimated = pick(3)
	arr.Actual, dep.Actual = pick(4)
	return arr, dep
}
