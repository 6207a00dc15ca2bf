package formatter

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/railtools/viastatus/trip"
)

// Timetable renders a schedule as an aligned text table, one arrival and one
// departure line per station:
//
//	Station     Scheduled  Estimated  Actual
//	TORONTO    Arr:
//	           Dep:  19:05             19:05
//	OAKVILLE   Arr:  19:26             19:31
//	           Dep:  19:28             19:33
func Timetable(s trip.Schedule) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Station\t\tScheduled\tEstimated\tActual")
	for _, st := range s {
		fmt.Fprintf(w, "%s\tArr:\t%s\t%s\t%s\n", st.Name,
			clock(st.ArrivalScheduled), clock(st.ArrivalEstimated), clock(st.ArrivalActual))
		fmt.Fprintf(w, "\tDep:\t%s\t%s\t%s\n",
			clock(st.DepartureScheduled), clock(st.DepartureEstimated), clock(st.DepartureActual))
	}
	_ = w.Flush()
	return buf.String()
}

func clock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
