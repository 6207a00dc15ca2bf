package viastatus

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/railtools/viastatus/formatter"
	"github.com/railtools/viastatus/reservia"
	"github.com/railtools/viastatus/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTrip(w http.ResponseWriter, r *http.Request) {
	train, err := strconv.Atoi(r.PathValue("train"))
	if err != nil || train <= 0 {
		s.writeError(w, http.StatusBadRequest, "train must be a positive integer")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		s.writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		s.writeError(w, http.StatusBadRequest, "format must be json or text")
		return
	}

	t, err := s.cache.Get(r.Context(), train, date)
	if err != nil {
		s.writeTripError(w, err)
		return
	}

	s.metrics.TripRequests.WithLabelValues(format).Inc()
	if format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(formatter.Summary(t)))
		_, _ = w.Write([]byte("\n"))
		_, _ = w.Write([]byte(formatter.Timetable(t.Schedule())))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(formatter.BuildJSON(t))
}

func (s *Server) writeTripError(w http.ResponseWriter, err error) {
	s.metrics.TripRequestErrs.Inc()
	switch {
	case errors.Is(err, reservia.ErrTripNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, trip.ErrLocationIndeterminate), errors.Is(err, trip.ErrMissingTime):
		// The upstream served data the derivation cannot trust.
		s.writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
