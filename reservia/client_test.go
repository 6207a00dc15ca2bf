package reservia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientTrainStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "VIA", r.URL.Query().Get("TsiCCode"))
		assert.Equal(t, "79", r.URL.Query().Get("TsiTrainNumber"))
		assert.Equal(t, "2014-03-22", r.URL.Query().Get("ArrivalDate"))
		_, _ = w.Write([]byte(statusPage(corridorTrip()...)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 0)
	rows, err := c.TrainStatus(context.Background(), 79, "2014-03-22")
	require.NoError(t, err)
	assert.Equal(t, corridorTrip(), rows)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(statusPage(corridorTrip()...)))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 3)
	rows, err := c.TrainStatus(context.Background(), 79, "2014-03-22")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.EqualValues(t, 2, calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 3)
	_, err := c.TrainStatus(context.Background(), 79, "2014-03-22")
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClientNotFoundPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="content"></div></body></html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 0)
	_, err := c.TrainStatus(context.Background(), 9999, "2014-03-22")
	assert.ErrorIs(t, err, ErrTripNotFound)
}
