// Package viastatus ties the trip core, the reservia client and the
// formatters together behind an HTTP API:
//
//	GET /api/health
//	GET /api/trips/{train}?date=YYYY-MM-DD&format=json|text
//	GET /metrics
package viastatus

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/railtools/viastatus/config"
	"github.com/railtools/viastatus/metrics"
	"github.com/railtools/viastatus/trip"
)

// Server is the HTTP surface over the trip status core.
type Server struct {
	cfg     config.AppConfig
	cache   *TripCache
	metrics *metrics.Collector
	http    *http.Server
}

// NewServer wires the cache, metrics and routes for the given schedule
// source.
func NewServer(cfg config.AppConfig, source trip.ScheduleSource) *Server {
	m := metrics.NewCollector()
	s := &Server{
		cfg:     cfg,
		metrics: m,
		cache: NewTripCache(source, cfg.Server.CacheCapacity,
			time.Duration(cfg.Server.CacheTTLSec)*time.Second, m),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/trips/{train}", s.handleTrip)
	mux.Handle("GET /metrics", m.Handler())

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler exposes the route mux, for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Start runs the server in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.http.Addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
