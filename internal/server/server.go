// ledgerprint/pdf - generate printable PDF invoices
// Copyright (C) 2026  The ledgerprint authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package server exposes invoice generation over HTTP.
//
// The server has two endpoints:
//   - POST /api/generate-pdf takes an invoice record as JSON and returns the
//     PDF file as an attachment.
//   - GET /metrics serves Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ledgerprint/pdf/document"
)

// Config holds the server settings.
type Config struct {
	// Generator is used to create the PDF files.  If this is nil, a
	// generator with default options is used.
	Generator *document.Generator

	// Logger receives request errors.  If this is nil, nothing is logged.
	Logger *zap.Logger

	// Registry receives the server metrics.  If this is nil, a new registry
	// is created.
	Registry *prometheus.Registry

	// RequestTimeout limits the time spent generating a single document.
	// The default is 30 seconds.
	RequestTimeout time.Duration

	// MaxBodyBytes limits the size of request bodies.
	// The default is 1 MiB.
	MaxBodyBytes int64
}

// Server is the HTTP front end of the invoice generator.
type Server struct {
	gen     *document.Generator
	log     *zap.Logger
	metrics *Metrics
	router  *gin.Engine

	timeout time.Duration
	maxBody int64
}

// New creates a new server.
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	gen := cfg.Generator
	if gen == nil {
		var err error
		gen, err = document.NewGenerator(&document.Options{Logger: cfg.Logger})
		if err != nil {
			return nil, err
		}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		gen:     gen,
		log:     log,
		metrics: newMetrics(registry),
		timeout: cfg.RequestTimeout,
		maxBody: cfg.MaxBodyBytes,
	}
	if s.timeout <= 0 {
		s.timeout = 30 * time.Second
	}
	if s.maxBody <= 0 {
		s.maxBody = 1 << 20
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/api/generate-pdf", s.GeneratePDF)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	s.router = r

	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves HTTP requests on addr until ctx is cancelled.
// Requests in progress are given five seconds to complete.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		errC <- srv.ListenAndServe()
	}()
	s.log.Info("server started", zap.String("addr", addr))

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}
	if err := <-errC; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
