// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIShutdownTimeout = 10 * time.Second

// errAPIListenerStopped is returned when the listener exits although nobody
// asked the API to stop.
var errAPIListenerStopped = errors.New("api listener stopped unexpectedly")

// HTTPServer is the part of *http.Server the API layer drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the menuscore REST API in the api-layer supervisor.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService supervises server. shutdownTimeout bounds how long
// in-flight recommendations, quotes and feedback writes may take to finish;
// a non-positive value means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultAPIShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve implements suture.Service. A listener failure is returned so the
// supervisor restarts the API with backoff. On ctx cancel the API stops
// accepting requests and drains the open ones before returning ctx.Err().
func (h *HTTPServerService) Serve(ctx context.Context) error {
	listenDone := make(chan error, 1)
	go func() {
		err := h.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		listenDone <- err
	}()

	select {
	case err := <-listenDone:
		if err == nil {
			err = errAPIListenerStopped
		}
		return fmt.Errorf("menuscore api: %w", err)

	case <-ctx.Done():
		drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("menuscore api: drain requests: %w", err)
		}
		<-listenDone
		return ctx.Err()
	}
}

// String implements fmt.Stringer.
func (h *HTTPServerService) String() string {
	return h.name
}
