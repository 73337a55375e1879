// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error { return f(ctx) }

func TestConsumerService_Serve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     runnerFunc
		cancel  bool
		wantErr error
	}{
		{
			name:    "cancel returns context error",
			run:     func(ctx context.Context) error { <-ctx.Done(); return nil },
			cancel:  true,
			wantErr: context.Canceled,
		},
		{
			name:    "router error is wrapped",
			run:     func(context.Context) error { return errBoom },
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				time.AfterFunc(10*time.Millisecond, cancel)
			}
			err := NewConsumerService(tt.run).Serve(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Serve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConsumerService_UnexpectedStopIsError(t *testing.T) {
	t.Parallel()

	svc := NewConsumerService(runnerFunc(func(context.Context) error { return nil }))
	if err := svc.Serve(context.Background()); err == nil {
		t.Error("expected error when the runner returns without cancellation")
	}
	if svc.String() != "feedback-consumer" {
		t.Errorf("String() = %q", svc.String())
	}
}

var errBoom = errors.New("boom")
