// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
)

// ErrShutdownTimeout is returned by Shutdown when some worker is still
// stopping at the deadline.
var ErrShutdownTimeout = errors.New("workers did not stop in time")

type Workers struct {
	workers []Worker
	started []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts the workers in order. If one fails, the ones already started
// are stopped again and the error is returned.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed to start")
			_ = w.Shutdown(ctx)
			return fmt.Errorf("starting %s: %w", worker.Name(), err)
		}
		w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
		w.started = append(w.started, worker)
	}

	return nil
}

// Shutdown stops every started worker concurrently and waits until they
// are done or ctx expires.
func (w *Workers) Shutdown(ctx context.Context) error {
	started := w.started
	w.started = nil

	var g errgroup.Group
	for _, worker := range started {
		g.Go(func() error {
			if err := worker.Stop(ctx); err != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed to stop")
				return fmt.Errorf("stopping %s: %w", worker.Name(), err)
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrShutdownTimeout, ctx.Err())
	}
}

// funcWorker adapts a pair of functions to [Worker].
type funcWorker struct {
	name  string
	start func(ctx context.Context) error
	stop  func(ctx context.Context) error
}

// NewWorker returns a Worker backed by start and stop. Either may be nil.
func NewWorker(name string, start, stop func(ctx context.Context) error) Worker {
	return &funcWorker{name: name, start: start, stop: stop}
}

func (f *funcWorker) Name() string { return f.name }

func (f *funcWorker) Start(ctx context.Context) error {
	if f.start == nil {
		return nil
	}
	return f.start(ctx)
}

func (f *funcWorker) Stop(ctx context.Context) error {
	if f.stop == nil {
		return nil
	}
	return f.stop(ctx)
}

// Bounded adapts a blocking stop function that takes no context: the
// returned func gives up waiting when ctx is done. fn keeps running in the
// background in that case.
func Bounded(fn func()) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			defer close(done)
			fn()
		}()

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
