// Package service runs the single goroutine that owns the panel model and
// the bus. Transports hand their work to it and wait for the result.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/KevinKickass/BlinkenCore/internal/interfaces"
	"go.uber.org/zap"
)

const DefaultInterval = 2 * time.Millisecond

// ErrStopped is returned by Do once the loop has terminated.
var ErrStopped = errors.New("service loop stopped")

type request struct {
	fn   func() error
	done chan error
}

// Loop serializes all access to the panel model. Requests run to completion
// one at a time, in arrival order. When no request arrives for one interval,
// the simulator, if any, gets a service tick.
type Loop struct {
	interval time.Duration
	sim      interfaces.Simulator
	logger   *zap.Logger

	requests chan request
	stopped  chan struct{}

	ticks  atomic.Uint64
	served atomic.Uint64
}

// NewLoop creates a loop. sim may be nil when running on hardware.
func NewLoop(interval time.Duration, sim interfaces.Simulator, logger *zap.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		sim:      sim,
		logger:   logger,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run executes requests until ctx is done or a request fails with a bus
// error. A bus error is fatal and returned.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	l.logger.Info("Service loop started",
		zap.Duration("interval", l.interval),
		zap.Bool("simulation", l.sim != nil))

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("Service loop stopped", zap.Uint64("served", l.served.Load()))
			return nil
		}

		select {
		case <-ctx.Done():
			continue

		case req := <-l.requests:
			if err := l.serve(req); err != nil {
				return err
			}

		case <-timer.C:
			select {
			case req := <-l.requests:
				if err := l.serve(req); err != nil {
					return err
				}
			default:
				if l.sim != nil {
					l.sim.Service()
					l.ticks.Add(1)
				}
			}
		}

		timer.Reset(l.interval)
	}
}

func (l *Loop) serve(req request) error {
	err := req.fn()
	l.served.Add(1)
	req.done <- err

	if errors.Is(err, blinkenbus.ErrBus) {
		l.logger.Error("Bus failure, stopping service loop", zap.Error(err))
		return fmt.Errorf("service loop: %w", err)
	}
	return nil
}

// Do runs fn on the loop goroutine and returns its error. If ctx ends while
// waiting for the loop to pick up fn, fn is not run. Once started, fn runs
// to completion even when ctx ends.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	req := request{fn: fn, done: make(chan error, 1)}

	select {
	case l.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrStopped
	}

	return <-req.done
}

// Ticks returns the number of simulation ticks run so far.
func (l *Loop) Ticks() uint64 { return l.ticks.Load() }

// Served returns the number of requests executed so far.
func (l *Loop) Served() uint64 { return l.served.Load() }
