package player

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/san-kum/algodyssey/internal/trace"
	"go.uber.org/zap"
)

// DefaultDelay is the pause between two animated steps.
const DefaultDelay = 600 * time.Millisecond

// ErrBusy is returned when a card is asked to start a second run while one
// is still animating.
var ErrBusy = errors.New("player: simulation already running")

// Observer receives each step as it is played.
type Observer interface {
	OnStep(i int, s trace.Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(i int, s trace.Step)

func (f ObserverFunc) OnStep(i int, s trace.Step) { f(i, s) }

// Player replays one card's traces. At most one run is active at a time;
// the guard is released when the run completes or its context is cancelled.
type Player struct {
	delay   time.Duration
	running atomic.Bool
	log     *zap.Logger
}

func New(delay time.Duration, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	if delay < 0 {
		delay = 0
	}
	return &Player{delay: delay, log: log}
}

func (p *Player) Delay() time.Duration { return p.delay }

func (p *Player) Running() bool { return p.running.Load() }

// Stream starts emitting tr on the returned channel, waiting the player's
// delay after each step. The channel is closed when the trace is exhausted
// or ctx is done.
func (p *Player) Stream(ctx context.Context, tr trace.Trace) (<-chan trace.Step, error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	out := make(chan trace.Step)
	go func() {
		// guard is clear by the time the channel closes
		defer close(out)
		defer p.running.Store(false)

		for i, s := range tr {
			select {
			case out <- s:
			case <-ctx.Done():
				p.log.Debug("playback cancelled", zap.Int("step", i), zap.Error(ctx.Err()))
				return
			}
			if p.delay == 0 || i == len(tr)-1 {
				continue
			}
			timer := time.NewTimer(p.delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				p.log.Debug("playback cancelled", zap.Int("step", i+1), zap.Error(ctx.Err()))
				return
			}
		}
		p.log.Debug("playback finished", zap.Int("steps", len(tr)))
	}()

	return out, nil
}

// Play blocks until tr has been delivered to every observer or ctx is done.
func (p *Player) Play(ctx context.Context, tr trace.Trace, observers ...Observer) error {
	steps, err := p.Stream(ctx, tr)
	if err != nil {
		return err
	}

	i := 0
	for s := range steps {
		for _, o := range observers {
			o.OnStep(i, s)
		}
		i++
	}

	if i < len(tr) {
		return ctx.Err()
	}
	return nil
}
