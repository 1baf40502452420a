package experiment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/san-kum/algodyssey/internal/metrics"
	"github.com/san-kum/algodyssey/internal/trace"
	"go.uber.org/zap"
)

type Config struct {
	Algorithm string
	Data      []int
	Target    int
}

// Experiment is a single simulation run of one card.
type Experiment struct {
	cfg     Config
	tracer  Tracer
	metrics []metrics.Metric
	log     *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Experiment {
	if log == nil {
		log = zap.NewNop()
	}
	return &Experiment{cfg: cfg, log: log}
}

func (e *Experiment) Setup(tracer Tracer, ms ...metrics.Metric) error {
	if tracer == nil {
		return fmt.Errorf("experiment %s: nil tracer", e.cfg.Algorithm)
	}
	e.tracer = tracer
	e.metrics = ms
	return nil
}

// Run validates the input, traces it and collects metrics. The returned run
// owns its input copy; the caller's slice is never touched.
func (e *Experiment) Run(ctx context.Context) (*trace.Run, error) {
	if e.tracer == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input := trace.Sequence(e.cfg.Data).Clone()
	if len(input) > trace.MaxLen {
		return nil, &trace.InputError{Algorithm: e.cfg.Algorithm, Len: len(input), Wrapped: trace.ErrSequenceTooLong}
	}

	id := uuid.NewString()
	log := e.log.With(zap.String("run_id", id), zap.String("algorithm", e.cfg.Algorithm))

	tr, res, err := e.tracer(input, e.cfg.Target)
	if err != nil {
		log.Warn("trace rejected input", zap.Error(err))
		return nil, err
	}

	run := &trace.Run{
		ID:        id,
		Algorithm: e.cfg.Algorithm,
		Input:     input,
		Target:    e.cfg.Target,
		Trace:     tr,
		Result:    res,
		Metrics:   metrics.Collect(tr, e.metrics...),
	}
	log.Debug("traced", zap.Int("steps", len(tr)), zap.Stringer("input", input))
	return run, nil
}

// RunCard traces card key from r with optional overrides. A nil data keeps
// the card's own sequence.
func RunCard(ctx context.Context, r *Registry, key string, data []int, target *int, log *zap.Logger) (*trace.Run, error) {
	card, err := r.GetCard(key)
	if err != nil {
		return nil, err
	}
	tracer, err := r.GetTracer(key)
	if err != nil {
		return nil, err
	}

	cfg := Config{Algorithm: key, Data: card.Data, Target: card.Target}
	if data != nil {
		cfg.Data = data
	}
	if target != nil {
		cfg.Target = *target
	}

	exp := New(cfg, log)
	if err := exp.Setup(tracer, metrics.Default()...); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}
