package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/san-kum/algodyssey/internal/config"
	"github.com/san-kum/algodyssey/internal/experiment"
	"github.com/san-kum/algodyssey/internal/trace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted list of card runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun overrides a card's data and target. Preset, when set, is
// applied first and explicit Data or Target win over it.
type ScenarioRun struct {
	Algorithm string `yaml:"algorithm"`
	Preset    string `yaml:"preset"`
	Data      []int  `yaml:"data"`
	Target    *int   `yaml:"target"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %s has no runs", path)
	}

	return &scenario, nil
}

// RunScenario traces every run in order without pacing. Runs completed
// before a failure are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, log *zap.Logger) ([]*trace.Run, error) {
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]*trace.Run, 0, len(scenario.Runs))

	for i, step := range scenario.Runs {
		log.Info("scenario run",
			zap.Int("run", i+1),
			zap.Int("of", len(scenario.Runs)),
			zap.String("algorithm", step.Algorithm))

		data := step.Data
		target := step.Target
		if step.Preset != "" {
			p := config.GetPreset(step.Algorithm, step.Preset)
			if p == nil {
				return results, fmt.Errorf("run %d: unknown preset %s/%s", i+1, step.Algorithm, step.Preset)
			}
			if data == nil {
				data = p.Data
			}
			if target == nil && p.Target != 0 {
				t := p.Target
				target = &t
			}
		}

		run, err := experiment.RunCard(ctx, registry, step.Algorithm, data, target, log)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, run)
	}

	return results, nil
}

// VerifyConfig drives randomized property checks over the tracers.
type VerifyConfig struct {
	Trials int
	MaxLen int
	MaxAbs int
	Seed   int64
}

// Violation records one input for which a tracer broke its contract.
type Violation struct {
	Trial     int
	Algorithm string
	Input     trace.Sequence
	Target    int
	Reason    string
}

func (v Violation) String() string {
	return fmt.Sprintf("trial %d %s %v target=%d: %s", v.Trial, v.Algorithm, v.Input, v.Target, v.Reason)
}

// Verify checks each tracer against a brute-force oracle on random inputs.
func Verify(ctx context.Context, cfg *VerifyConfig, log *zap.Logger) ([]Violation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	maxLen := cfg.MaxLen
	if maxLen <= 0 || maxLen > trace.MaxLen {
		maxLen = trace.MaxLen
	}
	maxAbs := cfg.MaxAbs
	if maxAbs <= 0 {
		maxAbs = 50
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var violations []Violation
	for trial := 0; trial < cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return violations, err
		}

		seq := make(trace.Sequence, rng.Intn(maxLen+1))
		for i := range seq {
			seq[i] = rng.Intn(2*maxAbs+1) - maxAbs
		}

		report := func(algo string, target int, reason string) {
			violations = append(violations, Violation{
				Trial:     trial,
				Algorithm: algo,
				Input:     seq.Clone(),
				Target:    target,
				Reason:    reason,
			})
		}

		if reason := checkMergeSort(seq); reason != "" {
			report("mergesort", 0, reason)
		}
		if len(seq) > 0 {
			if reason := checkKadane(seq); reason != "" {
				report("kadane", 0, reason)
			}
		}

		_, res := trace.MergeSort(seq)
		target := rng.Intn(2*maxAbs+1) - maxAbs
		if len(seq) > 0 && rng.Intn(2) == 0 {
			target = seq[rng.Intn(len(seq))]
		}
		if reason := checkBinarySearch(res.Sorted, target); reason != "" {
			report("binarysearch", target, reason)
		}

		if (trial+1)%100 == 0 {
			log.Debug("verify progress", zap.Int("trials", trial+1), zap.Int("violations", len(violations)))
		}
	}

	return violations, nil
}

func checkMergeSort(seq trace.Sequence) string {
	before := seq.Clone()
	tr, res := trace.MergeSort(seq)
	if !slices.Equal(seq, before) {
		return "input mutated"
	}
	if len(res.Sorted) != len(seq) {
		return fmt.Sprintf("length %d, want %d", len(res.Sorted), len(seq))
	}
	if !res.Sorted.IsSorted() {
		return fmt.Sprintf("result %v not sorted", res.Sorted)
	}
	counts := make(map[int]int, len(seq))
	for _, v := range seq {
		counts[v]++
	}
	for _, v := range res.Sorted {
		counts[v]--
		if counts[v] < 0 {
			return fmt.Sprintf("result %v is not a permutation", res.Sorted)
		}
	}
	if len(tr) > 0 && !slices.Equal(tr[len(tr)-1].Values, res.Sorted) {
		return "last snapshot differs from result"
	}
	return ""
}

func checkKadane(seq trace.Sequence) string {
	tr, res, err := trace.Kadane(seq)
	if err != nil {
		return err.Error()
	}
	if len(tr) != len(seq) {
		return fmt.Sprintf("%d steps, want %d", len(tr), len(seq))
	}

	best := seq[0]
	for i := range seq {
		sum := 0
		for j := i; j < len(seq); j++ {
			sum += seq[j]
			if sum > best {
				best = sum
			}
		}
	}
	if res.Sum != best {
		return fmt.Sprintf("sum %d, want %d", res.Sum, best)
	}

	if res.Start < 0 || res.End >= len(seq) || res.Start > res.End {
		return fmt.Sprintf("bad bounds [%d,%d]", res.Start, res.End)
	}
	got := 0
	for i := res.Start; i <= res.End; i++ {
		got += seq[i]
	}
	if got != res.Sum {
		return fmt.Sprintf("bounds [%d,%d] sum to %d, not %d", res.Start, res.End, got, res.Sum)
	}
	return ""
}

func checkBinarySearch(sorted trace.Sequence, target int) string {
	tr, res := trace.BinarySearch(sorted, target)

	present := false
	for _, v := range sorted {
		if v == target {
			present = true
			break
		}
	}

	switch {
	case present && !res.Found:
		return "present target not found"
	case !present && res.Found:
		return fmt.Sprintf("absent target found at %d", res.Index)
	case res.Found && sorted[res.Index] != target:
		return fmt.Sprintf("index %d holds %d", res.Index, sorted[res.Index])
	case !res.Found && res.Index != trace.NotFound:
		return fmt.Sprintf("not found but index %d", res.Index)
	}

	limit := 1
	for n := len(sorted); n > 1; n /= 2 {
		limit++
	}
	if len(sorted) > 0 && len(tr) > limit {
		return fmt.Sprintf("%d probes exceeds %d", len(tr), limit)
	}
	return ""
}

// VerifyStats counts violations per algorithm.
func VerifyStats(violations []Violation) map[string]int {
	stats := map[string]int{"mergesort": 0, "kadane": 0, "binarysearch": 0}
	for _, v := range violations {
		stats[v.Algorithm]++
	}
	return stats
}
