package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/san-kum/algodyssey/internal/automation"
	"github.com/san-kum/algodyssey/internal/config"
	"github.com/san-kum/algodyssey/internal/experiment"
	"github.com/san-kum/algodyssey/internal/export"
	"github.com/san-kum/algodyssey/internal/player"
	"github.com/san-kum/algodyssey/internal/trace"
	"github.com/san-kum/algodyssey/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func runAnimation(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	var keys []string
	switch {
	case runAll:
		keys = registry.ListAlgorithms()
	case len(args) == 1:
		keys = args
	default:
		return fmt.Errorf("run needs an algorithm (%s) or --all", strings.Join(registry.ListAlgorithms(), ", "))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runs := make([]*trace.Run, len(keys))
	for i, key := range keys {
		data, t, err := cardInput(cmd, cfg, key)
		if err != nil {
			return err
		}
		runs[i], err = experiment.RunCard(ctx, registry, key, data, &t, logger)
		if err != nil {
			return err
		}
	}

	if len(runs) == 1 {
		err = play(ctx, registry, cfg.Delay, runs[0], os.Stdout, !noColor)
	} else {
		// cards animate side by side, each with its own player
		out := &syncWriter{w: os.Stdout}
		g, gctx := errgroup.WithContext(ctx)
		for _, run := range runs {
			g.Go(func() error {
				return play(gctx, registry, cfg.Delay, run, out, false)
			})
		}
		err = g.Wait()
	}
	if err != nil {
		return err
	}

	for _, run := range runs {
		card, _ := registry.GetCard(run.Algorithm)
		fmt.Printf("%s: %s\n", card.Name, run.Summary())
		fmt.Printf("  run id: %s\n", run.ID)
		for _, name := range slices.Sorted(maps.Keys(run.Metrics)) {
			fmt.Printf("  %s: %.0f\n", name, run.Metrics[name])
		}
	}
	return nil
}

func play(ctx context.Context, registry *experiment.Registry, d time.Duration, run *trace.Run, w io.Writer, live bool) error {
	card, err := registry.GetCard(run.Algorithm)
	if err != nil {
		return err
	}

	r := tui.NewLiveRenderer(w, card.Name, run.Input, len(run.Trace))
	if !live {
		r.Plain()
	}
	r.Start()
	defer r.Stop()

	p := player.New(d, logger.Named(run.Algorithm))
	if err := p.Play(ctx, run.Trace, r); err != nil {
		logger.Debug("playback stopped", zap.String("run_id", run.ID), zap.Error(err))
		return err
	}
	return nil
}

// syncWriter keeps frames from concurrent cards whole.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	title := cases.Title(language.English)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tCOMPLEXITY\tSTEP\tDATA")

	for _, card := range registry.Cards() {
		run, err := experiment.RunCard(cmd.Context(), registry, card.Key, nil, nil, logger)
		if err != nil {
			return err
		}
		kind := "-"
		if len(run.Trace) > 0 {
			kind = title.String(string(run.Trace[0].Kind))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n",
			card.Key,
			card.Name,
			card.Complexity,
			kind,
			card.Data,
		)
	}

	return w.Flush()
}

func cardMarkdown(card experiment.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", card.Name)
	fmt.Fprintf(&b, "*Time complexity:* `%s`\n\n", card.Complexity)
	fmt.Fprintf(&b, "%s\n\n", card.Description)
	fmt.Fprintf(&b, "```text\n%s\n```\n\n", card.Pseudocode)
	fmt.Fprintf(&b, "- **Data:** `%v`\n", card.Data)
	if card.Searches {
		fmt.Fprintf(&b, "- **Target:** `%d`\n", card.Target)
	}
	fmt.Fprintf(&b, "- **Hover highlight:** `%v`\n", card.HoverHighlight())
	return b.String()
}

func describeAlgorithm(cmd *cobra.Command, args []string) error {
	card, err := experiment.NewRegistry().GetCard(args[0])
	if err != nil {
		return err
	}

	style := themeName
	if noColor {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}

	out, err := renderer.Render(cardMarkdown(card))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	algos := experiment.NewRegistry().ListAlgorithms()
	if len(args) == 1 {
		algos = args
	}

	for _, algo := range algos {
		names := config.ListPresets(algo)
		if len(names) == 0 {
			fmt.Printf("no presets for algorithm: %s\n", algo)
			continue
		}
		fmt.Printf("presets for %s:\n", algo)
		for _, name := range names {
			p := config.GetPreset(algo, name)
			if p.Target != 0 {
				fmt.Printf("  %-10s %v target=%d\n", name, p.Data, p.Target)
			} else {
				fmt.Printf("  %-10s %v\n", name, p.Data)
			}
		}
	}
	return nil
}

// traceCard runs args[0] with the input flags applied.
func traceCard(cmd *cobra.Command, args []string) (*trace.Run, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	data, t, err := cardInput(cmd, cfg, args[0])
	if err != nil {
		return nil, err
	}
	return experiment.RunCard(cmd.Context(), experiment.NewRegistry(), args[0], data, &t, logger)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	run, err := traceCard(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, run)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	run, err := traceCard(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, run.Trace)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	run, err := traceCard(cmd, args)
	if err != nil {
		return err
	}

	var step *trace.Step
	idx := svgStep
	if idx < 0 {
		idx = len(run.Trace) - 1
	}
	if idx >= len(run.Trace) {
		return fmt.Errorf("step %d out of range, run has %d steps", idx, len(run.Trace))
	}
	if idx >= 0 {
		step = &run.Trace[idx]
	}

	svg := export.StepToSVG(run.Input, step)
	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	runs, err := automation.RunScenario(cmd.Context(), scenario, registry, logger)

	fmt.Printf("%s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tINPUT\tSTEPS\tRESULT")
	for i, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%v\t%d\t%s\n", i+1, run.Algorithm, run.Input, len(run.Trace), run.Summary())
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}

	return err
}

func runVerify(cmd *cobra.Command, args []string) error {
	violations, err := automation.Verify(cmd.Context(), &automation.VerifyConfig{
		Trials: trials,
		Seed:   seed,
	}, logger)
	if err != nil {
		return err
	}

	stats := automation.VerifyStats(violations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTRIALS\tVIOLATIONS")
	for _, algo := range experiment.NewRegistry().ListAlgorithms() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", algo, trials, stats[algo])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for i, v := range violations {
		if i == 10 {
			fmt.Printf("... %d more\n", len(violations)-i)
			break
		}
		fmt.Println(v)
	}
	if len(violations) > 0 {
		return fmt.Errorf("%d violations", len(violations))
	}
	return nil
}
