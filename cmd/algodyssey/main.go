package main

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/algodyssey/internal/config"
	"github.com/san-kum/algodyssey/internal/experiment"
	"github.com/san-kum/algodyssey/internal/logging"
	"github.com/san-kum/algodyssey/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool
	logFile    string
	themeName  string

	delay    time.Duration
	target   int
	dataFlag string
	preset   string
	runAll   bool
	noColor  bool

	svgStep int
	svgOut  string

	trials int
	seed   int64

	logger = zap.NewNop()
)

// main registers the commands and launches the card UI when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "algodyssey",
		Short:        "animated merge sort, kadane and binary search",
		SilenceUsage: true,
		RunE:         runTUI,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cmd == cmd.Root() || cmd.Name() == "tui" {
				logger, err = logging.ForUI(verbose, logFile)
			} else {
				logger, err = logging.New(verbose, logFile)
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "display mode (dark|light)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive algorithm cards",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate one card in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnimation,
	}
	addInputFlags(runCmd)
	runCmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "pause between steps")
	runCmd.Flags().BoolVar(&runAll, "all", false, "animate every card concurrently")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "plain output without colours or screen clearing")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [algorithm]",
		Short: "show a card's description and pseudocode",
		Args:  cobra.ExactArgs(1),
		RunE:  describeAlgorithm,
	}
	describeCmd.Flags().BoolVar(&noColor, "no-color", false, "render without styling")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available dataset presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a run's trace and result to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	addInputFlags(exportJSONCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a run's trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	addInputFlags(exportCSVCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "draw one step of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addInputFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&svgStep, "step", -1, "step to draw (-1 for the last)")
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default stdout)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of card runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check the tracers against brute force on random inputs",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
	verifyCmd.Flags().IntVar(&trials, "trials", 1000, "number of random sequences")
	verifyCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 for time based)")

	rootCmd.AddCommand(tuiCmd, runCmd, listCmd, describeCmd, presetsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, scenarioCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&target, "target", config.DefaultTarget, "binary search target")
	cmd.Flags().StringVar(&dataFlag, "data", "", "comma separated sequence, e.g. 5,1,4")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named dataset")
}

// loadConfig reads --config when given and applies --theme on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	if flag := cmd.Flags().Lookup("delay"); flag != nil && flag.Changed {
		cfg.Delay = delay
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// cardInput resolves the sequence and target for algo. Precedence runs
// card default, config dataset, preset, then explicit flags.
func cardInput(cmd *cobra.Command, cfg *config.Config, algo string) ([]int, int, error) {
	data := cfg.Dataset(algo)
	t := cfg.Target

	if preset != "" {
		p := config.GetPreset(algo, preset)
		if p == nil {
			return nil, 0, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algo))
		}
		data = append([]int(nil), p.Data...)
		if p.Target != 0 {
			t = p.Target
		}
	}

	if cmd.Flags().Changed("data") {
		parsed, err := config.ParseData(dataFlag)
		if err != nil {
			return nil, 0, err
		}
		data = parsed
	}
	if cmd.Flags().Changed("target") {
		t = target
	}
	return data, t, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app := viz.NewApp(experiment.NewRegistry(), cfg, logger)
	return viz.Run(app, configFile)
}
