package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"weather-gauges.klederson.com/internal/app"
	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/feed"
	"weather-gauges.klederson.com/internal/gauge"
	"weather-gauges.klederson.com/internal/logging"
	"weather-gauges.klederson.com/internal/render"
	"weather-gauges.klederson.com/internal/tween"
)

var (
	flagDemo   bool
	flagInput  string
	flagFPS    int
	flagConfig string
	flagOutput string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weather-gauges",
		Short: "Weather Gauges - animated wind, temperature and pressure dials in the terminal",
		Long: `Weather Gauges draws round instrument dials for wind, temperature/dew point
and barometric pressure, sweeping the needles smoothly to every new reading.

Readings come from --input (one "<kind> <value>..." per line, - for stdin),
for example "wind 270 12", "tempdew 10 4" or "pressure 1013".
Use --demo to feed random readings every few seconds.`,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Configuration file (default ./weather-gauges.yaml or ~/.config/weather-gauges/)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Feed random readings (no station required)")
	rootCmd.Flags().StringVar(&flagInput, "input", "", "Read readings from a file, or - for stdin")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Animation frames per second (default from configuration)")

	svgCmd := &cobra.Command{
		Use:   "svg <kind> [values...]",
		Short: "Write a gauge at rest at the given reading as SVG",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to a file instead of stdout")

	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "Print the configured gauge variants as YAML",
		Args:  cobra.NoArgs,
		RunE:  runVariants,
	}

	rootCmd.AddCommand(svgCmd, variantsCmd)
	return rootCmd
}

func loadSettings() (*config.Settings, error) {
	if flagConfig != "" {
		return config.LoadFromFile(flagConfig)
	}
	return config.Load()
}

// buildVariants returns every built-in variant with the configured
// overrides applied, in display order.
func buildVariants(s config.Settings) ([]gauge.Variant, error) {
	overrides := make(map[gauge.Kind]config.GaugeOverride, len(s.Gauges))
	for name, o := range s.Gauges {
		k, err := gauge.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("config gauges.%s: %w", name, err)
		}
		overrides[k] = o
	}

	variants := make([]gauge.Variant, 0, len(gauge.Kinds))
	for _, k := range gauge.Kinds {
		v := gauge.Defaults(k).Apply(overrides[k])
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("config gauges.%s: %w", k, err)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func run(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return err
	}
	if cmd.Flags().Changed("demo") {
		settings.Demo = flagDemo
	}
	if flagFPS > 0 {
		settings.FPS = flagFPS
	}

	log, closer, err := logging.New(settings.Log.File, settings.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return err
	}
	defer closer.Close()

	variants, err := buildVariants(*settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return err
	}

	opts := app.Options{
		FPS:          settings.FPS,
		Demo:         settings.Demo,
		DemoInterval: settings.DemoInterval,
		Seed:         time.Now().UnixNano(),
		Log:          log,
	}
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithFPS(settings.FPS)}

	switch flagInput {
	case "":
	case "-":
		opts.Input, opts.InputName = os.Stdin, "stdin"
		// keys come from the terminal while stdin carries readings
		progOpts = append(progOpts, tea.WithInputTTY())
	default:
		f, err := os.Open(flagInput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			return err
		}
		defer f.Close()
		opts.Input, opts.InputName = f, flagInput
	}

	model, err := app.New(variants, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return err
	}

	p := tea.NewProgram(model, progOpts...)

	// Start feeds with reference to the tea program
	if err := model.StartFeeds(p); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return err
	}

	log.WithField("gauges", len(variants)).Info("dashboard started")
	_, err = p.Run()
	model.Stop()
	return err
}

func runSVG(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	kind, err := gauge.ParseKind(args[0])
	if err != nil {
		return err
	}
	var values []float64
	if len(args) > 1 {
		msg, err := feed.ParseLine(strings.Join(args, " "))
		if err != nil {
			return err
		}
		values = msg.Values
	}

	variants, err := buildVariants(*settings)
	if err != nil {
		return err
	}
	var v gauge.Variant
	for _, cand := range variants {
		if cand.Kind == kind {
			v = cand
		}
	}

	sched := tween.NewScheduler()
	c, err := gauge.New(v, sched)
	if err != nil {
		return err
	}
	c.Update(values...)
	now := time.Now()
	sched.Tick(now)
	sched.Tick(now.Add(v.TransitionDuration))

	var w io.Writer = cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return render.SVG(w, c.Frame())
}

func runVariants(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	variants, err := buildVariants(*settings)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(variants); err != nil {
		return err
	}
	return enc.Close()
}
