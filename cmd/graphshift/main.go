package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"graphshift/internal/pkg/align"
	"graphshift/internal/pkg/config"
	"graphshift/internal/pkg/preview"
	"graphshift/internal/pkg/remap"
)

var (
	flagConfig  string
	flagAlign   string
	flagYear    int
	flagStrip   bool
	flagPreview bool
	flagOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "graphshift [file]",
	Short: "Shift commit-script dates into the current contribution window",
	Long: `graphshift rewrites the date literals in a commit script so the pattern
they draw on the contribution grid moves into the trailing 53-week window
ending this week, keeping its shape intact. Reads the script from a file or
stdin and writes the rewritten script to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&flagAlign, "align", "a", "left", "alignment inside the window: left, center or right")
	rootCmd.Flags().IntVar(&flagYear, "source-year", config.DefaultSourceYear, "year the script's date literals are anchored to")
	rootCmd.Flags().BoolVar(&flagStrip, "strip-setup", false, "remove git remote/push/pull setup lines first")
	rootCmd.Flags().BoolVarP(&flagPreview, "preview", "p", false, "print the shifted window grid to stderr")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the rewritten script to a file instead of stdout")
}

func setup(cmd *cobra.Command) (config.Config, error) {
	_, err := maxprocs.Set()
	if err != nil {
		return config.Config{}, fmt.Errorf("error setting GOMAXPROCS %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	// Explicit flags beat environment and file values.
	if cmd.Flags().Changed("align") {
		cfg.Align = flagAlign
	}
	if cmd.Flags().Changed("source-year") {
		cfg.SourceYear = flagYear
	}
	if cmd.Flags().Changed("strip-setup") {
		cfg.StripSetup = flagStrip
	}

	return cfg, nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("error reading script file %w", err)
	}

	return string(data), nil
}

func writeOutput(text string) error {
	if flagOutput == "" {
		_, err := io.WriteString(os.Stdout, text)
		if err != nil {
			return fmt.Errorf("error writing stdout %w", err)
		}

		return nil
	}

	err := os.WriteFile(flagOutput, []byte(text), 0o644)
	if err != nil {
		return fmt.Errorf("error writing output file %w", err)
	}

	return nil
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})

	log := logrus.NewEntry(logger).WithField("component", "graphshift")

	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	mode, err := align.ParseMode(cfg.Align)
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	client := &remap.Client{
		Log: log,
		Config: remap.Config{
			SourceYear: cfg.SourceYear,
			Align:      mode,
			StripSetup: cfg.StripSetup,
		},
	}

	// Captured once so one "today" governs the whole run.
	result, err := client.Run(text, time.Now())
	if err != nil {
		return err
	}

	if flagPreview {
		fmt.Fprintln(os.Stderr, preview.Window(result.Shifted, result.TodayCol, result.TodayRow))
	}

	return writeOutput(result.Text)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
