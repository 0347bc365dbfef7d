package main

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/altinukshini/fieldops/internal/config"
	"github.com/altinukshini/fieldops/internal/logging"
	"github.com/altinukshini/fieldops/internal/model"
	"github.com/altinukshini/fieldops/internal/page"
	"github.com/altinukshini/fieldops/internal/store"
	"github.com/altinukshini/fieldops/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

// cli holds what every subcommand needs once the persistent flags are
// resolved.
type cli struct {
	configPath string
	flags      config.Config

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "fieldops",
		Short: "Terminal dashboard for service-job records",
		Long: `fieldops shows clients, jobs, quotes, services and job locations
with search, status filters and summary statistics.

Run without arguments to start the interactive dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDashboard()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file")
	pf.StringVarP(&c.flags.DataPath, "data", "d", "", "Records file (.yaml, .json, .jsonc); built-in data when empty")
	pf.StringVar(&c.flags.StartPage, "start", "", "Initial tab (clients, jobs, quotes, services, map, overview)")
	pf.StringVar(&c.flags.LogFile, "log-file", "", "Write JSON logs to this file")
	pf.BoolVarP(&c.flags.Verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newStatsCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}

// setup merges the config file with flags, flags winning, and builds the
// logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = c.flags.DataPath
	}
	if flags.Changed("start") {
		cfg.StartPage = c.flags.StartPage
	}
	if flags.Changed("log-file") {
		cfg.LogFile = c.flags.LogFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.flags.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.logger, err = logging.New(cfg)
	return err
}

func (c *cli) loadDataset() (model.Dataset, string, error) {
	if c.cfg.DataPath == "" {
		return model.SeedDataset(), "built-in data", nil
	}
	ds, err := store.LoadDataset(c.cfg.DataPath)
	if err != nil {
		return model.Dataset{}, "", err
	}
	fields := []zap.Field{zap.String("path", c.cfg.DataPath)}
	for _, k := range model.Kinds {
		fields = append(fields, zap.Int(string(k), ds.Len(k)))
	}
	c.logger.Info("dataset loaded", fields...)
	return ds, c.cfg.DataPath, nil
}

func (c *cli) runDashboard() error {
	ds, source, err := c.loadDataset()
	if err != nil {
		return err
	}
	pages := page.Build(ds, c.logger)
	app := tui.NewApp(c.cfg, pages, source, c.logger)
	p := tea.NewProgram(&app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "fieldops", version)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
