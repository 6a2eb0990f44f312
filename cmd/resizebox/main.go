package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"resizebox/internal/config"
	"resizebox/internal/logging"
	"resizebox/internal/resize"
	"resizebox/internal/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	rootCmd := &cobra.Command{
		Use:          "resizebox",
		Short:        "A draggable, resizable box in your terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/resizebox/config.toml)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("policy", "", "minimum size policy (legacy or strict)")

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := config.NewViper(cfgFile)
		if err := v.BindPFlag("logging.level", cmd.Flags().Lookup("log-level")); err != nil {
			return fmt.Errorf("failed to bind --log-level: %w", err)
		}
		if err := v.BindPFlag("resize.policy", cmd.Flags().Lookup("policy")); err != nil {
			return fmt.Errorf("failed to bind --policy: %w", err)
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		return run(cfg)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("resizebox %s\n", version)
		},
	})
	return rootCmd
}

func run(cfg *config.Config) error {
	log, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	policy, err := resize.ParsePolicy(cfg.Resize.Policy)
	if err != nil {
		return err
	}
	m := tui.New(tui.Options{
		Geometry: cfg.Geometry.Geometry(),
		Policy:   policy,
		ScaleX:   cfg.Scale.X,
		ScaleY:   cfg.Scale.Y,
		Logger:   log,
	})
	log.Info().Stringer("policy", policy).Msg("starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus()).Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
