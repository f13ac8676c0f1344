package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LFroesch/tiles/internal/config"
	"github.com/LFroesch/tiles/internal/logger"
)

var version = "dev"

var (
	cfgFile    string
	showHidden bool
	debug      bool
)

// newRootCmd builds the tiles command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tiles [dir]",
		Short:   "Browse a directory as a grid of tiles",
		Long:    `tiles shows one directory at a time as a grid of icons. Navigate with the keyboard or mouse, drag to select, rename and delete in place.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runBrowser,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tiles/tiles-config.json)")
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "a", false, "show dot files")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "write debug lines to the log")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func runBrowser(cmd *cobra.Command, args []string) error {
	if err := logger.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️ logging disabled: %v\n", err)
	}
	defer logger.Close()

	cfg := config.Load(cfgFile)
	if cmd.Flags().Changed("hidden") {
		cfg.ShowHidden = showHidden
	}

	start := "."
	switch {
	case len(args) == 1:
		start = args[0]
	case cfg.StartDir != "":
		start = cfg.StartDir
	}

	m, err := newModel(cfg, start, systemOpener{})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited: %v", err)
		return err
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tiles config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, pathCmd)
	return configCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
