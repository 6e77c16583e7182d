package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/chartloom-cli/internal/config"
	"github.com/KaramelBytes/chartloom-cli/internal/workspace"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "chartloom",
	Short: "ChartLoom CLI: turn CSV/Excel tables into chart-ready scatter plots",
	Long: `ChartLoom is a CLI tool that ingests tabular data (CSV or Excel), prepares
chart series with axis assignments, outlier filtering, and downsampling, and
renders dual-axis scatter plots as PNG images.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.chartloom/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig returns the loaded config, or built-in defaults when loading
// failed earlier.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		OutlierThreshold: 4.0,
		MaxPoints:        10000,
		ChartWidth:       1200,
		ChartHeight:      700,
		OutputDir:        ".",
		WorkspaceDir:     ".chartloom-datasets",
	}
}

func openWorkspace() *workspace.Workspace {
	return workspace.New(activeConfig().WorkspaceDir)
}
