package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/chartloom-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set ChartLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("workspace_dir: %s\n", c.WorkspaceDir)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("outlier_threshold: %.2f\n", c.OutlierThreshold)
		fmt.Printf("max_points: %d\n", c.MaxPoints)
		fmt.Printf("chart_width: %d\n", c.ChartWidth)
		fmt.Printf("chart_height: %d\n", c.ChartHeight)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "workspace_dir":
			cfg.WorkspaceDir = val
		case "output_dir":
			cfg.OutputDir = val
		case "outlier_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid outlier_threshold: %s (must be a positive number)", val)
			}
			cfg.OutlierThreshold = f
		case "max_points":
			i, err := strconv.Atoi(val)
			if err != nil || i < 2 {
				return fmt.Errorf("invalid max_points: %s (must be an integer >= 2)", val)
			}
			cfg.MaxPoints = i
		case "chart_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid chart_width: %s", val)
			}
			cfg.ChartWidth = i
		case "chart_height":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid chart_height: %s", val)
			}
			cfg.ChartHeight = i
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✔ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
