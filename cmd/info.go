package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/chartloom-cli/internal/profile"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

var (
	infoDataset string
	infoColumn  string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show statistics for one column of a dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if infoColumn == "" {
			return fmt.Errorf("--column is required")
		}
		ws := openWorkspace()
		t, _, err := ws.LoadDataset(infoDataset)
		if err != nil {
			return err
		}
		s, err := profile.Column(t, infoColumn)
		if err != nil {
			return err
		}

		fmt.Printf("Column: %s\n", s.Column)
		fmt.Printf("Data type: %s\n", s.Kind)
		fmt.Printf("Non-null count: %d / %d\n", s.Count, s.Rows)
		fmt.Printf("Missing values: %d\n", s.Nulls)
		if s.Kind == table.KindNumeric && s.Count > 0 {
			fmt.Println()
			fmt.Println("Statistics:")
			fmt.Printf("  Mean: %.2f\n", s.Mean)
			fmt.Printf("  Median: %.2f\n", s.Median)
			fmt.Printf("  Std Dev: %.2f\n", s.StdDev)
			fmt.Printf("  Min: %.2f\n", s.Min)
			fmt.Printf("  Max: %.2f\n", s.Max)
			fmt.Printf("  Q1: %.2f\n", s.Q1)
			fmt.Printf("  Q3: %.2f\n", s.Q3)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVarP(&infoDataset, "dataset", "d", "dataset", "name of the dataset")
	infoCmd.Flags().StringVarP(&infoColumn, "column", "c", "", "name of the column to inspect (required)")
}
