package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List uploaded datasets and their columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := openWorkspace()
		list, err := ws.List()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No datasets uploaded yet. Use 'chartloom upload' to upload your data.")
			return nil
		}
		fmt.Println("Available datasets:")
		fmt.Println()
		for _, m := range list {
			fmt.Printf("Dataset: %s\n", m.Name)
			fmt.Printf("  Rows: %d\n", m.Rows)
			fmt.Printf("  Columns: %s\n", strings.Join(m.Columns, ", "))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
