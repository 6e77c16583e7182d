package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/chartloom-cli/internal/parser"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

var (
	upName      string
	upSheet     string
	upDelimiter string
)

const previewRows = 5

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload and validate CSV or Excel data for plotting",
	Long: `Upload is the first step: it decodes a CSV/TSV or .xlsx file, infers each
column's type, and stores the dataset in the workspace under a name that
later plot/info commands refer to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt := parser.Options{SheetName: upSheet}
		switch upDelimiter {
		case "":
		case ",":
			opt.Delimiter = ','
		case ";":
			opt.Delimiter = ';'
		case "\t", "tab":
			opt.Delimiter = '\t'
		default:
			return fmt.Errorf("unsupported --delimiter: %s", upDelimiter)
		}

		t, err := parser.DecodeFile(path, opt)
		if err != nil {
			return err
		}
		name := upName
		if name == "" {
			name = "dataset"
		}
		ws := openWorkspace()
		if _, err := ws.SaveDataset(name, filepath.Base(path), t); err != nil {
			return err
		}

		fmt.Println("Data uploaded successfully!")
		fmt.Println()
		fmt.Printf("Dataset: %s\n", name)
		fmt.Printf("Rows: %d\n", t.RowCount())
		fmt.Printf("Columns: %d\n", len(t.ColumnNames()))
		fmt.Println()
		fmt.Println("Available columns:")
		for _, cn := range t.ColumnNames() {
			col, _ := t.Column(cn)
			fmt.Printf("  - %s (%s)\n", cn, col.Kind)
		}
		printPreview(t)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("- Use 'chartloom plot' to visualize your data")
		fmt.Println("- Use 'chartloom info' to inspect a column before plotting")
		return nil
	},
}

func printPreview(t *table.Table) {
	n := t.RowCount()
	if n > previewRows {
		n = previewRows
	}
	if n == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Data preview (first %d rows):\n", n)
	fmt.Printf("  %s\n", strings.Join(t.ColumnNames(), " | "))
	for i := 0; i < n; i++ {
		fmt.Printf("  %s\n", strings.Join(t.Row(i), " | "))
	}
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVarP(&upName, "name", "n", "dataset", "name for this dataset")
	uploadCmd.Flags().StringVar(&upSheet, "sheet", "", "Excel sheet name (default: first sheet)")
	uploadCmd.Flags().StringVar(&upDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: auto)")
}
