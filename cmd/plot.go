package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/chartloom-cli/internal/plot"
	"github.com/KaramelBytes/chartloom-cli/internal/render"
	"github.com/KaramelBytes/chartloom-cli/internal/store"
	"github.com/KaramelBytes/chartloom-cli/internal/utils"
)

var (
	plotDataset    string
	plotX          string
	plotYPrimary   string
	plotYSecondary string
	plotTime       bool
	plotDateColumn string
	plotOutliers   bool
	plotThreshold  float64
	plotLarge      bool
	plotTitle      string
	plotOut        string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Create a dual-axis scatter plot from an uploaded dataset",
	Long: `Plot prepares chart series from an uploaded dataset and renders them to a
PNG. Multiple Y columns can share the primary (left) axis, with an optional
second group on the secondary (right) axis. With --time, the date column
becomes the X axis and points are connected in order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotX == "" && !plotTime {
			return fmt.Errorf("--x is required; specify which column to use for the X-axis")
		}
		if plotTime && plotDateColumn == "" {
			return fmt.Errorf("--date-column is required with --time")
		}
		if cmd.Flags().Changed("threshold") && plotThreshold <= 0 {
			return fmt.Errorf("--threshold must be positive, got %g", plotThreshold)
		}

		conf := activeConfig()
		req := plot.Request{
			Dataset:          plotDataset,
			XColumn:          plotX,
			YPrimary:         splitColumns(plotYPrimary),
			YSecondary:       splitColumns(plotYSecondary),
			TimeSeries:       plotTime,
			DateColumn:       plotDateColumn,
			RemoveOutliers:   plotOutliers,
			OutlierThreshold: plotThreshold,
			LargeDataset:     plotLarge,
			Title:            plotTitle,
		}
		if plotTime && req.XColumn == "" {
			req.XColumn = plotDateColumn
		}
		if req.OutlierThreshold == 0 {
			req.OutlierThreshold = conf.OutlierThreshold
		}

		ws := openWorkspace()
		t, _, err := ws.LoadDataset(req.Dataset)
		if err != nil {
			return err
		}
		st := store.New()
		st.Put(req.Dataset, t)

		eng := plot.NewEngine(st, conf.MaxPoints)
		res, err := eng.Prepare(req)
		if err != nil {
			return err
		}

		png, err := render.PNG(res, render.Options{Width: conf.ChartWidth, Height: conf.ChartHeight})
		if err != nil {
			return err
		}
		out := plotOut
		if out == "" {
			out = filepath.Join(conf.OutputDir, fmt.Sprintf("chart-%s.png", uuid.NewString()[:8]))
		}
		if err := utils.SafeWriteFile(out, png); err != nil {
			return err
		}

		fmt.Println("Chart created successfully!")
		fmt.Println()
		fmt.Printf("Dataset: %s\n", req.Dataset)
		fmt.Printf("X-axis: %s\n", res.Meta.XLabel)
		fmt.Printf("Primary Y-axis: %s\n", res.Meta.PrimaryLabel)
		if res.Meta.SecondaryLabel != "" {
			fmt.Printf("Secondary Y-axis: %s\n", res.Meta.SecondaryLabel)
		}
		fmt.Printf("Data points: %d of %d rows\n", res.RowsIncluded, res.TotalRows)
		if res.OutliersRemoved > 0 {
			pct := float64(res.OutliersRemoved) * 100 / float64(res.TotalRows)
			fmt.Printf("Outliers removed: %d (%.1f%%)\n", res.OutliersRemoved, pct)
		}
		fmt.Printf("Output: %s\n", out)
		return nil
	},
}

func splitColumns(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotDataset, "dataset", "d", "dataset", "name of the uploaded dataset")
	plotCmd.Flags().StringVarP(&plotX, "x", "x", "", "column name for the X-axis")
	plotCmd.Flags().StringVarP(&plotYPrimary, "y", "y", "", "comma-separated column names for the primary Y-axis (required)")
	plotCmd.Flags().StringVar(&plotYSecondary, "y2", "", "comma-separated column names for the secondary Y-axis")
	plotCmd.Flags().BoolVar(&plotTime, "time", false, "treat the date column as the X axis (time-series mode)")
	plotCmd.Flags().StringVar(&plotDateColumn, "date-column", "", "name of the date column (required with --time)")
	plotCmd.Flags().BoolVar(&plotOutliers, "remove-outliers", false, "remove statistical outliers from the data")
	plotCmd.Flags().Float64Var(&plotThreshold, "threshold", 0, "z-score threshold for outlier removal (default from config)")
	plotCmd.Flags().BoolVar(&plotLarge, "large", false, "downsample series beyond the configured point budget")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "custom chart title")
	plotCmd.Flags().StringVarP(&plotOut, "output", "o", "", "output PNG path (default: generated name in output dir)")
}
