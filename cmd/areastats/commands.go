package main

import (
	"encoding/json"
	"strings"

	"realestate/app"
	"realestate/internal"
	"realestate/internal/config"
	"realestate/internal/container"
	"realestate/internal/errors"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	file  string
	sheet string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "areastats",
		Short: "Query the area price/demand workbook from the command line",
		Long: `areastats loads the same dataset as the API server and answers
queries offline. Configuration comes from the environment (.env is read),
with --file and --sheet overriding EXCEL_FILE and EXCEL_SHEET.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "Excel or CSV file to load (overrides EXCEL_FILE)")
	rootCmd.PersistentFlags().StringVar(&opts.sheet, "sheet", "", "Sheet to read (overrides EXCEL_SHEET)")

	rootCmd.AddCommand(
		newColumnsCmd(opts),
		newAreasCmd(opts),
		newAnalyzeCmd(opts),
	)
	return rootCmd
}

func newColumnsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Print the normalized column names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd, opts)
			if err != nil {
				return err
			}
			columns, err := svc.Columns(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"columns": columns})
		},
	}
}

func newAreasCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "Print the locations a query can end with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd, opts)
			if err != nil {
				return err
			}
			areas, err := svc.Areas(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"areas": areas})
		},
	}
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var explicitArea string

	cmd := &cobra.Command{
		Use:   "analyze [query...]",
		Short: "Run an area query and print the API response body",
		Long: `Run an area query exactly as POST /api/analyze/ would.

Example: areastats analyze flats in wakad --file data/data.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd, opts)
			if err != nil {
				return err
			}
			req := app.AnalyzeRequest{Query: strings.Join(args, " "), Area: explicitArea}
			report, err := svc.Analyze(cmd.Context(), req)
			if err != nil {
				return errors.New(errors.GetCode(err), errors.PublicMessage(err))
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringVar(&explicitArea, "area", "", "Look up this area instead of the last word of the query")
	return cmd
}

func loadService(cmd *cobra.Command, opts *rootOptions) (*app.AreaAnalysisService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))

	if opts.file != "" {
		cfg.Data.Source = config.SourceExcel
		cfg.Data.ExcelFile = opts.file
	}
	if opts.sheet != "" {
		cfg.Data.ExcelSheet = opts.sheet
	}

	c, err := container.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.LoadDataset(cmd.Context()); err != nil {
		return nil, err
	}
	return c.AnalysisService, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
