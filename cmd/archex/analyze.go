package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archibald-tools/archex/internal/engine"
	"github.com/archibald-tools/archex/internal/pagesource"
	"github.com/archibald-tools/archex/internal/schemas"
)

var analyzeWindow int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <type> <file>",
	Short: "Inspect an export's page structure without parsing records",
	Long: `Analyze reports what the cycle detector would decide for an export: the
page count, where the anchor header recurs, the resulting cycle size, and
the table shape of each page in the first cycle. Useful when the exporter
changes a layout and records start coming out misaligned.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType, path := args[0], args[1]
		cfg := cfgMgr.Get()

		sch, err := schemas.Get(docType, schemas.Options{})
		if err != nil {
			return err
		}

		opener := pagesource.FileOpener{Path: path}
		pageCount, err := opener.Validate(cmd.Context())
		if err != nil {
			return err
		}

		src, err := opener.Open(cmd.Context())
		if err != nil {
			return err
		}
		defer src.Close()

		window := analyzeWindow
		if window == 0 {
			window = cfg.Detect.ScanWindow
		}
		det := engine.DetectCycle(cmd.Context(), src, sch, window)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file: %s\n", path)
		fmt.Fprintf(out, "type: %s\n", docType)
		fmt.Fprintf(out, "pages: %d\n", pageCount)
		fmt.Fprintf(out, "anchor: %q first seen on page %d\n", sch.AnchorLabel, det.FirstAnchor)
		fmt.Fprintf(out, "cycle: %d (expected %d, %s)\n", det.Size, det.Expected, det.Status)
		if det.Size > 0 {
			fmt.Fprintf(out, "complete cycles: %d", pageCount/det.Size)
			if rem := pageCount % det.Size; rem > 0 {
				fmt.Fprintf(out, " (+%d trailing pages)", rem)
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintln(out, "\nfirst cycle:")
		for i := 0; i < det.Size && i < pageCount; i++ {
			n, tbl, err := src.FirstTable(cmd.Context(), i)
			if err != nil {
				fmt.Fprintf(out, "  page %d: error: %v\n", i, err)
				continue
			}
			if tbl.IsEmpty() {
				fmt.Fprintf(out, "  page %d: no table\n", i)
				continue
			}
			fmt.Fprintf(out, "  page %d: %d table(s), %d rows x %d cols, header: %s\n",
				i, n, len(tbl.Rows), len(tbl.Header()), strings.Join(tbl.Header(), " | "))
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWindow, "scan-window", 0, "pages to scan during cycle detection (default from config)")
}
