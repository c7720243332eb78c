package commands

import (
	"fmt"
	"log"
	"slices"

	"KonkurRankPredictor/internal/extractor"
	"KonkurRankPredictor/internal/models"
	"KonkurRankPredictor/internal/storage"

	"github.com/spf13/cobra"
)

var (
	extractIn     *string
	extractOut    *string
	extractDb     *string
	extractVerify *bool
)

func init() {
	extractIn = extractCmd.Flags().String("in", "cshub.ir.html", "The saved results page to read.")
	extractOut = extractCmd.Flags().String("out", "konkur_results.csv", "The CSV file to write.")
	extractDb = extractCmd.Flags().String("db", "", "Optional sqlite database to record the extracted rows in.")
	extractVerify = extractCmd.Flags().Bool("verify", false, "Read the written CSV back and compare it with the extracted rows.")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract [--in <page.html>] [--out <results.csv>] [--db <results.db>] [--verify]",
	Short: "Extracts every table row of an HTML page into a CSV file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := extractor.ExtractFile(cmd.Context(), *extractIn)
		if err != nil {
			return err
		}
		if err := extractor.SaveCSV(*extractOut, rows); err != nil {
			return fmt.Errorf("failed to write %s: %w", *extractOut, err)
		}

		if *extractVerify {
			written, err := extractor.LoadCSV(*extractOut)
			if err != nil {
				return fmt.Errorf("failed to read back %s: %w", *extractOut, err)
			}
			if !slices.EqualFunc(rows, written, func(a, b models.Row) bool { return slices.Equal(a, b) }) {
				return fmt.Errorf("verify: %s does not match the extracted rows", *extractOut)
			}
		}

		if *extractDb != "" {
			if err := storage.InitDB(*extractDb); err != nil {
				return err
			}
			defer storage.CloseDB()
			runID, err := storage.SaveExtraction(*extractIn, *extractOut, rows)
			if err != nil {
				return fmt.Errorf("failed to save rows to %s: %w", *extractDb, err)
			}
			log.Printf("extract: recorded run %d (%d rows) in %s", runID, len(rows), *extractDb)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved as %s\n", *extractOut)
		return nil
	},
}
