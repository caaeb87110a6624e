package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/db"
	"github.com/gyeh/fonoledger/internal/exitcode"
	"github.com/gyeh/fonoledger/internal/export"
	"github.com/gyeh/fonoledger/internal/ledger"
	"github.com/gyeh/fonoledger/internal/logging"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the ledger to CSV or Parquet",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportOut, "out", "", "Output file path (required)")
	f.StringVar(&exportFormat, "format", "csv", "Output format: csv or parquet")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateDSNOnly(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if exportFormat != "csv" && exportFormat != "parquet" {
		log.Error().Str("format", exportFormat).Msg("unknown export format")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	recs, err := ledger.New(pool).LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ledger read failed")
		os.Exit(exitcode.StorageError)
	}

	switch exportFormat {
	case "csv":
		f, err := os.Create(exportOut)
		if err != nil {
			log.Error().Err(err).Msg("failed to create output file")
			os.Exit(exitcode.ExportError)
		}
		if err := export.WriteCSV(f, recs); err != nil {
			f.Close()
			log.Error().Err(err).Msg("csv export failed")
			os.Exit(exitcode.ExportError)
		}
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close output file")
			os.Exit(exitcode.ExportError)
		}
	case "parquet":
		if err := export.WriteParquet(exportOut, recs); err != nil {
			log.Error().Err(err).Msg("parquet export failed")
			os.Exit(exitcode.ExportError)
		}
	}

	fmt.Printf("Exported %d records to %s (%s)\n", len(recs), exportOut, exportFormat)
	return nil
}
