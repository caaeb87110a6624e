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
	"github.com/gyeh/fonoledger/internal/model"
)

var restoreFile string

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Bulk-load a CSV ledger dump via the COPY protocol",
	RunE:  runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreFile, "file", "", "Path to CSV dump (required)")
	_ = restoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateDSNOnly(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	f, err := os.Open(restoreFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to open dump")
		os.Exit(exitcode.UsageError)
	}
	recs, err := export.ReadCSV(f)
	f.Close()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse dump")
		os.Exit(exitcode.ExportError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	ch := make(chan *model.VisitRecord)
	go func() {
		defer close(ch)
		for i := range recs {
			select {
			case ch <- &recs[i]:
			case <-ctx.Done():
				return
			}
		}
	}()

	n, err := ledger.New(pool).Restore(ctx, ch)
	if err != nil {
		log.Error().Err(err).Msg("restore failed")
		os.Exit(exitcode.StorageError)
	}

	log.Info().Int64("rows", n).Str("file", restoreFile).Msg("restore complete")
	fmt.Printf("Restored %d records from %s\n", n, restoreFile)
	return nil
}
