package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/db"
	"github.com/gyeh/fonoledger/internal/exitcode"
	"github.com/gyeh/fonoledger/internal/ledger"
	"github.com/gyeh/fonoledger/internal/logging"
	"github.com/gyeh/fonoledger/internal/normalize"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all ledger records in visit order",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateDSNOnly(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
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

	if len(recs) == 0 {
		fmt.Println("ledger is empty")
		return nil
	}

	fmt.Printf("%-10s  %-14s  %-22s  %-14s  %-20s  %12s  %12s\n",
		"DATE", "LOCATION", "ITEM", "METHOD", "PATIENT", "GROSS", "NET")
	for i := range recs {
		r := &recs[i]
		fmt.Printf("%-10s  %-14s  %-22s  %-14s  %-20s  %12s  %12s\n",
			r.VisitDate.Format("2006-01-02"),
			r.Location,
			r.Item,
			r.PaymentMethod,
			r.Patient,
			normalize.FormatPesos(r.Gross),
			normalize.FormatPesos(r.Net),
		)
	}
	fmt.Printf("\n%d records\n", len(recs))
	return nil
}
