package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/db"
	"github.com/gyeh/fonoledger/internal/exitcode"
	"github.com/gyeh/fonoledger/internal/income"
	"github.com/gyeh/fonoledger/internal/ledger"
	"github.com/gyeh/fonoledger/internal/logging"
	"github.com/gyeh/fonoledger/internal/model"
	"github.com/gyeh/fonoledger/internal/normalize"
	"github.com/gyeh/fonoledger/internal/rules"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Compute a visit breakdown and append it to the ledger",
	RunE:  runRecord,
}

func init() {
	addVisitFlags(recordCmd)
	recordCmd.Flags().StringVar(&visit.Patient, "patient", "", "Patient name or identifier (required)")
	_ = recordCmd.MarkFlagRequired("patient")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	req, err := buildRequest(cmd)
	if err != nil {
		log.Error().Err(err).Msg("invalid input")
		os.Exit(exitcode.UsageError)
	}

	tables, err := rules.Load(cfg.RulesDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rule documents")
		os.Exit(exitcode.ConfigError)
	}

	// Nothing is persisted unless the calculation succeeds.
	q, err := income.BuildQuote(req, tables)
	if err != nil {
		var le *income.LookupError
		if errors.As(err, &le) {
			log.Error().Err(err).Msg("price lookup failed")
			os.Exit(exitcode.LookupError)
		}
		log.Error().Err(err).Msg("calculation failed")
		os.Exit(exitcode.LookupError)
	}

	rec := &model.VisitRecord{
		VisitID:       uuid.New(),
		VisitDate:     req.Date,
		Location:      req.Location,
		Item:          req.Item,
		PaymentMethod: req.PaymentMethod,
		Patient:       visit.Patient,
		Gross:         q.Gross,
		Discount:      q.Discount,
		Commission:    q.Commission,
		Adjustment:    q.Adjustment,
		Net:           q.Net,
		RecordedAt:    time.Now().UTC(),
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	repo := ledger.New(pool)
	if err := repo.Append(ctx, rec); err != nil {
		log.Error().Err(err).Msg("ledger append failed")
		os.Exit(exitcode.StorageError)
	}

	log.Info().
		Str("visit_id", rec.VisitID.String()).
		Str("patient", rec.Patient).
		Str("location", rec.Location).
		Float64("net", rec.Net).
		Msg("visit recorded")

	fmt.Println("=== fonoledger record ===")
	printQuote(req, q)
	fmt.Printf("\nRecorded %s for %s (%s)\n",
		normalize.FormatPesos(rec.Net), rec.Patient, rec.VisitID)
	return nil
}
