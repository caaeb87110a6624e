package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/fonoledger/internal/income"
	"github.com/gyeh/fonoledger/internal/normalize"
)

// visitInput holds the flag values shared by quote and record.
type visitInput struct {
	Location string
	Item     string
	Method   string
	DateStr  string
	Patient  string
	Gross    float64
	Adjust   float64
}

var visit visitInput

// addVisitFlags registers the shared calculation flags on a command.
func addVisitFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&visit.Location, "location", "", "Attending center (lugar), e.g. AMAR AUSTRAL (required)")
	f.StringVar(&visit.Item, "item", "", "Billed procedure (ítem), e.g. PACIENTE (required)")
	f.StringVar(&visit.Method, "method", "", "Payment method, e.g. EFECTIVO, TRANSFERENCIA, TARJETA (required)")
	f.StringVar(&visit.DateStr, "date", "", "Visit date (YYYY-MM-DD; default today)")
	f.Float64Var(&visit.Gross, "gross", 0, "Manual gross override, replaces the table price")
	f.Float64Var(&visit.Adjust, "adjust", 0, "Extra manual discount subtracted from net (negative adds a charge)")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("method")
}

// buildRequest normalizes the flag values into a QuoteRequest.
func buildRequest(cmd *cobra.Command) (income.QuoteRequest, error) {
	day := time.Now()
	if visit.DateStr != "" {
		parsed := normalize.ParseDate(visit.DateStr)
		if parsed == nil {
			return income.QuoteRequest{}, fmt.Errorf("unparseable date %q", visit.DateStr)
		}
		day = *parsed
	}

	req := income.QuoteRequest{
		Location:      normalize.Key(visit.Location),
		Item:          normalize.Key(visit.Item),
		PaymentMethod: normalize.Key(visit.Method),
		Date:          day,
		Adjustment:    visit.Adjust,
	}
	if cmd.Flags().Changed("gross") {
		g := visit.Gross
		req.GrossOverride = &g
	}
	return req, nil
}

// printQuote renders a breakdown in the quote/record report format.
func printQuote(req income.QuoteRequest, q income.Quote) {
	fmt.Printf("Location:    %s\n", req.Location)
	fmt.Printf("Item:        %s\n", req.Item)
	fmt.Printf("Payment:     %s\n", req.PaymentMethod)
	fmt.Printf("Date:        %s (%s)\n", req.Date.Format("2006-01-02"), req.Date.Weekday())
	fmt.Println()
	fmt.Printf("Gross:       %s\n", normalize.FormatPesos(q.Gross))
	fmt.Printf("Discount:    %s\n", normalize.FormatPesos(q.Discount))
	fmt.Printf("Commission:  %s\n", normalize.FormatPesos(q.Commission))
	if q.Adjustment != 0 {
		fmt.Printf("Adjustment:  %s\n", normalize.FormatPesos(q.Adjustment))
	}
	fmt.Printf("Net:         %s\n", normalize.FormatPesos(q.Net))
}
