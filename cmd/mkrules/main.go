// mkrules writes a starter rules directory seeded with the practice's
// master tables, and optionally a small demo Parquet ledger dump for
// trying the analytics tooling without a database.
// Usage: go run ./cmd/mkrules --out rules [--demo testdata/demo-visits.parquet]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/fonoledger/internal/export"
	"github.com/gyeh/fonoledger/internal/income"
	"github.com/gyeh/fonoledger/internal/model"
	"github.com/gyeh/fonoledger/internal/rules"
)

func main() {
	out := flag.String("out", "rules", "output rules directory")
	demo := flag.String("demo", "", "also write a demo parquet ledger dump to this path")
	force := flag.Bool("force", false, "overwrite existing documents")
	flag.Parse()

	t := seedTables()

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", *out, err)
		os.Exit(1)
	}

	docs := []struct {
		name string
		data any
	}{
		{rules.PricesFile, t.Prices},
		{rules.DiscountsFile, t.Discounts},
		{rules.CommissionsFile, t.Commissions},
	}
	for _, doc := range docs {
		path := filepath.Join(*out, doc.name)
		if _, err := os.Stat(path); err == nil && !*force {
			fmt.Fprintf(os.Stderr, "%s exists, use --force to overwrite\n", path)
			os.Exit(1)
		}
		data, err := yaml.Marshal(doc.data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal %s: %v\n", doc.name, err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}

	if *demo != "" {
		if err := writeDemo(*demo, t); err != nil {
			fmt.Fprintf(os.Stderr, "write demo: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *demo)
	}
}

// seedTables returns the practice's master tables as shipped.
func seedTables() *rules.Tables {
	return &rules.Tables{
		Prices: rules.PriceTable{
			"LIBEDUL": {
				"PACIENTE":               4500,
				"VISITA ESTABLECIMIENTO": 20000,
				"ADOS2":                  30000,
				"DUPLA":                  7000,
				"ADIR+ADOS2":             37500,
				"LAVADO OIDO":            6000,
			},
			"AMAR AUSTRAL": {
				"PACIENTE":               30000,
				"DUPLA":                  25000,
				"LAVADO OIDO":            20000,
				"VISITA ESTABLECIMIENTO": 35000,
				"FALTO":                  0,
				"ADIR+ADOS2":             100000,
			},
			"CPM": {
				"PACIENTE":      30000,
				"HOSPITALIZADO": 30000,
				"ADIR+ADOS2":    190000,
			},
			"DOMICILIO": {
				"PACIENTE":    30000,
				"LAVADO OIDO": 25000,
			},
			"ALERCE": {
				"5 SABADOS": 25000,
				"4 SABADOS": 31250,
			},
		},
		Discounts: rules.DiscountTable{
			"LIBEDUL":   0,
			"ALERCE":    0,
			"DOMICILIO": 0,
			"CPM":       14610,
		},
		Commissions: rules.CommissionTable{
			"EFECTIVO":      0.00,
			"TRANSFERENCIA": 0.00,
			"TARJETA":       0.05,
		},
	}
}

// writeDemo computes a few representative visits against the seed tables
// and dumps them as Parquet.
func writeDemo(path string, t *rules.Tables) error {
	type demoVisit struct {
		date     string
		location string
		item     string
		method   string
		patient  string
	}
	visits := []demoVisit{
		{"2025-11-03", "LIBEDUL", "PACIENTE", "TARJETA", "DEMO A"},
		{"2025-11-04", "AMAR AUSTRAL", "PACIENTE", "EFECTIVO", "DEMO B"}, // Tuesday override
		{"2025-11-07", "AMAR AUSTRAL", "DUPLA", "TRANSFERENCIA", "DEMO C"}, // Friday override
		{"2025-11-12", "CPM", "HOSPITALIZADO", "EFECTIVO", "DEMO D"},
	}

	var recs []model.VisitRecord
	for _, v := range visits {
		day, err := time.Parse("2006-01-02", v.date)
		if err != nil {
			return err
		}
		bd, err := income.Calculate(v.location, v.item, v.method, day, t)
		if err != nil {
			return err
		}
		recs = append(recs, model.VisitRecord{
			VisitID:       uuid.New(),
			VisitDate:     day,
			Location:      v.location,
			Item:          v.item,
			PaymentMethod: v.method,
			Patient:       v.patient,
			Gross:         bd.Gross,
			Discount:      bd.Discount,
			Commission:    bd.Commission,
			Net:           bd.Net,
			RecordedAt:    time.Now().UTC(),
		})
	}
	return export.WriteParquet(path, recs)
}
