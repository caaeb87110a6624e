// Package export writes ledger dumps (CSV for download and re-import,
// Parquet for downstream analytics) and reads CSV dumps back for restore.
package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/fonoledger/internal/model"
)

// WriteParquet writes the records to a Parquet file at path.
func WriteParquet(path string, recs []model.VisitRecord) error {
	rows := make([]model.VisitExportRow, len(recs))
	for i := range recs {
		rows[i] = model.ToExportRow(&recs[i])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[model.VisitExportRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
