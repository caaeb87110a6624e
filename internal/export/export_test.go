package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/fonoledger/internal/model"
)

func sampleRecords() []model.VisitRecord {
	d1, _ := time.Parse("2006-01-02", "2025-11-04")
	d2, _ := time.Parse("2006-01-02", "2025-11-07")
	rec := time.Date(2025, 11, 7, 18, 30, 0, 0, time.UTC)
	return []model.VisitRecord{
		{
			VisitID: uuid.New(), VisitDate: d1,
			Location: "AMAR AUSTRAL", Item: "PACIENTE", PaymentMethod: "TARJETA",
			Patient: "M. PEREZ", Gross: 30000, Discount: 8000, Commission: 1500,
			Net: 20500, RecordedAt: rec,
		},
		{
			VisitID: uuid.New(), VisitDate: d2,
			Location: "LIBEDUL", Item: "DUPLA", PaymentMethod: "EFECTIVO",
			Patient: "J. SOTO", Gross: 7000, Adjustment: 500, Net: 6500,
			RecordedAt: rec,
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	recs := sampleRecords()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, recs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("got %d records, want %d", len(got), len(recs))
	}
	for i := range recs {
		if got[i] != recs[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], recs[i])
		}
	}
}

func TestReadCSV_RejectsWrongHeader(t *testing.T) {
	in := "fecha,lugar,item\n2025-11-04,LIBEDUL,PACIENTE\n"
	if _, err := ReadCSV(strings.NewReader(in)); err == nil {
		t.Fatal("expected header error")
	}
}

func TestReadCSV_RejectsBadAmount(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatal(err)
	}
	mangled := strings.Replace(buf.String(), "30000", "mucho", 1)
	if _, err := ReadCSV(strings.NewReader(mangled)); err == nil {
		t.Fatal("expected parse error for non-numeric amount")
	}
}

func TestValidateHeader(t *testing.T) {
	if err := ValidateHeader(csvHeader); err != nil {
		t.Errorf("canonical header rejected: %v", err)
	}
	if err := ValidateHeader(csvHeader[:5]); err == nil {
		t.Error("short header accepted")
	}
	swapped := append([]string{}, csvHeader...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if err := ValidateHeader(swapped); err == nil {
		t.Error("reordered header accepted")
	}
}
