package ledger_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/fonoledger/internal/db"
	"github.com/gyeh/fonoledger/internal/ledger"
	"github.com/gyeh/fonoledger/internal/logging"
	"github.com/gyeh/fonoledger/internal/model"
)

const (
	testPort     = 15433
	testDB       = "ledgertest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool and applies migrations against a
// clean schema. Returns the pool; cleanup is registered on t.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS ledger CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Setup("text")
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func mkVisit(date string, patient string, net float64) *model.VisitRecord {
	d, _ := time.Parse("2006-01-02", date)
	return &model.VisitRecord{
		VisitID:       uuid.New(),
		VisitDate:     d,
		Location:      "LIBEDUL",
		Item:          "PACIENTE",
		PaymentMethod: "EFECTIVO",
		Patient:       patient,
		Gross:         4500,
		Net:           net,
		RecordedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAppendAndLoadAll(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := ledger.New(pool)

	// Append out of date order; LoadAll must return visit-date order.
	second := mkVisit("2025-11-10", "B", 4275)
	first := mkVisit("2025-11-03", "A", 4500)
	for _, rec := range []*model.VisitRecord{second, first} {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Patient != "A" || recs[1].Patient != "B" {
		t.Errorf("records out of visit-date order: %s, %s", recs[0].Patient, recs[1].Patient)
	}
	if recs[0].VisitID != first.VisitID {
		t.Errorf("visit_id mismatch: got %s, want %s", recs[0].VisitID, first.VisitID)
	}
	if recs[0].Gross != 4500 || recs[0].Net != 4500 {
		t.Errorf("amounts mismatch: %+v", recs[0])
	}
}

func TestLoadAll_NegativeNetSurvivesStorage(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := ledger.New(pool)

	rec := mkVisit("2025-11-05", "C", -10000)
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if recs[0].Net != -10000 {
		t.Errorf("net = %v, want -10000", recs[0].Net)
	}
}

func TestLoadAll_MissingTableReadsEmpty(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, "DROP SCHEMA ledger CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	recs, err := ledger.New(pool).LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all on missing table: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records from a nonexistent ledger", len(recs))
	}
}

func TestRestore(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := ledger.New(pool)

	dump := []*model.VisitRecord{
		mkVisit("2025-10-01", "R1", 4500),
		mkVisit("2025-10-02", "R2", 4275),
		mkVisit("2025-10-03", "R3", -500),
	}

	ch := make(chan *model.VisitRecord)
	go func() {
		defer close(ch)
		for _, rec := range dump {
			ch <- rec
		}
	}()

	n, err := repo.Restore(ctx, ch)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if n != 3 {
		t.Errorf("restored %d rows, want 3", n)
	}

	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	if recs[2].Net != -500 {
		t.Errorf("last record net = %v, want -500", recs[2].Net)
	}
}
