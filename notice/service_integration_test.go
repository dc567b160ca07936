package notice

import (
	"context"
	"os"
	"testing"
	"time"

	"noticeflow/record"
	"noticeflow/test/infra"
)

// TestLifecycle_Integration drives the full PN -> PIN -> CN -> rollover
// chain against a real Postgres store.
func TestLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pgC, dsn, err := infra.StartPostgres16(ctx, os.Getenv("TEST_PG_DSN"))
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

	pool, err := infra.ApplyMigrations(ctx, dsn)
	if err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	defer pool.Close()

	svc := NewService(record.NewPGStore(pool), NewAllocator("ocds-t1s2t5"))

	created, err := svc.Create(ctx, CreateParams{
		Country: "MD",
		Stage:   StagePN,
		Owner:   "owner-itest",
		Tender:  testSubmission(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM process_records WHERE process_id = $1`, created.ProcessID)
	})

	pin, err := svc.Derive(ctx, DeriveParams{
		ProcessID: created.ProcessID,
		FromStage: StagePN,
		NewStage:  StagePIN,
		Owner:     "owner-itest",
		Token:     created.Token,
		StartDate: pinnedStart,
		Tender:    Tender{"id": created.ProcessID},
	})
	if err != nil {
		t.Fatalf("derive PIN: %v", err)
	}

	cn, err := svc.Derive(ctx, DeriveParams{
		ProcessID: created.ProcessID,
		FromStage: StagePIN,
		NewStage:  StageCN,
		Owner:     "owner-itest",
		Token:     pin.Token,
		StartDate: pinnedStart,
		Tender:    Tender{"id": created.ProcessID},
	})
	if err != nil {
		t.Fatalf("derive CN: %v", err)
	}
	if status, _ := cn.Tender.Status(); status != "active" {
		t.Fatalf("expected active CN, got %q", status)
	}

	relaunched, err := svc.Rollover(ctx, RolloverParams{
		ProcessID: created.ProcessID,
		FromStage: StageCN,
		NewStage:  "CN2",
		Owner:     "owner-itest",
		Token:     cn.Token,
	})
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if relaunched.Token != cn.Token {
		t.Errorf("expected rollover to carry the CN token")
	}

	// Every stage of the chain is still readable.
	store := record.NewPGStore(pool)
	for _, stage := range []string{"PN", "PIN", "CN", "CN2"} {
		if _, err := store.Get(ctx, created.ProcessID, stage); err != nil {
			t.Errorf("stage %s not persisted: %v", stage, err)
		}
	}
}
