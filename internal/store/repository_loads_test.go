package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

func newTestLoadRepo(t *testing.T) (*loadRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, conn := newMockDB(t)
	t.Cleanup(func() { conn.Close() })

	return &loadRepository{
		db:     db,
		ids:    utils.NewIDGenerator(),
		logger: logger.Nop(),
	}, mock
}

var loadColumns = []string{
	"id", "reg_date", "reg_time",
	"truck", "othertruck", "farm", "otherfarm", "field", "otherfield",
	"variety", "othervariety", "driver", "otherdriver",
	"destination", "otherdestination", "dnote", "agreement", "otheragreement",
	"status", "sync_attempts", "created_at", "synced_at",
}

func TestSaveLoad_Success(t *testing.T) {
	repo, mock := newTestLoadRepo(t)

	mock.ExpectExec("INSERT INTO truck_loads").
		WillReturnResult(sqlmock.NewResult(1, 1))

	form := models.LoadForm{
		RegDate: "2026-08-31",
		RegTime: "14:05:00",
		Truck:   "KA-102",
	}

	id, err := repo.SaveLoad(context.Background(), form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "local_") {
		t.Errorf("expected locally generated id, got %q", id)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetPendingLoads_ScansRowsInOrder(t *testing.T) {
	repo, mock := newTestLoadRepo(t)

	older := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(loadColumns).
		AddRow("local_1", "2026-08-30", "10:00:00",
			"KA-102", "", "North Farm", "", "F3", "",
			"Wheat", "", "J. Smith", "",
			"Silo 2", "", "", "fixed", "",
			models.LoadStatusPending, 2, older, nil).
		AddRow("local_2", "2026-08-31", "10:00:00",
			"KA-105", "", "North Farm", "", "F4", "",
			"Wheat", "", "J. Smith", "",
			"Silo 2", "", "", "fixed", "",
			models.LoadStatusPending, 0, newer, nil)

	mock.ExpectQuery("FROM truck_loads").
		WithArgs(models.LoadStatusPending).
		WillReturnRows(rows)

	pending, err := repo.GetPendingLoads(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending records, got %d", len(pending))
	}
	if pending[0].ID != "local_1" || pending[1].ID != "local_2" {
		t.Errorf("row order not preserved: %q, %q", pending[0].ID, pending[1].ID)
	}
	if pending[0].SyncAttempts != 2 {
		t.Errorf("expected 2 sync attempts, got %d", pending[0].SyncAttempts)
	}
	if pending[0].SyncedAt != nil {
		t.Errorf("pending record must not carry synced_at")
	}
}

func TestMarkSynced_AlreadySyncedIsNoOp(t *testing.T) {
	repo, mock := newTestLoadRepo(t)

	syncedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE truck_loads").
		WithArgs(models.LoadStatusSynced, syncedAt, "local_1", models.LoadStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkSynced(context.Background(), "local_1", syncedAt); err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}
}

func TestStats_CountsAllBuckets(t *testing.T) {
	repo, mock := newTestLoadRepo(t)

	mock.ExpectQuery("FROM truck_loads").
		WillReturnRows(sqlmock.NewRows([]string{"total", "pending", "synced"}).AddRow(5, 3, 2))

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 5 || stats.Pending != 3 || stats.Synced != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestCleanupOldLoads_OnlySyncedRecords(t *testing.T) {
	repo, mock := newTestLoadRepo(t)

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	mock.ExpectExec("DELETE FROM truck_loads").
		WithArgs(cutoff, models.LoadStatusSynced).
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.CleanupOldLoads(context.Background(), cutoff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
