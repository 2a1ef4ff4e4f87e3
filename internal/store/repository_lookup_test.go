package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/utils"
	"github.com/DiogoPalharini/mtfa/models"
)

func newTestLookupRepo(t *testing.T) (*lookupRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, conn := newMockDB(t)
	t.Cleanup(func() { conn.Close() })

	return &lookupRepository{
		db:     db,
		ids:    utils.NewIDGenerator(),
		logger: logger.Nop(),
	}, mock
}

func TestUpsertValue_NewValueInserted(t *testing.T) {
	repo, mock := newTestLookupRepo(t)

	mock.ExpectExec("INSERT INTO dropdown_data").
		WillReturnResult(sqlmock.NewResult(1, 1))

	inserted, err := repo.UpsertValue(context.Background(), models.LookupTruck, "KA-102")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Error("expected inserted=true for a new value")
	}
}

func TestUpsertValue_DuplicateIsNoOp(t *testing.T) {
	repo, mock := newTestLookupRepo(t)

	mock.ExpectExec("INSERT INTO dropdown_data").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.UpsertValue(context.Background(), models.LookupTruck, "KA-102")
	if err != nil {
		t.Fatalf("duplicate upsert must not error: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for an existing value")
	}
}

func TestGetAllValues_EveryKnownTypePresent(t *testing.T) {
	repo, mock := newTestLookupRepo(t)

	rows := sqlmock.NewRows([]string{"type", "value"}).
		AddRow("truck", "KA-102").
		AddRow("truck", "KA-105").
		AddRow("farm", "North Farm").
		AddRow("trucks", "legacy-row")

	mock.ExpectQuery("FROM dropdown_data").WillReturnRows(rows)

	all, err := repo.GetAllValues(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(all) != len(models.LookupTypes()) {
		t.Fatalf("expected %d types, got %d", len(models.LookupTypes()), len(all))
	}
	if got := all[models.LookupTruck]; len(got) != 2 {
		t.Errorf("expected 2 truck values, got %v", got)
	}
	if got := all[models.LookupDriver]; got == nil || len(got) != 0 {
		t.Errorf("types without rows must map to an empty slice, got %v", got)
	}
}
