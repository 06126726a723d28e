package repositories

import (
	"errors"
	"testing"
	"time"

	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
	"invoice-backend/internal/query"
)

func newContactRepo(t *testing.T) *ContactRepository {
	t.Helper()
	repo := NewContactRepository(docstore.New(t.TempDir()))
	repo.Now = func() time.Time { return time.UnixMilli(1735689600000) }
	return repo
}

func TestContactSaveAssignsTimestampID(t *testing.T) {
	repo := newContactRepo(t)

	if err := repo.Save(models.Contact{Name: "Acme Traders"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := repo.List(query.Options{})
	if got.TotalRecords != 1 {
		t.Fatalf("TotalRecords = %d, want 1", got.TotalRecords)
	}
	if got.Data[0].ID != 1735689600000 {
		t.Errorf("ID = %d, want creation timestamp", got.Data[0].ID)
	}
}

func TestContactSaveRequiresName(t *testing.T) {
	repo := newContactRepo(t)

	err := repo.Save(models.Contact{Phone: "9876543210"})
	if err == nil || err.Error() != "Name is required" {
		t.Errorf("expected name validation error, got %v", err)
	}
}

func TestContactSaveReplacesExisting(t *testing.T) {
	repo := newContactRepo(t)
	if err := repo.Save(models.Contact{Name: "Old Name", Phone: "111"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	id := repo.List(query.Options{}).Data[0].ID

	// Replace is wholesale: omitted fields are cleared, not merged.
	if err := repo.Save(models.Contact{ID: id, Name: "New Name"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got := repo.List(query.Options{})
	if got.TotalRecords != 1 {
		t.Fatalf("update must not append, got %d records", got.TotalRecords)
	}
	if got.Data[0].Name != "New Name" || got.Data[0].Phone != "" {
		t.Errorf("expected wholesale replace, got %+v", got.Data[0])
	}
}

func TestContactSaveUnknownID(t *testing.T) {
	repo := newContactRepo(t)
	if err := repo.Save(models.Contact{Name: "Someone"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	err := repo.Save(models.Contact{ID: 42, Name: "Ghost"})
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactDelete(t *testing.T) {
	repo := newContactRepo(t)
	if err := repo.Save(models.Contact{Name: "Acme Traders"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	id := repo.List(query.Options{}).Data[0].ID

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := repo.List(query.Options{}); got.TotalRecords != 0 {
		t.Errorf("contact still present after delete: %+v", got.Data)
	}

	// Absent id against an existing document is still a success.
	if err := repo.Delete(999); err != nil {
		t.Errorf("delete of unknown id should succeed, got %v", err)
	}
}

func TestContactDeleteMissingDocument(t *testing.T) {
	repo := newContactRepo(t)

	err := repo.Delete(1)
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
	if err != nil && err.Error() != "File not found" {
		t.Errorf("error text = %q, want %q", err.Error(), "File not found")
	}
}

func TestContactListFiltersAcrossFields(t *testing.T) {
	repo := newContactRepo(t)
	seed := []models.Contact{
		{Name: "Acme Traders", Phone: "9876500001", Email: "sales@acme.in", GSTIN: "27AAA1"},
		{Name: "Beta Corp", Phone: "9876500002", Email: "hello@beta.in", GSTIN: "27BBB2"},
	}
	for i, c := range seed {
		c := c
		repo.Now = func() time.Time { return time.UnixMilli(int64(1735689600000 + i)) }
		if err := repo.Save(c); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"acme", 1},
		{"9876500002", 1},
		{"@beta.in", 1},
		{"27BBB", 1},
		{"27", 2},
		{"nothing", 0},
	}
	for _, tt := range tests {
		if got := repo.List(query.Options{GlobalFilter: tt.filter}); got.TotalRecords != tt.want {
			t.Errorf("filter %q: TotalRecords = %d, want %d", tt.filter, got.TotalRecords, tt.want)
		}
	}
}

func TestContactListEmptyStore(t *testing.T) {
	repo := newContactRepo(t)

	got := repo.List(query.Options{})
	if got.Data == nil {
		t.Error("Data must be an empty slice, not nil")
	}
	if got.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", got.TotalRecords)
	}
}
