package repositories

import (
	"errors"
	"os"
	"testing"
	"time"

	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
	"invoice-backend/internal/query"
)

func newProductRepo(t *testing.T) *ProductRepository {
	t.Helper()
	repo := NewProductRepository(docstore.New(t.TempDir()))
	repo.Now = func() time.Time { return time.UnixMilli(1735689600000) }
	return repo
}

func TestProductSaveAndList(t *testing.T) {
	repo := newProductRepo(t)

	if err := repo.Save(models.Product{Name: "Widget", TotalUnits: 10, UnitPrice: 99.5}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := repo.List(query.Options{GlobalFilter: "widg"})
	if got.TotalRecords != 1 || got.Data[0].UnitPrice != 99.5 {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestProductUpdatePersistsOnlyWhenChanged(t *testing.T) {
	repo := newProductRepo(t)
	if err := repo.Save(models.Product{Name: "Widget", TotalUnits: 10}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	before, err := os.Stat(repo.Store.Path(docstore.Products))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	if err := repo.Update(func(products []models.Product) (bool, error) {
		products[0].TotalUnits = 999 // discarded: fn reports no change
		return false, nil
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	after, err := os.Stat(repo.Store.Path(docstore.Products))
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("document rewritten even though fn reported no change")
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if all[0].TotalUnits != 10 {
		t.Errorf("TotalUnits = %d, want unchanged 10", all[0].TotalUnits)
	}
}

func TestProductUpdateMissingDocumentIsNoop(t *testing.T) {
	repo := newProductRepo(t)

	if err := repo.Update(func(products []models.Product) (bool, error) {
		return true, nil
	}); err != nil {
		t.Fatalf("Update against missing document should be a no-op, got %v", err)
	}
	if repo.Store.Exists(docstore.Products) {
		t.Error("no-op update must not create the document")
	}
}

func TestProductUpdateAbortsOnError(t *testing.T) {
	repo := newProductRepo(t)
	if err := repo.Save(models.Product{Name: "Widget", TotalUnits: 10}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sentinel := errors.New("boom")
	if err := repo.Update(func(products []models.Product) (bool, error) {
		products[0].TotalUnits = 0
		return true, sentinel
	}); !errors.Is(err, sentinel) {
		t.Fatalf("expected propagated error, got %v", err)
	}

	all, _ := repo.All()
	if all[0].TotalUnits != 10 {
		t.Errorf("mutation persisted despite error, TotalUnits = %d", all[0].TotalUnits)
	}
}

func TestProductAllMissingDocument(t *testing.T) {
	repo := newProductRepo(t)

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty snapshot, got %+v", all)
	}
}
