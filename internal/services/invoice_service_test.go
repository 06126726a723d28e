package services

import (
	"errors"
	"testing"
	"time"

	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/timeutil"
)

func newInvoiceService(t *testing.T) *InvoiceService {
	t.Helper()
	store := docstore.New(t.TempDir())
	svc := NewInvoiceService(
		repositories.NewInvoiceRepository(store),
		repositories.NewProductRepository(store),
	)
	svc.Now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, timeutil.IST)
	}
	return svc
}

func seedProduct(t *testing.T, svc *InvoiceService, id int64, units int) {
	t.Helper()
	if err := svc.Products.Store.Save(docstore.Products, []models.Product{
		{ID: id, Name: "Widget", TotalUnits: units, UnitPrice: 100},
	}); err != nil {
		t.Fatalf("seed products: %v", err)
	}
}

func productUnits(t *testing.T, svc *InvoiceService, id int64) int {
	t.Helper()
	products, err := svc.Products.All()
	if err != nil {
		t.Fatalf("load products: %v", err)
	}
	for _, p := range products {
		if p.ID == id {
			return p.TotalUnits
		}
	}
	t.Fatalf("product %d not found", id)
	return 0
}

func TestSaveAssignsNumberAndID(t *testing.T) {
	svc := newInvoiceService(t)

	if err := svc.Save(models.Invoice{CustomerName: "Acme", Status: models.StatusDraft}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	all, _ := svc.Invoices.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(all))
	}
	if all[0].InvoiceNumber != "INV-20260315-01" {
		t.Errorf("InvoiceNumber = %q, want INV-20260315-01", all[0].InvoiceNumber)
	}
	if all[0].ID != svc.Now().UnixMilli() {
		t.Errorf("ID = %d, want creation timestamp", all[0].ID)
	}
}

func TestNumberingCountsTodayOnly(t *testing.T) {
	svc := newInvoiceService(t)
	existing := []models.Invoice{
		{ID: 1, InvoiceNumber: "INV-20260315-01", CustomerName: "A"},
		{ID: 2, InvoiceNumber: "INV-20260315-02", CustomerName: "B"},
		{ID: 3, InvoiceNumber: "INV-20260314-07", CustomerName: "C"}, // yesterday
	}
	if err := svc.Invoices.Store.Save(docstore.Invoices, existing); err != nil {
		t.Fatalf("seed invoices: %v", err)
	}

	if err := svc.Save(models.Invoice{CustomerName: "D"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	all, _ := svc.Invoices.All()
	if got := all[len(all)-1].InvoiceNumber; got != "INV-20260315-03" {
		t.Errorf("InvoiceNumber = %q, want INV-20260315-03", got)
	}
}

func TestNumberingPastNinetyNine(t *testing.T) {
	svc := newInvoiceService(t)
	var existing []models.Invoice
	for i := 0; i < 99; i++ {
		existing = append(existing, models.Invoice{
			ID:            int64(i + 1),
			InvoiceNumber: "INV-20260315-XX",
			CustomerName:  "A",
		})
	}
	if err := svc.Invoices.Store.Save(docstore.Invoices, existing); err != nil {
		t.Fatalf("seed invoices: %v", err)
	}

	if err := svc.Save(models.Invoice{CustomerName: "B"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The two-digit padding widens rather than wrapping or failing.
	all, _ := svc.Invoices.All()
	if got := all[len(all)-1].InvoiceNumber; got != "INV-20260315-100" {
		t.Errorf("InvoiceNumber = %q, want INV-20260315-100", got)
	}
}

func TestSaveRequiresCustomer(t *testing.T) {
	svc := newInvoiceService(t)

	err := svc.Save(models.Invoice{Status: models.StatusDraft})
	if err == nil || err.Error() != "Customer is required" {
		t.Errorf("expected customer validation error, got %v", err)
	}
}

func TestDraftSaveDoesNotTouchStock(t *testing.T) {
	svc := newInvoiceService(t)
	seedProduct(t, svc, 10, 8)

	err := svc.Save(models.Invoice{
		CustomerName: "Acme",
		Status:       models.StatusDraft,
		Items:        []models.InvoiceItem{{ProductID: 10, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if units := productUnits(t, svc, 10); units != 8 {
		t.Errorf("TotalUnits = %d, want untouched 8", units)
	}
}

func TestCreateAsFinalizedDeductsStock(t *testing.T) {
	svc := newInvoiceService(t)
	if err := svc.Products.Store.Save(docstore.Products, []models.Product{
		{ID: 10, Name: "Widget", TotalUnits: 8, UnitPrice: 100},
		{ID: 11, Name: "Gadget", TotalUnits: 20, UnitPrice: 50},
	}); err != nil {
		t.Fatalf("seed products: %v", err)
	}

	err := svc.Save(models.Invoice{
		CustomerName: "Acme",
		Status:       models.StatusFinalized,
		Items: []models.InvoiceItem{
			{ProductID: 10, Quantity: 3},
			{ProductID: 11, Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if units := productUnits(t, svc, 10); units != 5 {
		t.Errorf("product 10 TotalUnits = %d, want 5", units)
	}
	if units := productUnits(t, svc, 11); units != 15 {
		t.Errorf("product 11 TotalUnits = %d, want 15", units)
	}
}

func TestFinalizationDeductsExactlyOnce(t *testing.T) {
	svc := newInvoiceService(t)
	seedProduct(t, svc, 10, 8)

	draft := models.Invoice{
		CustomerName: "Acme",
		Status:       models.StatusDraft,
		Items:        []models.InvoiceItem{{ProductID: 10, Quantity: 2}},
	}
	if err := svc.Save(draft); err != nil {
		t.Fatalf("draft save failed: %v", err)
	}
	all, _ := svc.Invoices.All()
	saved := all[0]

	// draft -> finalized commits the deduction
	saved.Status = models.StatusFinalized
	if err := svc.Save(saved); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if units := productUnits(t, svc, 10); units != 6 {
		t.Fatalf("TotalUnits after finalize = %d, want 6", units)
	}

	// re-saving a finalized invoice must not deduct again
	saved.Notes = "edited after finalization"
	if err := svc.Save(saved); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}
	if units := productUnits(t, svc, 10); units != 6 {
		t.Errorf("TotalUnits after re-save = %d, want still 6", units)
	}
}

func TestStockGoesNegative(t *testing.T) {
	svc := newInvoiceService(t)
	seedProduct(t, svc, 10, 2)

	err := svc.Save(models.Invoice{
		CustomerName: "Acme",
		Status:       models.StatusFinalized,
		Items:        []models.InvoiceItem{{ProductID: 10, Quantity: 5}},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if units := productUnits(t, svc, 10); units != -3 {
		t.Errorf("TotalUnits = %d, want -3 (no floor at zero)", units)
	}
}

func TestDeductionSkipsUnresolvableItems(t *testing.T) {
	svc := newInvoiceService(t)
	seedProduct(t, svc, 10, 8)

	err := svc.Save(models.Invoice{
		CustomerName: "Acme",
		Status:       models.StatusFinalized,
		Items: []models.InvoiceItem{
			{ProductID: 0, Quantity: 4},    // free-text line
			{ProductID: 9999, Quantity: 4}, // deleted product
			{ProductID: 10, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if units := productUnits(t, svc, 10); units != 7 {
		t.Errorf("TotalUnits = %d, want 7", units)
	}
}

func TestUpdateUnknownInvoice(t *testing.T) {
	svc := newInvoiceService(t)
	if err := svc.Save(models.Invoice{CustomerName: "Acme"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	err := svc.Save(models.Invoice{ID: 42, CustomerName: "Ghost"})
	if !errors.Is(err, repositories.ErrInvoiceNotFound) {
		t.Errorf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestDeleteMissingDocument(t *testing.T) {
	svc := newInvoiceService(t)

	err := svc.Delete(1)
	if !errors.Is(err, repositories.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	svc := newInvoiceService(t)
	if err := svc.Save(models.Invoice{CustomerName: "Acme"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	all, _ := svc.Invoices.All()

	if got := svc.GetByID(all[0].ID); got == nil || got.CustomerName != "Acme" {
		t.Errorf("GetByID = %+v, want the saved invoice", got)
	}
	if got := svc.GetByID(42); got != nil {
		t.Errorf("GetByID for unknown id = %+v, want nil", got)
	}
}
