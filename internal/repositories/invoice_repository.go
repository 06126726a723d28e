package repositories

import (
	"errors"
	"log"

	"invoice-backend/internal/docstore"
	"invoice-backend/internal/models"
	"invoice-backend/internal/query"
)

// InvoiceRepository is pure collection plumbing; numbering, finalization
// and stock deduction live in the invoice service.
type InvoiceRepository struct {
	Store *docstore.Store
}

func NewInvoiceRepository(store *docstore.Store) *InvoiceRepository {
	return &InvoiceRepository{Store: store}
}

// List returns invoices matching the global filter across invoiceNumber and
// customerName. Lenient on failure.
func (r *InvoiceRepository) List(opts query.Options) query.Result[models.Invoice] {
	var invoices []models.Invoice
	if err := r.Store.Load(docstore.Invoices, &invoices); err != nil {
		if !errors.Is(err, docstore.ErrCollectionMissing) {
			log.Printf("[Invoices] load failed: %v", err)
		}
		return query.Result[models.Invoice]{Data: []models.Invoice{}}
	}
	return query.Apply(invoices, opts, func(inv models.Invoice) []string {
		return []string{inv.InvoiceNumber, inv.CustomerName}
	})
}

// GetByID scans for the invoice; nil when absent or unreadable, never an
// error.
func (r *InvoiceRepository) GetByID(id int64) *models.Invoice {
	var invoices []models.Invoice
	if err := r.Store.Load(docstore.Invoices, &invoices); err != nil {
		if !errors.Is(err, docstore.ErrCollectionMissing) {
			log.Printf("[Invoices] load failed: %v", err)
		}
		return nil
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i]
		}
	}
	return nil
}

// All returns the full invoice history. A missing document is an empty
// collection; a corrupt one is an error.
func (r *InvoiceRepository) All() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.Store.Load(docstore.Invoices, &invoices); err != nil {
		if errors.Is(err, docstore.ErrCollectionMissing) {
			return []models.Invoice{}, nil
		}
		return nil, err
	}
	return invoices, nil
}

// Update runs fn against the full collection under the collection lock and
// persists whatever fn returns, unconditionally (overwrite semantics).
func (r *InvoiceRepository) Update(fn func(invoices []models.Invoice) ([]models.Invoice, error)) error {
	return r.Store.WithLock(docstore.Invoices, func() error {
		var invoices []models.Invoice
		if err := r.Store.Load(docstore.Invoices, &invoices); err != nil && !errors.Is(err, docstore.ErrCollectionMissing) {
			return err
		}

		updated, err := fn(invoices)
		if err != nil {
			return err
		}
		return r.Store.Save(docstore.Invoices, updated)
	})
}

// Delete removes the invoice by id. A missing backing document is an error;
// a present document without the id is not.
func (r *InvoiceRepository) Delete(id int64) error {
	return r.Store.WithLock(docstore.Invoices, func() error {
		var invoices []models.Invoice
		if err := r.Store.Load(docstore.Invoices, &invoices); err != nil {
			if errors.Is(err, docstore.ErrCollectionMissing) {
				return ErrFileNotFound
			}
			return err
		}

		kept := invoices[:0]
		for _, inv := range invoices {
			if inv.ID != id {
				kept = append(kept, inv)
			}
		}
		return r.Store.Save(docstore.Invoices, kept)
	})
}
