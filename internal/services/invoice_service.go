package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"invoice-backend/internal/metrics"
	"invoice-backend/internal/models"
	"invoice-backend/internal/query"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/timeutil"
)

// InvoiceService owns the invoice lifecycle: numbering, create/update/
// delete, and the stock deduction committed when an invoice first becomes
// finalized.
type InvoiceService struct {
	Invoices *repositories.InvoiceRepository
	Products *repositories.ProductRepository
	Now      func() time.Time
}

func NewInvoiceService(invoices *repositories.InvoiceRepository, products *repositories.ProductRepository) *InvoiceService {
	return &InvoiceService{
		Invoices: invoices,
		Products: products,
		Now:      timeutil.Now,
	}
}

// List returns invoices matching the filter; lenient on failure.
func (s *InvoiceService) List(opts query.Options) query.Result[models.Invoice] {
	return s.Invoices.List(opts)
}

// GetByID returns the invoice or nil when absent.
func (s *InvoiceService) GetByID(id int64) *models.Invoice {
	return s.Invoices.GetByID(id)
}

// Save creates the invoice when it carries no id, otherwise replaces the
// matching record wholesale. When the save moves the invoice into the
// finalized status for the first time (create-as-finalized, or
// draft -> finalized on update), each line item's product stock is
// decremented by the item quantity. Re-saving an already finalized invoice
// never deducts again, and no transition ever restores stock.
func (s *InvoiceService) Save(invoice models.Invoice) error {
	if invoice.CustomerName == "" {
		return repositories.ErrCustomerRequired
	}

	// The products write happens inside the invoices cycle so a deduction
	// failure aborts the invoice write as well (lock order: invoices, then
	// products).
	return s.Invoices.Update(func(invoices []models.Invoice) ([]models.Invoice, error) {
		isNewFinalization := false

		if invoice.ID != 0 {
			idx := -1
			for i := range invoices {
				if invoices[i].ID == invoice.ID {
					idx = i
					break
				}
			}
			if idx == -1 {
				return nil, repositories.ErrInvoiceNotFound
			}
			isNewFinalization = invoice.IsFinalized() && !invoices[idx].IsFinalized()
			invoices[idx] = invoice
		} else {
			now := s.Now()
			invoice.ID = now.UnixMilli()
			invoice.InvoiceNumber = s.nextInvoiceNumber(invoices, now)
			isNewFinalization = invoice.IsFinalized()
			invoices = append(invoices, invoice)
		}

		if isNewFinalization && len(invoice.Items) > 0 {
			if err := s.deductStock(invoice); err != nil {
				return nil, err
			}
			metrics.InvoicesFinalized.Inc()
		}
		return invoices, nil
	})
}

// Delete removes the invoice by id; a missing invoices document is a "File
// not found" failure, not an empty success.
func (s *InvoiceService) Delete(id int64) error {
	return s.Invoices.Delete(id)
}

// nextInvoiceNumber builds INV-YYYYMMDD-NN, where NN is one past the count
// of invoices already numbered for today. The sequence is zero-padded to
// two digits and simply widens past 99 invoices a day, exactly as the
// numbers have always been issued.
func (s *InvoiceService) nextInvoiceNumber(invoices []models.Invoice, now time.Time) string {
	dateStr := timeutil.DateStamp(now)
	prefix := fmt.Sprintf("INV-%s", dateStr)

	count := 0
	for _, inv := range invoices {
		if inv.InvoiceNumber != "" && strings.Contains(inv.InvoiceNumber, prefix) {
			count++
		}
	}
	return fmt.Sprintf("INV-%s-%02d", dateStr, count+1)
}

// deductStock decrements totalUnits for every line item whose productId
// still resolves. There is no floor at zero: insufficient stock goes
// negative. The products document is rewritten only when at least one
// product was touched.
func (s *InvoiceService) deductStock(invoice models.Invoice) error {
	return s.Products.Update(func(products []models.Product) (bool, error) {
		touched := false
		for _, item := range invoice.Items {
			if item.ProductID == 0 {
				continue
			}
			for i := range products {
				if products[i].ID == item.ProductID {
					products[i].TotalUnits -= item.Quantity
					metrics.StockUnitsDeducted.Add(float64(item.Quantity))
					touched = true
					break
				}
			}
		}
		if touched {
			log.Printf("[Invoices] %s finalized, stock deducted for %d item(s)", invoice.InvoiceNumber, len(invoice.Items))
		}
		return touched, nil
	})
}
