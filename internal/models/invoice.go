package models

import "time"

// Invoice status values. The only defined transition is draft -> finalized,
// which commits the stock deduction exactly once.
const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
)

// InvoiceItem is a line item embedded in an invoice. ProductName,
// Description and UnitPrice are point-in-time copies of the product at the
// moment the line was added; ProductID is a weak reference that may no
// longer resolve.
type InvoiceItem struct {
	ProductID   int64   `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Invoice is a sales invoice. CustomerName is a denormalized snapshot of the
// contact at creation time.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Date          time.Time     `json:"date"`
	DueDate       time.Time     `json:"dueDate"`
	CustomerID    int64         `json:"customerId,omitempty"`
	CustomerName  string        `json:"customerName"`
	Items         []InvoiceItem `json:"items"`
	TaxType       string        `json:"taxType"`
	TaxRate       float64       `json:"taxRate"`
	Subtotal      float64       `json:"subtotal"`
	TaxAmount     float64       `json:"taxAmount"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes"`
	Status        string        `json:"status"`
}

// EffectiveDate returns the invoice date, falling back to the creation
// timestamp encoded in the id for records saved without one.
func (inv Invoice) EffectiveDate() time.Time {
	if !inv.Date.IsZero() {
		return inv.Date
	}
	return time.UnixMilli(inv.ID)
}

// IsFinalized reports whether the invoice has been finalized.
func (inv Invoice) IsFinalized() bool {
	return inv.Status == StatusFinalized
}
