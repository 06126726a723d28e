package models

import "time"

// PurchaseOrderItem is a line item on a purchase order, used only by the
// inventory-value reconstruction. Older records may not carry items at all.
type PurchaseOrderItem struct {
	ProductID int64 `json:"productId,omitempty"`
	Quantity  int   `json:"quantity"`
}

// PurchaseOrder records goods bought from a supplier. A missing or
// non-"paid" status means the amount is still owed (an outstanding
// liability).
type PurchaseOrder struct {
	ID            int64               `json:"id"`
	PurchaseDate  time.Time           `json:"purchaseDate"`
	SellerName    string              `json:"sellerName"`
	SellerGst     string              `json:"sellerGst"`
	Price         float64             `json:"price"`
	TaxPercentage float64             `json:"taxPercentage"`
	Notes         string              `json:"notes"`
	Status        string              `json:"status,omitempty"`
	Total         float64             `json:"total,omitempty"`
	Items         []PurchaseOrderItem `json:"items,omitempty"`
}

// EffectiveDate returns the purchase date, falling back to the creation
// timestamp encoded in the id for records saved without one.
func (po PurchaseOrder) EffectiveDate() time.Time {
	if !po.PurchaseDate.IsZero() {
		return po.PurchaseDate
	}
	return time.UnixMilli(po.ID)
}

// IsPaid reports whether the order has been settled. Anything other than an
// explicit "paid" status counts as outstanding.
func (po PurchaseOrder) IsPaid() bool {
	return po.Status == "paid"
}

// GrandTotal returns the stored total when present, otherwise the price
// grossed up by the tax percentage.
func (po PurchaseOrder) GrandTotal() float64 {
	if po.Total != 0 {
		return po.Total
	}
	return po.Price * (1 + po.TaxPercentage/100)
}
