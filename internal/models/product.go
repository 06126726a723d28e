package models

// Product is a catalog item. TotalUnits is the current stock level and may
// go negative when finalized invoices oversell it.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TotalUnits  int     `json:"totalUnits"`
	UnitPrice   float64 `json:"unitPrice"`
}

// StockValue returns the product's on-hand value at its current unit price.
func (p Product) StockValue() float64 {
	return float64(p.TotalUnits) * p.UnitPrice
}
