package models

// Balance sheet period granularities.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// BalanceSheetDetails is the drill-down breakdown behind one period entry.
// InvoiceList and POList are capped to the most recent 50 contributors.
type BalanceSheetDetails struct {
	InventoryValue float64         `json:"inventoryValue"`
	Receivables    float64         `json:"receivables"`
	Payables       float64         `json:"payables"`
	InvoiceList    []Invoice       `json:"invoiceList"`
	POList         []PurchaseOrder `json:"poList"`
}

// BalanceSheetEntry is one "as of end of period" snapshot. It is derived on
// every request and never persisted.
type BalanceSheetEntry struct {
	Period      string              `json:"period"`
	Assets      float64             `json:"assets"`
	Liabilities float64             `json:"liabilities"`
	Equity      float64             `json:"equity"`
	Details     BalanceSheetDetails `json:"details"`
}

// MonthlySeries is a calendar-year chart aggregation: one total per month.
type MonthlySeries struct {
	Year   int         `json:"year"`
	Labels [12]string  `json:"labels"`
	Totals [12]float64 `json:"totals"`
	Total  float64     `json:"total"`
}
