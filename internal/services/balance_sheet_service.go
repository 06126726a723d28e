package services

import (
	"fmt"
	"strconv"
	"time"

	"invoice-backend/internal/metrics"
	"invoice-backend/internal/models"
	"invoice-backend/internal/query"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/timeutil"
)

// detailListCap bounds the per-period drill-down lists to the most recent
// contributors.
const detailListCap = 50

// BalanceSheetService derives a historical assets/liabilities/equity time
// series from the current product snapshot plus the full invoice and
// purchase-order histories. There is no event log: inventory value at a
// past cutoff is reconstructed by walking BACKWARD from today's stock,
// undoing every sale and restock dated after the cutoff. All historical
// points are valued at today's unit prices, a modeling approximation rather than
// a bookkeeping ledger.
type BalanceSheetService struct {
	Invoices  *repositories.InvoiceRepository
	Purchases *repositories.PurchaseOrderRepository
	Products  *repositories.ProductRepository
	Now       func() time.Time
}

func NewBalanceSheetService(
	invoices *repositories.InvoiceRepository,
	purchases *repositories.PurchaseOrderRepository,
	products *repositories.ProductRepository,
) *BalanceSheetService {
	return &BalanceSheetService{
		Invoices:  invoices,
		Purchases: purchases,
		Products:  products,
		Now:       timeutil.Now,
	}
}

// Compute returns one entry per period, oldest first; the last entry is the
// current position and carries the headline figures. Any failure loading an
// input collection aborts the whole computation.
func (s *BalanceSheetService) Compute(period string) ([]models.BalanceSheetEntry, error) {
	start := time.Now()
	defer func() {
		metrics.BalanceSheetComputeDuration.Observe(time.Since(start).Seconds())
	}()

	invoices, err := s.Invoices.All()
	if err != nil {
		return nil, fmt.Errorf("load invoices: %w", err)
	}
	purchases, err := s.Purchases.All()
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	products, err := s.Products.All()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	periods := periodCount(period)
	now := s.Now()
	endOfToday := timeutil.EndOfDay(now)

	currentStockValue := 0.0
	for _, p := range products {
		currentStockValue += p.StockValue()
	}

	priceByID := make(map[int64]float64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.UnitPrice
	}

	entries := make([]models.BalanceSheetEntry, 0, periods)
	for i := periods - 1; i >= 0; i-- {
		cutoff, label := periodCutoff(period, now, endOfToday, i)

		// Receivables: finalized invoices dated up to the cutoff.
		var periodInvoices []models.Invoice
		receivables := 0.0
		for _, inv := range invoices {
			if inv.IsFinalized() && !inv.EffectiveDate().After(cutoff) {
				periodInvoices = append(periodInvoices, inv)
				receivables += inv.Total
			}
		}

		// Payables: outstanding purchase orders dated up to the cutoff.
		var periodPOs []models.PurchaseOrder
		payables := 0.0
		for _, po := range purchases {
			if !po.IsPaid() && !po.EffectiveDate().After(cutoff) {
				periodPOs = append(periodPOs, po)
				payables += po.GrandTotal()
			}
		}

		// Inventory value at the cutoff, reconstructed backward from the
		// present snapshot at today's prices.
		inventoryValue := currentStockValue
		for _, inv := range invoices {
			if inv.IsFinalized() && inv.EffectiveDate().After(cutoff) {
				for _, item := range inv.Items {
					if price, ok := priceByID[item.ProductID]; ok {
						inventoryValue += float64(item.Quantity) * price
					}
				}
			}
		}
		// Purchase orders count regardless of payment status: receipt of
		// goods, not payment, is what moved stock.
		for _, po := range purchases {
			if po.EffectiveDate().After(cutoff) {
				for _, item := range po.Items {
					if price, ok := priceByID[item.ProductID]; ok {
						inventoryValue -= float64(item.Quantity) * price
					}
				}
			}
		}

		assets := inventoryValue + receivables
		entries = append(entries, models.BalanceSheetEntry{
			Period:      label,
			Assets:      assets,
			Liabilities: payables,
			Equity:      assets - payables,
			Details: models.BalanceSheetDetails{
				InventoryValue: inventoryValue,
				Receivables:    receivables,
				Payables:       payables,
				InvoiceList:    query.Last(periodInvoices, detailListCap),
				POList:         query.Last(periodPOs, detailListCap),
			},
		})
	}

	return entries, nil
}

// periodCount: 14 daily, 12 weekly, 12 monthly, 5 yearly snapshots.
func periodCount(period string) int {
	switch period {
	case models.PeriodDaily:
		return 14
	case models.PeriodYearly:
		return 5
	default:
		return 12
	}
}

// periodCutoff returns the "as of end of period" timestamp and display
// label for the snapshot i periods before now.
func periodCutoff(period string, now, endOfToday time.Time, i int) (time.Time, string) {
	switch period {
	case models.PeriodDaily:
		cutoff := timeutil.EndOfDay(endOfToday.AddDate(0, 0, -i))
		return cutoff, cutoff.Format(timeutil.MonthDay)
	case models.PeriodWeekly:
		cutoff := timeutil.EndOfDay(endOfToday.AddDate(0, 0, -i*7))
		return cutoff, "Ends " + cutoff.Format(timeutil.MonthDay)
	case models.PeriodYearly:
		year := now.In(timeutil.IST).Year() - i
		return timeutil.EndOfYear(year), strconv.Itoa(year)
	default: // monthly
		ist := now.In(timeutil.IST)
		firstOfCurrent := time.Date(ist.Year(), ist.Month(), 1, 0, 0, 0, 0, timeutil.IST)
		cutoff := timeutil.EndOfMonth(firstOfCurrent.AddDate(0, -i, 0))
		return cutoff, cutoff.Format(timeutil.MonthYear)
	}
}
