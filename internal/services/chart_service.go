package services

import (
	"time"

	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/timeutil"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ChartService produces the per-year monthly revenue and spending series
// behind the dashboard charts. These bucket by calendar month within the
// selected year; unlike the balance sheet they are simple forward sums and
// do not filter invoices by status.
type ChartService struct {
	Invoices       *repositories.InvoiceRepository
	PurchaseOrders *repositories.PurchaseOrderRepository
}

func NewChartService(invoices *repositories.InvoiceRepository, purchases *repositories.PurchaseOrderRepository) *ChartService {
	return &ChartService{Invoices: invoices, PurchaseOrders: purchases}
}

// Sales returns invoice totals bucketed by month for the given year, plus
// the year's grand total.
func (s *ChartService) Sales(year int) (models.MonthlySeries, error) {
	invoices, err := s.Invoices.All()
	if err != nil {
		return models.MonthlySeries{}, err
	}

	series := models.MonthlySeries{Year: year, Labels: monthLabels}
	for _, inv := range invoices {
		date := inv.EffectiveDate().In(timeutil.IST)
		if date.Year() != year {
			continue
		}
		series.Totals[monthIndex(date)] += inv.Total
		series.Total += inv.Total
	}
	return series, nil
}

// Purchases returns purchase-order pre-tax prices bucketed by month for the
// given year, plus the year's grand total.
func (s *ChartService) Purchases(year int) (models.MonthlySeries, error) {
	purchases, err := s.PurchaseOrders.All()
	if err != nil {
		return models.MonthlySeries{}, err
	}

	series := models.MonthlySeries{Year: year, Labels: monthLabels}
	for _, po := range purchases {
		date := po.EffectiveDate().In(timeutil.IST)
		if date.Year() != year {
			continue
		}
		series.Totals[monthIndex(date)] += po.Price
		series.Total += po.Price
	}
	return series, nil
}

func monthIndex(t time.Time) int {
	return int(t.Month()) - 1
}
