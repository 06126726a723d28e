package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"invoice-backend/internal/models"
	"invoice-backend/internal/services"
	"invoice-backend/internal/timeutil"
	"invoice-backend/pkg/utils"
)

type BalanceSheetHandler struct {
	Service *services.BalanceSheetService
	Charts  *services.ChartService
	Reports *services.ReportService
}

func NewBalanceSheetHandler(service *services.BalanceSheetService, charts *services.ChartService, reports *services.ReportService) *BalanceSheetHandler {
	return &BalanceSheetHandler{Service: service, Charts: charts, Reports: reports}
}

// GetBalanceSheet computes the full period series. There is no partial
// result: any collection load failure fails the request.
func (h *BalanceSheetHandler) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.Compute(periodParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.JSON(w, http.StatusOK, entries)
}

// ExportBalanceSheet streams the period series as an Excel workbook.
func (h *BalanceSheetHandler) ExportBalanceSheet(w http.ResponseWriter, r *http.Request) {
	period := periodParam(r)
	data, err := h.Reports.BalanceSheetXLSX(period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("Balance_Sheet_%s_%s.xlsx", period, timeutil.Now().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}

// SalesChart returns the monthly revenue series for a year.
func (h *BalanceSheetHandler) SalesChart(w http.ResponseWriter, r *http.Request) {
	series, err := h.Charts.Sales(yearParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.JSON(w, http.StatusOK, series)
}

// PurchasesChart returns the monthly spending series for a year.
func (h *BalanceSheetHandler) PurchasesChart(w http.ResponseWriter, r *http.Request) {
	series, err := h.Charts.Purchases(yearParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.JSON(w, http.StatusOK, series)
}

func periodParam(r *http.Request) string {
	switch p := r.URL.Query().Get("period"); p {
	case models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly, models.PeriodYearly:
		return p
	default:
		return models.PeriodMonthly
	}
}

func yearParam(r *http.Request) int {
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		return year
	}
	return timeutil.Now().Year()
}
