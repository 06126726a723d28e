package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"invoice-backend/internal/models"
	"invoice-backend/internal/services"
	"invoice-backend/pkg/utils"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
	Reports *services.ReportService
}

func NewInvoiceHandler(service *services.InvoiceService, reports *services.ReportService) *InvoiceHandler {
	return &InvoiceHandler{Service: service, Reports: reports}
}

// ListInvoices returns {data, totalRecords} for the filter window.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List(listOptions(r)))
}

// GetInvoice returns the invoice, or JSON null when absent; lookup misses
// are not errors.
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		utils.JSON(w, http.StatusOK, nil)
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.GetByID(id))
}

// SaveInvoice creates or updates an invoice, committing the stock deduction
// when the save finalizes it for the first time.
func (h *InvoiceHandler) SaveInvoice(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		utils.Result(w, errors.New("Invalid request body"))
		return
	}
	utils.Result(w, h.Service.Save(invoice))
}

// DeleteInvoice removes an invoice by id.
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		utils.Result(w, errors.New("Invalid invoice ID"))
		return
	}
	utils.Result(w, h.Service.Delete(id))
}

// InvoicePDF streams the invoice print layout.
func (h *InvoiceHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid invoice ID", http.StatusBadRequest)
		return
	}

	data, err := h.Reports.InvoicePDF(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%d.pdf", id))
	w.Write(data)
}
