package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"invoice-backend/internal/handlers"
)

func NewRouter(
	contactHandler *handlers.ContactHandler,
	productHandler *handlers.ProductHandler,
	invoiceHandler *handlers.InvoiceHandler,
	purchaseOrderHandler *handlers.PurchaseOrderHandler,
	companyHandler *handlers.CompanyHandler,
	balanceSheetHandler *handlers.BalanceSheetHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Contacts
	api.HandleFunc("/contacts", contactHandler.ListContacts).Methods("GET")
	api.HandleFunc("/contacts", contactHandler.SaveContact).Methods("POST")
	api.HandleFunc("/contacts/{id}", contactHandler.DeleteContact).Methods("DELETE")

	// Inventory products
	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products", productHandler.SaveProduct).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")

	// Invoices
	api.HandleFunc("/invoices", invoiceHandler.ListInvoices).Methods("GET")
	api.HandleFunc("/invoices", invoiceHandler.SaveInvoice).Methods("POST")
	api.HandleFunc("/invoices/{id}", invoiceHandler.GetInvoice).Methods("GET")
	api.HandleFunc("/invoices/{id}", invoiceHandler.DeleteInvoice).Methods("DELETE")
	api.HandleFunc("/invoices/{id}/pdf", invoiceHandler.InvoicePDF).Methods("GET")

	// Purchase orders
	api.HandleFunc("/purchase-orders", purchaseOrderHandler.ListPurchaseOrders).Methods("GET")
	api.HandleFunc("/purchase-orders", purchaseOrderHandler.SavePurchaseOrder).Methods("POST")
	api.HandleFunc("/purchase-orders/{id}", purchaseOrderHandler.DeletePurchaseOrder).Methods("DELETE")

	// Company profile (singleton)
	api.HandleFunc("/company-info", companyHandler.GetCompanyInfo).Methods("GET")
	api.HandleFunc("/company-info", companyHandler.SaveCompanyInfo).Methods("POST")

	// Balance sheet and charts
	api.HandleFunc("/balance-sheet", balanceSheetHandler.GetBalanceSheet).Methods("GET")
	api.HandleFunc("/balance-sheet/export", balanceSheetHandler.ExportBalanceSheet).Methods("GET")
	api.HandleFunc("/charts/sales", balanceSheetHandler.SalesChart).Methods("GET")
	api.HandleFunc("/charts/purchases", balanceSheetHandler.PurchasesChart).Methods("GET")

	// Health check endpoint
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
