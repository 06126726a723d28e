package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"invoice-backend/internal/config"
	"invoice-backend/internal/docstore"
	"invoice-backend/internal/handlers"
	"invoice-backend/internal/health"
	h "invoice-backend/internal/http"
	"invoice-backend/internal/middleware"
	"invoice-backend/internal/monitoring"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/services"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	dataDir := flag.String("data-dir", "", "Document store directory (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dataDir != "" {
		cfg.Store.Dir = *dataDir
	}

	// Open the document store
	store := docstore.New(cfg.Store.Dir)
	log.Printf("[Store] Using data directory: %s", store.Dir())

	// Initialize health checker
	healthChecker := health.NewHealthChecker(store)

	// Start monitoring dashboard server in background
	go monitoring.NewMonitoringServer(store, cfg.Monitoring.Port).Start()

	// Initialize repositories
	contactRepo := repositories.NewContactRepository(store)
	productRepo := repositories.NewProductRepository(store)
	invoiceRepo := repositories.NewInvoiceRepository(store)
	purchaseOrderRepo := repositories.NewPurchaseOrderRepository(store)
	companyRepo := repositories.NewCompanyRepository(store)

	// Initialize services
	invoiceService := services.NewInvoiceService(invoiceRepo, productRepo)
	balanceSheetService := services.NewBalanceSheetService(invoiceRepo, purchaseOrderRepo, productRepo)
	chartService := services.NewChartService(invoiceRepo, purchaseOrderRepo)
	reportService := services.NewReportService(invoiceRepo, companyRepo, balanceSheetService)

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(contactRepo)
	productHandler := handlers.NewProductHandler(productRepo)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, reportService)
	purchaseOrderHandler := handlers.NewPurchaseOrderHandler(purchaseOrderRepo)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	balanceSheetHandler := handlers.NewBalanceSheetHandler(balanceSheetService, chartService, reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build router and middleware chain
	corsMiddleware := middleware.NewCORS(cfg)
	router := h.NewRouter(contactHandler, productHandler, invoiceHandler, purchaseOrderHandler, companyHandler, balanceSheetHandler, healthHandler)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(middleware.RequestLogging(corsMiddleware(router))))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
