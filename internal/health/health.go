package health

import (
	"os"
	"time"

	"invoice-backend/internal/docstore"
)

type HealthChecker struct {
	store *docstore.Store
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
}

type StoreHealth struct {
	Status       string `json:"status"`
	DataDir      string `json:"data_dir"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(store *docstore.Store) *HealthChecker {
	return &HealthChecker{store: store}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storeHealth := h.checkStore()

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status: status,
		Store:  storeHealth,
	}
}

// checkStore verifies the data directory is usable and every collection
// document that exists still deserializes.
func (h *HealthChecker) checkStore() StoreHealth {
	start := time.Now()
	status := "healthy"

	if _, err := os.Stat(h.store.Dir()); err != nil && !os.IsNotExist(err) {
		status = "unhealthy"
	}

	for _, name := range []string{docstore.Contacts, docstore.Products, docstore.Invoices, docstore.Purchases} {
		if !h.store.Exists(name) {
			continue
		}
		var records []map[string]any
		if err := h.store.Load(name, &records); err != nil {
			status = "unhealthy"
			break
		}
	}

	return StoreHealth{
		Status:       status,
		DataDir:      h.store.Dir(),
		ResponseTime: time.Since(start).Milliseconds(),
	}
}
