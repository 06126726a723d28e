package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"invoice-backend/internal/docstore"
)

// MonitoringServer serves an ops dashboard on a separate port: process and
// host stats plus per-collection document sizes.
type MonitoringServer struct {
	store     *docstore.Store
	port      int
	startedAt time.Time
}

type DashboardStats struct {
	Status        string            `json:"status"`
	CPUPercent    float64           `json:"cpu_percent"`
	MemoryPercent float64           `json:"memory_percent"`
	MemoryUsed    string            `json:"memory_used"`
	MemoryTotal   string            `json:"memory_total"`
	DiskPercent   float64           `json:"disk_percent"`
	DiskUsed      string            `json:"disk_used"`
	DiskTotal     string            `json:"disk_total"`
	Uptime        string            `json:"uptime"`
	Collections   []CollectionStats `json:"collections"`
}

type CollectionStats struct {
	Name      string `json:"name"`
	Records   int    `json:"records"`
	SizeBytes int64  `json:"size_bytes"`
}

func NewMonitoringServer(store *docstore.Store, port int) *MonitoringServer {
	return &MonitoringServer{
		store:     store,
		port:      port,
		startedAt: time.Now(),
	}
}

func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()
	r.HandleFunc("/", ms.statsHandler).Methods("GET")
	r.HandleFunc("/api/stats", ms.statsHandler).Methods("GET")

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("[Monitoring] Dashboard running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Printf("[Monitoring] Server stopped: %v", err)
	}
}

func (ms *MonitoringServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats := DashboardStats{
		Status: "ok",
		Uptime: time.Since(ms.startedAt).Round(time.Second).String(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsed = formatBytes(vm.Used)
		stats.MemoryTotal = formatBytes(vm.Total)
	}
	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
		stats.DiskUsed = formatBytes(du.Used)
		stats.DiskTotal = formatBytes(du.Total)
	}

	for _, name := range []string{docstore.Contacts, docstore.Products, docstore.Invoices, docstore.Purchases} {
		cs := CollectionStats{Name: name}
		if info, err := os.Stat(ms.store.Path(name)); err == nil {
			cs.SizeBytes = info.Size()
		}
		var records []json.RawMessage
		if err := ms.store.Load(name, &records); err == nil {
			cs.Records = len(records)
		}
		stats.Collections = append(stats.Collections, cs)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
