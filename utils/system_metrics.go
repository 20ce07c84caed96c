package utils

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	systemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current host CPU usage percentage",
		},
	)

	systemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_used_percent",
			Help: "Current host memory usage percentage",
		},
	)
)

// StartSystemMetrics samples host CPU and memory into the metrics
// registry at the given interval.
func StartSystemMetrics(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		for range ticker.C {
			if percentage, err := cpu.Percent(0, false); err != nil {
				log.Printf("Error getting CPU usage: %v", err)
			} else if len(percentage) > 0 {
				systemCPUUsage.Set(percentage[0])
			}

			if vm, err := mem.VirtualMemory(); err != nil {
				log.Printf("Error getting memory usage: %v", err)
			} else {
				systemMemoryUsage.Set(vm.UsedPercent)
			}
		}
	}()
}
