package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

const perfStatsInterval = time.Second * 30

// InstrumentPerfStats periodically records process health gauges until
// the context ends. collection is sampling-based: each tick reports cpu
// usage since the previous tick rather than blocking on a measurement
// window.
func InstrumentPerfStats(ctx context.Context) {
	meter := otel.Meter("process.perf")
	cpuGauge, _ := meter.Float64Gauge("cpu_usage_percent")
	heapGauge, _ := meter.Int64Gauge("heap_alloc_mb")
	liveObjectsGauge, _ := meter.Int64Gauge("heap_live_objects")
	goroutineGauge, _ := meter.Int64Gauge("goroutine_count")
	gcGauge, _ := meter.Int64Gauge("gc_cycles")

	// prime the sampling window so the first tick has a baseline
	cpu.Percent(0, false)

	go func() {
		var memStats runtime.MemStats
		ticker := time.NewTicker(perfStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cpuUsage, err := cpu.Percent(0, false)
				if err == nil && len(cpuUsage) > 0 {
					cpuGauge.Record(ctx, cpuUsage[0])
				} else if err != nil {
					slog.WarnContext(ctx, "failed to read cpu usage", "err", err)
				}

				runtime.ReadMemStats(&memStats)
				heapGauge.Record(ctx, int64(memStats.HeapAlloc/1_000_000))
				liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
				goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
				gcGauge.Record(ctx, int64(memStats.NumGC))
			case <-ctx.Done():
				return
			}
		}
	}()
}
