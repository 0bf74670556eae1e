package metrics

import "sync/atomic"

// RefreshMetrics is an in-process snapshot of refresh activity, cheap
// enough to read from a health endpoint without touching the registry.
type RefreshMetrics struct {
	CyclesRun           atomic.Int64
	CyclesFailed        atomic.Int64
	LastProductCount    atomic.Int64
	LastSiteCount       atomic.Int64
	LastJunctionCount   atomic.Int64
	LastJunctionSkipped atomic.Int64
}
