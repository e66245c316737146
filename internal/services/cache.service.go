package services

import (
	"sync"
	"time"

	"healthsnap/internal/models"
)

// ReportCache memoizes the most recent report with a TTL so the dashboard
// page, the JSON endpoint and the websocket ticker don't each rerun the
// probe set within the same second.
type ReportCache struct {
	mu      sync.RWMutex
	report  *models.Report
	builtAt time.Time
	ttl     time.Duration
}

var reportCache = &ReportCache{
	ttl: 1 * time.Second,
}

// SetCacheTTL sets the report cache time-to-live.
func SetCacheTTL(duration time.Duration) {
	reportCache.mu.Lock()
	defer reportCache.mu.Unlock()
	reportCache.ttl = duration
}

// isValid reports whether the cached report is still fresh.
func (rc *ReportCache) isValid() bool {
	return rc.report != nil && time.Since(rc.builtAt) < rc.ttl
}

// GetCachedReport returns the cached report if valid, otherwise builds a
// fresh one. The probes run outside the lock so readers are never blocked
// behind a slow instrumentation call.
func GetCachedReport() models.Report {
	reportCache.mu.RLock()
	if reportCache.isValid() {
		defer reportCache.mu.RUnlock()
		return *reportCache.report
	}
	reportCache.mu.RUnlock()

	report := BuildReport()

	reportCache.mu.Lock()
	reportCache.report = &report
	reportCache.builtAt = time.Now()
	reportCache.mu.Unlock()

	return report
}

// ClearCache drops the cached report.
func ClearCache() {
	reportCache.mu.Lock()
	defer reportCache.mu.Unlock()
	reportCache.report = nil
}
