package models

// MemoryStatus holds physical memory usage in GiB. FreePct and Status are
// derived during aggregation, not by the probe.
type MemoryStatus struct {
	TotalGB float64 `json:"TotalGB"`
	UsedGB  float64 `json:"UsedGB"`
	FreeGB  float64 `json:"FreeGB"`
	UsedPct float64 `json:"UsedPct"`
	FreePct float64 `json:"FreePct"`
	Status  string  `json:"Status,omitempty"`
}
