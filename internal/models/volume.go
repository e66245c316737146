package models

// VolumeStatus holds usage for one fixed volume, keyed by mountpoint in the
// volumes section. UsedPct is a pointer so a record that carries no usable
// percentage stays distinguishable from a genuinely empty volume; FreePct,
// Severity and Status are derived during aggregation.
type VolumeStatus struct {
	TotalGB  float64  `json:"TotalGB"`
	UsedGB   float64  `json:"UsedGB"`
	FreeGB   float64  `json:"FreeGB"`
	UsedPct  *float64 `json:"UsedPct,omitempty"`
	FreePct  *float64 `json:"FreePct,omitempty"`
	Severity Severity `json:"Severity"`
	Status   string   `json:"Status,omitempty"`
}
