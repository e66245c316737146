package models

// CPUStatus holds processor identity and current load. LoadPercent is nil
// when every acquisition tier failed; PerCore is empty when only the
// aggregate legacy value was available.
type CPUStatus struct {
	ProcessorName string    `json:"ProcessorName"`
	CoreCount     int       `json:"CoreCount"`
	LoadPercent   *float64  `json:"LoadPercent"`
	PerCore       []float64 `json:"PerCore"`
}
