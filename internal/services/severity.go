package services

import (
	"math"

	"healthsnap/internal/models"
)

// Fixed classification thresholds per metric domain.
const (
	MemoryWarnThreshold = 80.0
	MemoryCritThreshold = 90.0
	VolumeWarnThreshold = 85.0
	VolumeCritThreshold = 90.0
)

// Classify maps a usage percentage onto the severity scale. A value sitting
// exactly on a threshold lands in the higher tier.
func Classify(percent, warn, crit float64) models.Severity {
	switch {
	case percent >= crit:
		return models.SeverityError
	case percent >= warn:
		return models.SeverityWarn
	default:
		return models.SeverityInfo
	}
}

// StatusLabel returns the display label for a severity.
func StatusLabel(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return "Critical"
	case models.SeverityWarn:
		return "Warning"
	default:
		return "Normal"
	}
}

// round2 rounds to two decimal places, the precision used throughout the
// report for sizes and percentages.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
