package services

import (
	"fmt"
	"time"

	"healthsnap/internal/models"
)

// probeSet groups the probe functions feeding one report. Tests substitute
// members to exercise aggregation without touching the host.
type probeSet struct {
	System        func() (*models.SystemInfo, error)
	CPU           func() (*models.CPUStatus, error)
	Memory        func() (*models.MemoryStatus, error)
	Volumes       func() (map[string]models.VolumeStatus, error)
	PhysicalDisks func() (interface{}, error)
}

func defaultProbes() probeSet {
	return probeSet{
		System:        GetSystemInfo,
		CPU:           GetCPUStatus,
		Memory:        GetMemoryStatus,
		Volumes:       GetVolumeStatuses,
		PhysicalDisks: GetPhysicalDisks,
	}
}

// BuildReport runs the full probe set and assembles the report. Probes run
// sequentially; a failing probe degrades its own section and nothing else.
func BuildReport() models.Report {
	return buildReport(defaultProbes())
}

// buildReport assembles the five sections in their fixed order. The order
// is part of the report contract: consumers locate sections positionally or
// by title prefix.
func buildReport(probes probeSet) models.Report {
	return models.Report{
		GeneratedAt: time.Now(),
		Sections: []models.Section{
			systemSection(probes.System),
			cpuSection(probes.CPU),
			memorySection(probes.Memory),
			volumesSection(probes.Volumes),
			physicalDiskSection(probes.PhysicalDisks),
		},
	}
}

// guard invokes a probe and converts any failure, panic included, into a
// structured error payload. No probe fault ever crosses this boundary.
func guard(id string, probe func() (interface{}, error)) (result interface{}, failed *models.ProbeError) {
	defer func() {
		if r := recover(); r != nil {
			failed = &models.ProbeError{
				Error:    true,
				Message:  fmt.Sprint(r),
				Category: "ProbePanic",
				Id:       id,
			}
		}
	}()

	value, err := probe()
	if err != nil {
		return nil, &models.ProbeError{
			Error:    true,
			Message:  err.Error(),
			Category: "ProbeFault",
			Id:       id,
		}
	}
	return value, nil
}

func systemSection(probe func() (*models.SystemInfo, error)) models.Section {
	raw, failed := guard("healthsnap.probe.system", func() (interface{}, error) { return probe() })
	section := models.Section{Title: "System", Domain: models.DomainSystem, Severity: models.SeverityInfo}
	if failed != nil {
		section.Data = failed
		section.Severity = models.SeverityWarn
		return section
	}
	section.Data = raw
	return section
}

func cpuSection(probe func() (*models.CPUStatus, error)) models.Section {
	raw, failed := guard("healthsnap.probe.cpu", func() (interface{}, error) { return probe() })
	section := models.Section{Title: "CPU", Domain: models.DomainCPU, Severity: models.SeverityInfo}
	if failed != nil {
		section.Data = failed
		section.Severity = models.SeverityWarn
		return section
	}
	section.Data = raw
	return section
}

func memorySection(probe func() (*models.MemoryStatus, error)) models.Section {
	raw, failed := guard("healthsnap.probe.memory", func() (interface{}, error) { return probe() })
	if failed != nil {
		// Missing data is a caution signal, never a known-good state.
		return models.Section{
			Title:    memoryTitle(StatusLabel(models.SeverityWarn), nil),
			Domain:   models.DomainMemory,
			Data:     failed,
			Severity: models.SeverityWarn,
		}
	}

	status, ok := raw.(*models.MemoryStatus)
	if !ok || status == nil {
		return memorySectionEmpty()
	}

	severity := Classify(status.UsedPct, MemoryWarnThreshold, MemoryCritThreshold)
	status.FreePct = round2(100 - status.UsedPct)
	status.Status = StatusLabel(severity)

	return models.Section{
		Title:    memoryTitle(status.Status, &status.UsedPct),
		Domain:   models.DomainMemory,
		Data:     status,
		Severity: severity,
	}
}

func memorySectionEmpty() models.Section {
	return models.Section{
		Title:  memoryTitle(StatusLabel(models.SeverityWarn), nil),
		Domain: models.DomainMemory,
		Data: &models.ProbeError{
			Error:    true,
			Message:  "memory probe returned no data",
			Category: "ProbeFault",
			Id:       "healthsnap.probe.memory",
		},
		Severity: models.SeverityWarn,
	}
}

func volumesSection(probe func() (map[string]models.VolumeStatus, error)) models.Section {
	raw, failed := guard("healthsnap.probe.volumes", func() (interface{}, error) { return probe() })
	if failed != nil {
		return models.Section{
			Title:    volumesTitle(StatusLabel(models.SeverityWarn), nil, nil),
			Domain:   models.DomainVolumes,
			Data:     failed,
			Severity: models.SeverityWarn,
		}
	}

	volumes, _ := raw.(map[string]models.VolumeStatus)
	worst := models.SeverityInfo
	var maxUsed, minFree *float64

	for id, volume := range volumes {
		if volume.UsedPct == nil {
			// Malformed record: no percentage to classify. Floors the
			// aggregate at warn but never downgrades an observed error.
			volume.Severity = models.SeverityWarn
			volume.Status = StatusLabel(models.SeverityWarn)
			volumes[id] = volume
			if worst < models.SeverityWarn {
				worst = models.SeverityWarn
			}
			continue
		}

		severity := Classify(*volume.UsedPct, VolumeWarnThreshold, VolumeCritThreshold)
		freePct := round2(100 - *volume.UsedPct)
		volume.FreePct = &freePct
		volume.Severity = severity
		volume.Status = StatusLabel(severity)
		volumes[id] = volume

		if severity > worst {
			worst = severity
		}
		if maxUsed == nil || *volume.UsedPct > *maxUsed {
			used := *volume.UsedPct
			maxUsed = &used
		}
		if minFree == nil || freePct < *minFree {
			free := freePct
			minFree = &free
		}
	}

	return models.Section{
		Title:    volumesTitle(StatusLabel(worst), maxUsed, minFree),
		Domain:   models.DomainVolumes,
		Data:     volumes,
		Severity: worst,
	}
}

func physicalDiskSection(probe func() (interface{}, error)) models.Section {
	raw, failed := guard("healthsnap.probe.physicaldisks", func() (interface{}, error) { return probe() })
	section := models.Section{Title: "Physical Disks", Domain: models.DomainPhysicalDisks, Severity: models.SeverityInfo}
	if failed != nil {
		section.Data = failed
		section.Severity = models.SeverityWarn
		return section
	}
	// Capability markers (smartctl missing, zero devices) are not errors
	// and keep the section informational.
	section.Data = raw
	return section
}

// memoryTitle embeds the status label, the fixed thresholds and the current
// used percentage ("n/a" when the probe yielded nothing).
func memoryTitle(label string, usedPct *float64) string {
	return fmt.Sprintf("Memory: %s (used %s, warn %.0f%%, crit %.0f%%)",
		label, formatPct(usedPct), MemoryWarnThreshold, MemoryCritThreshold)
}

// volumesTitle mirrors memoryTitle with the cross-volume extremes.
func volumesTitle(label string, maxUsed, minFree *float64) string {
	return fmt.Sprintf("Volumes: %s (max used %s, min free %s, warn %.0f%%, crit %.0f%%)",
		label, formatPct(maxUsed), formatPct(minFree), VolumeWarnThreshold, VolumeCritThreshold)
}

func formatPct(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *value)
}
