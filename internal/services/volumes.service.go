package services

import (
	"log"

	"healthsnap/internal/models"

	"github.com/shirou/gopsutil/v3/disk"
)

// GetVolumeStatuses enumerates fixed local volumes keyed by mountpoint.
// Removable, network and pseudo filesystems are excluded by asking for
// physical partitions only. A mount that cannot be read is skipped; missing
// size figures read as zero rather than failing the probe.
func GetVolumeStatuses() (map[string]models.VolumeStatus, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	volumes := make(map[string]models.VolumeStatus)
	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			log.Printf("Warning: Could not read volume %s: %v", partition.Mountpoint, err)
			continue
		}

		usedPct := 0.0
		if usage.Total > 0 {
			usedPct = round2(usage.UsedPercent)
		}
		pct := usedPct
		volumes[partition.Mountpoint] = models.VolumeStatus{
			TotalGB: round2(float64(usage.Total) / GB),
			UsedGB:  round2(float64(usage.Used) / GB),
			FreeGB:  round2(float64(usage.Free) / GB),
			UsedPct: &pct,
		}
	}

	return volumes, nil
}
