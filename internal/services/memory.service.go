package services

import (
	"healthsnap/internal/models"

	"github.com/shirou/gopsutil/v3/mem"
)

const GB = 1024 * 1024 * 1024

// GetMemoryStatus returns physical memory usage in GiB. Used is computed as
// total minus available so used + free always adds back up to total.
func GetMemoryStatus() (*models.MemoryStatus, error) {
	virtualMemory, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	total := float64(virtualMemory.Total)
	free := float64(virtualMemory.Available)
	used := total - free

	usedPct := 0.0
	if total > 0 {
		usedPct = round2(used / total * 100)
	}

	return &models.MemoryStatus{
		TotalGB: round2(total / GB),
		UsedGB:  round2(used / GB),
		FreeGB:  round2(free / GB),
		UsedPct: usedPct,
	}, nil
}
