package services

import (
	"log"
	"time"

	"healthsnap/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
)

// cpuSampler is one strategy for reading per-core load. Samplers are tried
// in order and the first non-empty result wins; a sampler that errors or
// returns nothing falls through to the next one.
type cpuSampler struct {
	name   string
	sample func() ([]float64, error)
}

// defaultCPUSamplers returns the per-core acquisition chain: pre-aggregated
// counters first, then a live one-second sample.
func defaultCPUSamplers() []cpuSampler {
	return []cpuSampler{
		{name: "counters", sample: func() ([]float64, error) { return cpu.Percent(0, true) }},
		{name: "sampled", sample: func() ([]float64, error) { return cpu.Percent(time.Second, true) }},
	}
}

// legacyCPULoad reads the single aggregate load value used when no sampler
// produced per-core data.
func legacyCPULoad() ([]float64, error) {
	return cpu.Percent(0, false)
}

// collectPerCore walks the sampler chain and returns the first non-empty
// per-core array, or nil when every tier came up empty.
func collectPerCore(samplers []cpuSampler) []float64 {
	for _, sampler := range samplers {
		values, err := sampler.sample()
		if err != nil {
			log.Printf("Warning: CPU sampler %q failed: %v", sampler.name, err)
			continue
		}
		if len(values) > 0 {
			return values
		}
	}
	return nil
}

// collectLoad resolves overall load and per-core detail from the fallback
// chain. The legacy reader is consulted only when no sampler produced
// per-core data; total failure yields a nil load and an empty array.
func collectLoad(samplers []cpuSampler, legacy func() ([]float64, error)) (*float64, []float64) {
	if perCore := collectPerCore(samplers); len(perCore) > 0 {
		load := round2(meanOf(perCore))
		return &load, perCore
	}

	values, err := legacy()
	if err != nil || len(values) == 0 {
		if err != nil {
			log.Printf("Warning: legacy CPU load unavailable: %v", err)
		}
		return nil, []float64{}
	}
	load := values[0]
	return &load, []float64{}
}

// GetCPUStatus returns processor identity, core count and current load.
func GetCPUStatus() (*models.CPUStatus, error) {
	status := &models.CPUStatus{}

	infos, err := cpu.Info()
	if err != nil {
		log.Printf("Warning: Could not get CPU info: %v", err)
	} else if len(infos) > 0 {
		status.ProcessorName = infos[0].ModelName
		// Core count is summed across physical processor packages.
		for _, info := range infos {
			status.CoreCount += int(info.Cores)
		}
	}
	if status.CoreCount == 0 {
		if count, err := cpu.Counts(true); err == nil {
			status.CoreCount = count
		} else {
			log.Printf("Warning: Could not get CPU core count: %v", err)
		}
	}

	status.LoadPercent, status.PerCore = collectLoad(defaultCPUSamplers(), legacyCPULoad)
	return status, nil
}

// meanOf returns the arithmetic mean of a non-empty slice.
func meanOf(values []float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}
