package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os/exec"

	"healthsnap/internal/models"
)

// Physical disk health rides on smartctl, which is an optional capability:
// hosts without smartmontools get an informational marker instead of an
// error section.

// smartctlRunner is swappable so parsing can be tested without smartctl.
var smartctlRunner = func(args ...string) ([]byte, error) {
	return exec.Command("smartctl", args...).Output()
}

// smartctlAvailable reports whether the smartctl binary is on PATH.
var smartctlAvailable = func() bool {
	_, err := exec.LookPath("smartctl")
	return err == nil
}

type smartScan struct {
	Devices []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"devices"`
}

type smartDevice struct {
	ModelName    string `json:"model_name"`
	ModelFamily  string `json:"model_family"`
	RotationRate int    `json:"rotation_rate"`
	UserCapacity struct {
		Bytes float64 `json:"bytes"`
	} `json:"user_capacity"`
	SmartStatus struct {
		Passed bool `json:"passed"`
	} `json:"smart_status"`
}

// GetPhysicalDisks reports SMART health per physical device, keyed by
// friendly name. The return value is either a map of disk statuses or a
// CapabilityNote marker when smartctl is missing or sees no devices.
func GetPhysicalDisks() (interface{}, error) {
	if !smartctlAvailable() {
		return models.CapabilityNote{Info: "smartctl not installed; physical disk health unavailable"}, nil
	}

	out, err := smartctlRunner("-j", "--scan")
	if err != nil {
		return nil, fmt.Errorf("smartctl scan failed: %w", err)
	}
	var scan smartScan
	if err := json.Unmarshal(out, &scan); err != nil {
		return nil, fmt.Errorf("parsing smartctl scan: %w", err)
	}
	if len(scan.Devices) == 0 {
		return models.CapabilityNote{Info: "no physical disks reported"}, nil
	}

	disks := make(map[string]models.PhysicalDiskStatus)
	for _, device := range scan.Devices {
		out, err := smartctlRunner("-j", "-i", "-H", device.Name)
		if err != nil {
			// smartctl exits non-zero for failing drives but still
			// emits JSON; only a missing payload is a lost device.
			if _, ok := err.(*exec.ExitError); !ok || len(out) == 0 {
				log.Printf("Warning: Could not query %s: %v", device.Name, err)
				continue
			}
		}
		name, status, err := parseDiskHealth(out, device.Name)
		if err != nil {
			log.Printf("Warning: Could not parse SMART data for %s: %v", device.Name, err)
			continue
		}
		disks[name] = status
	}

	if len(disks) == 0 {
		return models.CapabilityNote{Info: "no physical disks reported"}, nil
	}
	return disks, nil
}

// parseDiskHealth converts one smartctl info/health JSON document into a
// friendly name and a disk status record.
func parseDiskHealth(raw []byte, devicePath string) (string, models.PhysicalDiskStatus, error) {
	var device smartDevice
	if err := json.Unmarshal(raw, &device); err != nil {
		return "", models.PhysicalDiskStatus{}, err
	}

	health := "Healthy"
	operational := "OK"
	if !device.SmartStatus.Passed {
		health = "Unhealthy"
		operational = "Degraded"
	}

	mediaType := "SSD"
	if device.RotationRate > 0 {
		mediaType = "HDD"
	}

	name := device.ModelName
	if name == "" {
		name = device.ModelFamily
	}
	if name == "" {
		name = devicePath
	} else {
		name = fmt.Sprintf("%s (%s)", name, devicePath)
	}

	return name, models.PhysicalDiskStatus{
		HealthStatus:      health,
		OperationalStatus: operational,
		MediaType:         mediaType,
		SizeGB:            round2(device.UserCapacity.Bytes / GB),
	}, nil
}
