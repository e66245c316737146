package models

// PhysicalDiskStatus holds SMART-derived health for one physical device,
// keyed by friendly name in the physical disks section.
type PhysicalDiskStatus struct {
	HealthStatus      string  `json:"HealthStatus"`
	OperationalStatus string  `json:"OperationalStatus"`
	MediaType         string  `json:"MediaType"`
	SizeGB            float64 `json:"SizeGB"`
}

// CapabilityNote marks an optional subsystem as absent or empty. It is an
// informational marker, not an error: sections carrying it keep severity
// info.
type CapabilityNote struct {
	Info string `json:"Info"`
}
