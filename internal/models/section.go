package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Severity is the three-level classification driving report styling and the
// CLI exit code. Ordering matters: higher values dominate when severities
// are rolled up across entities.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// String returns the wire form of a severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	default:
		return "info"
	}
}

// MarshalJSON serializes a severity as its wire string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the wire form back into a severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw {
	case "info":
		*s = SeverityInfo
	case "warn":
		*s = SeverityWarn
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", raw)
	}
	return nil
}

// Domain tags a section with its metric domain so renderers can pick a
// layout without inspecting the payload shape. It never goes on the wire.
type Domain string

const (
	DomainSystem        Domain = "system"
	DomainCPU           Domain = "cpu"
	DomainMemory        Domain = "memory"
	DomainVolumes       Domain = "volumes"
	DomainPhysicalDisks Domain = "physical_disks"
)

// Section is one titled, severity-tagged block of the report. Severity is
// the authoritative rollup of any per-entity severities inside Data.
type Section struct {
	Title    string      `json:"Title"`
	Data     interface{} `json:"Data"`
	Severity Severity    `json:"Severity"`
	Domain   Domain      `json:"-"`
}

// Report is the complete ordered collection of sections plus generation
// time, the sole output of a pipeline run.
type Report struct {
	GeneratedAt time.Time `json:"GeneratedAt"`
	Sections    []Section `json:"Sections"`
}

// WorstSeverity returns the maximum severity across all sections.
func (r Report) WorstSeverity() Severity {
	worst := SeverityInfo
	for _, section := range r.Sections {
		if section.Severity > worst {
			worst = section.Severity
		}
	}
	return worst
}

// ProbeError is the structured payload a failed probe leaves behind in
// place of domain data.
type ProbeError struct {
	Error    bool   `json:"Error"`
	Message  string `json:"Message"`
	Category string `json:"Category"`
	Id       string `json:"Id"`
}
