package models

import (
	"encoding/json"
	"testing"
)

func TestSeverityWireForm(t *testing.T) {
	t.Parallel()

	for severity, want := range map[Severity]string{
		SeverityInfo:  `"info"`,
		SeverityWarn:  `"warn"`,
		SeverityError: `"error"`,
	} {
		data, err := json.Marshal(severity)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != want {
			t.Errorf("marshal(%v) = %s, want %s", severity, data, want)
		}

		var parsed Severity
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if parsed != severity {
			t.Errorf("round trip of %v gave %v", severity, parsed)
		}
	}

	var bad Severity
	if err := json.Unmarshal([]byte(`"fatal"`), &bad); err == nil {
		t.Fatal("unknown severity accepted")
	}
}

func TestWorstSeverity(t *testing.T) {
	t.Parallel()

	report := Report{Sections: []Section{
		{Severity: SeverityInfo},
		{Severity: SeverityWarn},
		{Severity: SeverityInfo},
	}}
	if got := report.WorstSeverity(); got != SeverityWarn {
		t.Fatalf("worst = %v, want warn", got)
	}

	report.Sections = append(report.Sections, Section{Severity: SeverityError})
	if got := report.WorstSeverity(); got != SeverityError {
		t.Fatalf("worst = %v, want error", got)
	}

	empty := Report{}
	if got := empty.WorstSeverity(); got != SeverityInfo {
		t.Fatalf("empty report worst = %v, want info", got)
	}
}
