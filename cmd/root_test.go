package cmd

import (
	"testing"

	"healthsnap/internal/models"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	if got := exitCodeFor(models.SeverityInfo); got != 0 {
		t.Fatalf("info exit code = %d", got)
	}
	if got := exitCodeFor(models.SeverityWarn); got != 2 {
		t.Fatalf("warn exit code = %d", got)
	}
	if got := exitCodeFor(models.SeverityError); got != 3 {
		t.Fatalf("error exit code = %d", got)
	}
}
