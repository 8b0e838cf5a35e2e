// ABOUTME: Tests for version command output
// ABOUTME: Verifies version info wiring from main
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-29")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	outputStr := output.String()
	for _, want := range []string{"Concierge 1.2.3", "Commit: abc1234", "Built:  2026-08-29"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("output %q should contain %q", outputStr, want)
		}
	}
}
