// ABOUTME: Tests for the version command
// ABOUTME: Verifies version info propagation and output format

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd_Output(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-01-01")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	cmd.Run(cmd, nil)

	output := out.String()
	if !strings.Contains(output, "fragdoc 1.2.3") {
		t.Errorf("output missing version: %q", output)
	}
	if !strings.Contains(output, "abc1234") {
		t.Errorf("output missing commit: %q", output)
	}
	if !strings.Contains(output, "2026-01-01") {
		t.Errorf("output missing date: %q", output)
	}
}
