// ABOUTME: Tests for the recommend command running the full offline pipeline
// ABOUTME: Exercises profile validation and formatted output

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecommendCmd(t *testing.T) {
	output := runCommand(t, "recommend", "energy_optimization",
		"--sustainability", "intermediate",
		"--technological", "intermediate",
		"--compliance", "high")

	for _, want := range []string{"Relevance:", "Investment:", "recommendation(s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	// Financing is always part of the result set.
	if !strings.Contains(output, "Vendor Financial Services") {
		t.Errorf("output missing financing entry:\n%s", output)
	}
}

func TestRecommendCmd_JSON(t *testing.T) {
	output := runCommand(t, "recommend", "energy_optimization",
		"--sustainability", "expert",
		"--technological", "expert",
		"--compliance", "low",
		"--format", "json")

	for _, want := range []string{`"product_id"`, `"relevance_score"`, `"financing_options"`} {
		if !strings.Contains(output, want) {
			t.Errorf("JSON output missing %q:\n%s", want, output)
		}
	}
}

func TestRecommendCmd_InvalidProfile(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"recommend", "energy_optimization",
		"--sustainability", "wizard",
		"--technological", "intermediate",
		"--compliance", "high"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want profile validation error")
	}
	if !strings.Contains(err.Error(), "sustainability_proficiency") {
		t.Errorf("error = %v, want mention of sustainability_proficiency", err)
	}
}

func TestRecommendCmd_UnknownScenario(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"recommend", "nope",
		"--sustainability", "beginner",
		"--technological", "beginner",
		"--compliance", "low"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want unknown scenario error")
	}
}
