package llm

import (
	"strings"
	"testing"
)

func TestBuildPromptDeterministic(t *testing.T) {
	text := "A novel catalyst reduces hydrogen production costs by 40%."
	first := BuildPrompt(text, "energy")
	second := BuildPrompt(text, "energy")
	if first != second {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestBuildPromptInterpolatesVerbatim(t *testing.T) {
	text := `Abstract with "quotes", {braces} and	tabs.`
	prompt := BuildPrompt(text, "")
	if !strings.Contains(prompt, text) {
		t.Fatalf("expected research text verbatim in prompt")
	}
	if strings.Contains(prompt, "{{RESEARCH_TEXT}}") || strings.Contains(prompt, "{{FIELD_CONTEXT}}") {
		t.Fatalf("expected all placeholders replaced")
	}
}

func TestBuildPromptFieldLabel(t *testing.T) {
	prompt := BuildPrompt("some research text", "biotech")
	if got := strings.Count(prompt, "Research Field: biotech"); got != 1 {
		t.Fatalf("expected field label exactly once, got %d", got)
	}

	without := BuildPrompt("some research text", "")
	if strings.Contains(without, "Research Field:") {
		t.Fatalf("expected no field label when field is empty")
	}
}

func TestBuildPromptContainsContract(t *testing.T) {
	prompt := BuildPrompt("some research text", "ai")
	for _, want := range []string{
		`"marketAnalysis"`,
		`"technicalFeasibility"`,
		`"commercialPotential"`,
		`"teamAndExecution"`,
		`"overallScore"`,
		`"investmentRecommendation"`,
		`"hybridOpportunities"`,
		"STRONG BUY / BUY / HOLD / WEAK / PASS",
		"Scoring Guidelines:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}
