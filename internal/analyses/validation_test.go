package analyses

import (
	"errors"
	"strings"
	"testing"
)

const validResultJSON = `{
	"marketAnalysis": {"score": 85, "summary": "large market", "marketSize": "$40B", "competition": "moderate", "trends": ["up"]},
	"technicalFeasibility": {"score": 78, "summary": "feasible", "complexity": "high", "timeToMarket": "18 months", "risks": ["regulatory"]},
	"commercialPotential": {"score": 82, "summary": "strong", "revenueModel": "SaaS", "scalability": "good", "barriers": ["capital"]},
	"teamAndExecution": {"score": 52, "summary": "academic", "expertise": "ML", "resources": "$5M", "recommendations": ["hire CEO"]},
	"overallScore": 74,
	"investmentRecommendation": "BUY",
	"keyInsights": ["new category"],
	"nextSteps": ["raise"],
	"hybridOpportunities": ["quantum synergy"]
}`

func TestParseResultSuccess(t *testing.T) {
	result, err := ParseResult(validResultJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallScore != 74 {
		t.Errorf("expected overall score 74, got %v", result.OverallScore)
	}
	if result.InvestmentRecommendation != RecommendationBuy {
		t.Errorf("expected BUY, got %q", result.InvestmentRecommendation)
	}
	if result.MarketAnalysis.Score != 85 {
		t.Errorf("expected market score 85, got %v", result.MarketAnalysis.Score)
	}
}

func TestParseResultNotJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"prose", "I'm sorry, I can't evaluate this."},
		{"truncated", validResultJSON[:50]},
		{"wrong types", `{"marketAnalysis": "not an object"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResult(tc.raw)
			var unparsable *UnparsableResultError
			if !errors.As(err, &unparsable) {
				t.Fatalf("expected UnparsableResultError, got %v", err)
			}
		})
	}
}

func TestParseResultMissingSections(t *testing.T) {
	raw := `{
		"marketAnalysis": {"score": 85, "summary": "ok"},
		"overallScore": 74,
		"investmentRecommendation": "BUY"
	}`
	_, err := ParseResult(raw)
	var incomplete *IncompleteResultError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteResultError, got %v", err)
	}
	want := []string{"technicalFeasibility", "commercialPotential", "teamAndExecution"}
	if len(incomplete.Missing) != len(want) {
		t.Fatalf("expected %v missing, got %v", want, incomplete.Missing)
	}
	for i, name := range want {
		if incomplete.Missing[i] != name {
			t.Errorf("missing[%d]: expected %q, got %q", i, name, incomplete.Missing[i])
		}
	}
}

func TestParseResultInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantMsg string
	}{
		{
			name:    "score above range",
			mutate:  func(s string) string { return strings.Replace(s, `"score": 85`, `"score": 150`, 1) },
			wantMsg: "marketAnalysis.score",
		},
		{
			name:    "negative overall",
			mutate:  func(s string) string { return strings.Replace(s, `"overallScore": 74`, `"overallScore": -1`, 1) },
			wantMsg: "overallScore",
		},
		{
			name:    "unknown recommendation",
			mutate:  func(s string) string { return strings.Replace(s, `"BUY"`, `"MAYBE"`, 1) },
			wantMsg: "investmentRecommendation",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseResult(tc.mutate(validResultJSON))
			var invalid *InvalidResultError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidResultError, got %v", err)
			}
			if !strings.Contains(invalid.Reason, tc.wantMsg) {
				t.Errorf("expected reason naming %q, got %q", tc.wantMsg, invalid.Reason)
			}
		})
	}
}

func TestParseResultBoundaryScores(t *testing.T) {
	raw := strings.Replace(validResultJSON, `"score": 85`, `"score": 0`, 1)
	raw = strings.Replace(raw, `"overallScore": 74`, `"overallScore": 100`, 1)
	if _, err := ParseResult(raw); err != nil {
		t.Fatalf("boundary scores 0 and 100 should pass: %v", err)
	}
}
