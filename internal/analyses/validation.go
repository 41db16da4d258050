package analyses

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnparsableResultError reports model output that is not valid JSON for the
// result contract (including wrong field types).
type UnparsableResultError struct {
	Cause error
}

func (e *UnparsableResultError) Error() string {
	return fmt.Sprintf("model output is not valid analysis JSON: %v", e.Cause)
}

func (e *UnparsableResultError) Unwrap() error {
	return e.Cause
}

// IncompleteResultError reports valid JSON missing required sub-assessments.
type IncompleteResultError struct {
	Missing []string
}

func (e *IncompleteResultError) Error() string {
	return fmt.Sprintf("analysis result missing required sections: %s", strings.Join(e.Missing, ", "))
}

// InvalidResultError reports a structurally complete result with an
// out-of-range score or unrecognized recommendation value.
type InvalidResultError struct {
	Reason string
}

func (e *InvalidResultError) Error() string {
	return "invalid analysis result: " + e.Reason
}

// ParseResult decodes and validates raw model output. Partial results are a
// failure, never a degraded success.
func ParseResult(raw string) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		return nil, &UnparsableResultError{Cause: err}
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

// Validate checks that all four sub-assessments are present, scores are in
// range and the recommendation value is recognized.
func (r *AnalysisResult) Validate() error {
	var missing []string
	if r.MarketAnalysis == nil {
		missing = append(missing, "marketAnalysis")
	}
	if r.TechnicalFeasibility == nil {
		missing = append(missing, "technicalFeasibility")
	}
	if r.CommercialPotential == nil {
		missing = append(missing, "commercialPotential")
	}
	if r.TeamAndExecution == nil {
		missing = append(missing, "teamAndExecution")
	}
	if len(missing) > 0 {
		return &IncompleteResultError{Missing: missing}
	}

	scores := []struct {
		name  string
		value float64
	}{
		{"marketAnalysis.score", r.MarketAnalysis.Score},
		{"technicalFeasibility.score", r.TechnicalFeasibility.Score},
		{"commercialPotential.score", r.CommercialPotential.Score},
		{"teamAndExecution.score", r.TeamAndExecution.Score},
		{"overallScore", r.OverallScore},
	}
	for _, s := range scores {
		if s.value < 0 || s.value > 100 {
			return &InvalidResultError{Reason: fmt.Sprintf("%s must be between 0 and 100, got %v", s.name, s.value)}
		}
	}

	if !ValidRecommendation(r.InvestmentRecommendation) {
		return &InvalidResultError{Reason: fmt.Sprintf("unrecognized investmentRecommendation %q", r.InvestmentRecommendation)}
	}

	return nil
}
