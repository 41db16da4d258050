package analyses

import "time"

// MinWords is the soft floor on research text length, enforced at the HTTP
// boundary rather than against the external service.
const MinWords = 50

// Request is one unit of user-submitted research text to evaluate.
type Request struct {
	ResearchText string `json:"researchText"`
	Field        string `json:"field,omitempty"`
}

// Analysis records one completed evaluation. It is held in memory for the
// current lifecycle only; analyses are never persisted.
type Analysis struct {
	ID         string          `json:"id"`
	Field      string          `json:"field,omitempty"`
	WordCount  int             `json:"wordCount"`
	Model      string          `json:"model"`
	Result     *AnalysisResult `json:"result"`
	CreatedAt  time.Time       `json:"createdAt"`
	DurationMs float64         `json:"durationMs"`
}

var fields = map[string]struct{}{
	"ai":        {},
	"biotech":   {},
	"energy":    {},
	"materials": {},
	"quantum":   {},
	"space":     {},
	"climate":   {},
	"other":     {},
}

// ValidField reports whether f is a recognized research field tag.
func ValidField(f string) bool {
	_, ok := fields[f]
	return ok
}
