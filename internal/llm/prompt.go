package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed prompts/vc_analyst.txt
var vcAnalystTemplate string

// BuildPrompt renders the VC analyst instruction template for one research
// abstract. Pure function: no I/O, identical inputs yield identical output.
// The research text is interpolated verbatim; the field, when present,
// appears exactly once as a "Research Field:" label.
func BuildPrompt(researchText, field string) string {
	fieldContext := ""
	if strings.TrimSpace(field) != "" {
		fieldContext = fmt.Sprintf("Research Field: %s\n\n", field)
	}
	r := strings.NewReplacer(
		"{{FIELD_CONTEXT}}", fieldContext,
		"{{RESEARCH_TEXT}}", researchText,
	)
	return r.Replace(vcAnalystTemplate)
}
