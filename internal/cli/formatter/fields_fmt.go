package formatter

import (
	"strings"
)

// FormatExtractedTerms renders the terms pulled out of equation fields as
// a two-column table. Function terms are recognizable by their call
// parentheses.
func FormatExtractedTerms(terms []string) string {
	if len(terms) == 0 {
		return Dim("No equation terms found.")
	}

	rows := make([][]string, 0, len(terms))
	for _, term := range terms {
		kind := "field"
		style := StyleBlue
		if strings.Contains(term, "(") {
			kind = "function"
			style = StylePurple
		}
		rows = append(rows, []string{style.Render(term), Dim(kind)})
	}
	return RenderTable([]string{"TERM", "KIND"}, rows)
}
