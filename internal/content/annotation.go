package content

import (
	"strings"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/pattern"
)

// AnnotationData is the result of parsing annotation node input.
type AnnotationData struct {
	Content  string            `json:"content"`
	Type     string            `json:"type"`
	Patterns []pattern.Pattern `json:"patterns,omitempty"`
}

// annotationTypes are the priority-shaped tokens that select an annotation
// type. Anything else leaves the default "note".
var annotationTypes = map[string]bool{
	"warning": true,
	"error":   true,
	"info":    true,
	"success": true,
	"note":    true,
}

// ParseAnnotation runs the generic extractor and infers the annotation type
// from a priority-shaped token when it names a known type.
func ParseAnnotation(input string) AnnotationData {
	res := pattern.Extract(input)

	annType := "note"
	for _, p := range res.Patterns {
		if p.Type != pattern.TypePriority {
			continue
		}
		if v := strings.ToLower(p.Value); annotationTypes[v] {
			annType = v
			break
		}
	}

	return AnnotationData{
		Content:  res.CleanText,
		Type:     annType,
		Patterns: res.Patterns,
	}
}
