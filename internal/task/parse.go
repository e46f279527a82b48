package task

import (
	"regexp"
	"strings"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/dates"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/pattern"
)

// checkboxRe matches a completion marker at the start of a line: an optional
// list bullet, then a bracket whose interior holds only whitespace or the
// completion characters x, X, ';', ','.
var checkboxRe = regexp.MustCompile(`^\s*(?:[-*]\s*)?\[([\sxX;,]*)\]\s*(.*)$`)

// completeRe reports whether a checkbox interior marks the task complete.
var completeRe = regexp.MustCompile(`[xX;,]`)

// bracketLeadRe matches a line that opens with a bracket group followed by
// more text. When the interior is not a valid checkbox, that leading bracket
// is malformed checkbox syntax and stays literal task text instead of
// becoming a tag.
var bracketLeadRe = regexp.MustCompile(`^(\s*(?:[-*]\s*)?\[[^\[\]]*\])[ \t]*(\S.*)$`)

// ParseInput parses raw node text into tasks plus aggregate metadata. It is
// total: any input, including empty or malformed text, yields at least one
// task with non-empty text.
func ParseInput(text string) ParsedData {
	if strings.TrimSpace(text) == "" {
		return ParsedData{Tasks: []Task{{ID: newID(), Text: DefaultText}}}
	}

	lines := strings.Split(text, "\n")

	checkboxCount := 0
	for _, line := range lines {
		if checkboxRe.MatchString(line) {
			checkboxCount++
		}
	}

	if checkboxCount > 1 {
		return parseAggregate(lines)
	}
	return parseSingle(lines)
}

// parseSingle handles inputs with zero or one checkbox line: every line's
// cleaned text contributes to the single task.
func parseSingle(lines []string) ParsedData {
	var (
		parts      []string
		patterns   []pattern.Pattern
		isComplete bool
	)

	offset := 0
	for _, line := range lines {
		if m := checkboxRe.FindStringSubmatchIndex(line); m != nil {
			isComplete = completeRe.MatchString(line[m[2]:m[3]])
			res := pattern.Extract(line[m[4]:m[5]])
			parts = appendPart(parts, res.CleanText)
			patterns = append(patterns, rebase(res.Patterns, offset+m[4])...)
		} else {
			clean, pats := extractLine(line, offset)
			parts = appendPart(parts, clean)
			patterns = append(patterns, pats...)
		}
		offset += len(line) + 1
	}

	t := Task{
		ID:         newID(),
		Text:       joinedOrDefault(parts),
		IsComplete: isComplete,
		Patterns:   patterns,
	}
	return withLegacyFields(ParsedData{Tasks: []Task{t}}, patterns)
}

// parseAggregate handles inputs with multiple checkbox lines. All checkbox
// lines merge into one task; the combined task is complete only when every
// checkbox line is. Non-checkbox lines contribute patterns but no text.
func parseAggregate(lines []string) ParsedData {
	var (
		parts    []string
		patterns []pattern.Pattern
	)
	allComplete := true

	offset := 0
	for _, line := range lines {
		if m := checkboxRe.FindStringSubmatchIndex(line); m != nil {
			if !completeRe.MatchString(line[m[2]:m[3]]) {
				allComplete = false
			}
			res := pattern.Extract(line[m[4]:m[5]])
			parts = appendPart(parts, res.CleanText)
			patterns = append(patterns, rebase(res.Patterns, offset+m[4])...)
		} else {
			_, pats := extractLine(line, offset)
			patterns = append(patterns, pats...)
		}
		offset += len(line) + 1
	}

	t := Task{
		ID:         newID(),
		Text:       joinedOrDefault(parts),
		IsComplete: allComplete,
		Patterns:   patterns,
	}
	return withLegacyFields(ParsedData{Tasks: []Task{t}}, patterns)
}

// extractLine runs pattern extraction on a non-checkbox line, shielding a
// malformed leading checkbox bracket from tag extraction. base is the line's
// start offset in the full input.
func extractLine(line string, base int) (string, []pattern.Pattern) {
	if m := bracketLeadRe.FindStringSubmatchIndex(line); m != nil {
		literal := strings.TrimSpace(line[m[2]:m[3]])
		res := pattern.Extract(line[m[4]:m[5]])
		return strings.TrimSpace(literal + " " + res.CleanText), rebase(res.Patterns, base+m[4])
	}
	res := pattern.Extract(line)
	return res.CleanText, rebase(res.Patterns, base)
}

// rebase shifts pattern positions from a line segment onto the full input.
func rebase(pats []pattern.Pattern, delta int) []pattern.Pattern {
	for i := range pats {
		pats[i].Position += delta
	}
	return pats
}

func appendPart(parts []string, s string) []string {
	if s == "" {
		return parts
	}
	return append(parts, s)
}

func joinedOrDefault(parts []string) string {
	text := strings.TrimSpace(strings.Join(parts, " "))
	if text == "" {
		return DefaultText
	}
	return text
}

// withLegacyFields populates the backward-compatible scalar fields from the
// first pattern of each type, and collects every tag value with
// comma-splitting and de-duplication.
func withLegacyFields(data ParsedData, patterns []pattern.Pattern) ParsedData {
	seenTags := map[string]bool{}

	for _, p := range patterns {
		switch p.Type {
		case pattern.TypeDate:
			if data.DueDate == nil {
				if t, ok := dates.Resolve(p.Value); ok {
					data.DueDate = &t
				}
			}
		case pattern.TypePriority:
			if data.Priority == "" {
				data.Priority = p.Value
			}
		case pattern.TypeAssignee:
			if data.Assignee == "" {
				data.Assignee = p.Value
			}
		case pattern.TypeTag:
			for _, tag := range strings.Split(p.Value, ",") {
				tag = strings.TrimSpace(tag)
				if tag == "" || seenTags[tag] {
					continue
				}
				seenTags[tag] = true
				data.Tags = append(data.Tags, tag)
			}
		}
	}
	return data
}
