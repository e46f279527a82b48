// Package content holds the node-type-specific input parsers built on top of
// the embedded pattern extractor: styled text, annotations, questions, code,
// images and resources.
package content

import (
	"regexp"
	"strings"
)

// TextMetadata carries the styling extracted from text input. All fields are
// optional; a nil TextMetadata means no styling token matched.
type TextMetadata struct {
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
	TextAlign  string `json:"textAlign,omitempty"`
	TextColor  string `json:"textColor,omitempty"`
}

// TextData is the result of parsing text node input.
type TextData struct {
	Content  string        `json:"content"`
	Metadata *TextMetadata `json:"metadata,omitempty"`
}

var (
	fontSizeRe = regexp.MustCompile(`@(\d+(?:\.\d+)?)(px|rem|em)?`)
	alignRe    = regexp.MustCompile(`(?i)align:(left|center|right)`)
	textColRe  = regexp.MustCompile(`(?i)color:(\S+)`)
	boldRe     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	starItalRe = regexp.MustCompile(`\*([^*]+)\*`)
	underItlRe = regexp.MustCompile(`_([^_]+)_`)
	wsRunRe    = regexp.MustCompile(`\s+`)
)

// ParseText extracts styling tokens from text input: font size @N[px|rem|em]
// (last occurrence wins), bold **..**, italic *..* or _.._, alignment and
// color. Bold markers are consumed before italic so ** is never read as two
// italic stars.
func ParseText(input string) TextData {
	meta := TextMetadata{}
	matched := false
	text := input

	if ms := textColRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		meta.TextColor = ms[len(ms)-1][1]
		text = textColRe.ReplaceAllString(text, "")
		matched = true
	}
	if ms := alignRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		meta.TextAlign = strings.ToLower(ms[len(ms)-1][1])
		text = alignRe.ReplaceAllString(text, "")
		matched = true
	}
	if ms := fontSizeRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		last := ms[len(ms)-1]
		unit := last[2]
		if unit == "" {
			unit = "px"
		}
		meta.FontSize = last[1] + unit
		text = fontSizeRe.ReplaceAllString(text, "")
		matched = true
	}
	if boldRe.MatchString(text) {
		meta.FontWeight = "bold"
		text = boldRe.ReplaceAllString(text, "$1")
		matched = true
	}
	if starItalRe.MatchString(text) || underItlRe.MatchString(text) {
		meta.FontStyle = "italic"
		text = starItalRe.ReplaceAllString(text, "$1")
		text = underItlRe.ReplaceAllString(text, "$1")
		matched = true
	}

	data := TextData{Content: collapse(text)}
	if matched {
		data.Metadata = &meta
	}
	return data
}

func collapse(s string) string {
	return strings.TrimSpace(wsRunRe.ReplaceAllString(s, " "))
}
