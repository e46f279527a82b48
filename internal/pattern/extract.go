package pattern

import (
	"regexp"
	"sort"
	"strings"
)

// span is a raw regex hit before overlap resolution.
type span struct {
	typ   Type
	start int
	end   int
	value string
}

// checkboxInterior matches bracket contents that are completion markers, not
// tags: empty, whitespace, x, X, semicolons or commas only.
var checkboxInterior = regexp.MustCompile(`^[\sxX;,]*$`)

// matcherSpec couples a pattern type with its regex source. Regexes are
// compiled fresh on every Extract call so no position state leaks between
// scans.
type matcherSpec struct {
	typ Type
	src string
}

var matcherSpecs = []matcherSpec{
	{TypeColor, `color:(#[0-9a-fA-F]{3,8}|rgb\([^)]*\)|\w+)`},
	{TypeDate, `@(\w[\w/-]*)`},
	{TypePriority, `#(\w+)`},
	{TypeTag, `\[([^\[\]]*)\]`},
	{TypeAssignee, `\+(\w+)`},
}

// Extract scans text for embedded patterns, resolves overlaps in favor of the
// earliest-starting match, strips accepted matches out of the text, and
// collapses the remaining whitespace. It never fails; unrecognized syntax is
// simply left in place.
func Extract(text string) Result {
	if text == "" {
		return Result{}
	}

	var spans []span
	for _, spec := range matcherSpecs {
		re := regexp.MustCompile(spec.src)
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			value := text[m[2]:m[3]]
			if spec.typ == TypeTag && checkboxInterior.MatchString(value) {
				continue
			}
			spans = append(spans, span{typ: spec.typ, start: m[0], end: m[1], value: value})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	// Earliest-starting span wins; later overlapping spans are dropped.
	kept := spans[:0]
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		kept = append(kept, s)
		lastEnd = s.end
	}

	patterns := make([]Pattern, 0, len(kept))
	for _, s := range kept {
		patterns = append(patterns, Pattern{
			Type:     s.typ,
			Value:    s.value,
			Display:  displayFor(s.typ, s.value),
			Position: s.start,
		})
	}

	// Remove spans back to front so earlier offsets stay valid.
	clean := text
	for i := len(kept) - 1; i >= 0; i-- {
		clean = clean[:kept[i].start] + clean[kept[i].end:]
	}
	clean = collapseWhitespace(clean)

	if len(patterns) == 0 {
		patterns = nil
	}
	return Result{CleanText: clean, Patterns: patterns}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
