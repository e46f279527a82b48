package command

import (
	"regexp"
	"strings"
)

// triggerNodeTypes is the fixed dictionary from $trigger keyword to node
// type. Unknown keywords never switch.
var triggerNodeTypes = map[string]string{
	"task":       "task",
	"todo":       "task",
	"code":       "code",
	"note":       "note",
	"text":       "text",
	"question":   "question",
	"annotation": "annotation",
	"image":      "image",
	"img":        "image",
	"resource":   "resource",
	"link":       "resource",
}

// NodeTypeFor resolves a trigger keyword (without the $ sigil) to its node
// type.
func NodeTypeFor(keyword string) (string, bool) {
	t, ok := triggerNodeTypes[strings.ToLower(keyword)]
	return t, ok
}

// SwitchResult describes the outcome of scanning text for a node-type switch
// trigger.
type SwitchResult struct {
	HasSwitch        bool   `json:"has_switch"`
	NodeType         string `json:"node_type,omitempty"`
	ProcessedText    string `json:"processed_text"`
	OriginalText     string `json:"original_text"`
	CursorPosition   int    `json:"cursor_position"`
	Trigger          string `json:"trigger,omitempty"`
	RemainingContent string `json:"remaining_content,omitempty"`
}

// switchRe matches a $trigger whose tail reaches the end of the text:
// optional leading whitespace, optional preceding content, the trigger, and
// optionally whitespace plus free content after it. The separator after the
// trigger is any whitespace, so content on a following line still counts.
var switchRe = regexp.MustCompile(`(?s)^(\s*)(.*?)[ \t]*\$(\w+)(?:\s+(.*))?$`)

// ProcessNodeTypeSwitch scans text for a node-type switch trigger. On a
// match, ProcessedText is the text with the trigger removed (leading
// whitespace preserved) and RemainingContent is the free content that
// followed the trigger. Unknown triggers leave the text untouched.
func ProcessNodeTypeSwitch(text string, cursor int) SwitchResult {
	out := SwitchResult{
		OriginalText:   text,
		ProcessedText:  text,
		CursorPosition: cursor,
	}

	m := switchRe.FindStringSubmatch(text)
	if m == nil {
		return out
	}
	lead, pre, keyword, post := m[1], m[2], m[3], m[4]

	nodeType, ok := NodeTypeFor(keyword)
	if !ok {
		return out
	}

	processed := lead + pre
	if post != "" {
		if pre != "" {
			processed += " "
		}
		processed += post
	}

	out.HasSwitch = true
	out.NodeType = nodeType
	out.Trigger = "$" + keyword
	out.ProcessedText = processed
	out.RemainingContent = post
	if cursor > len(lead)+len(pre) || cursor > len(processed) {
		out.CursorPosition = len(processed)
	}
	return out
}

// ShouldAutoProcessSwitch reports whether a detected switch should be applied
// automatically: the resolved type must differ from the node's current type
// and the trailing content must be either absent or carry something beyond
// whitespace.
func ShouldAutoProcessSwitch(text string, cursor int, currentType string) bool {
	res := ProcessNodeTypeSwitch(text, cursor)
	if !res.HasSwitch || res.NodeType == currentType {
		return false
	}
	return res.RemainingContent == "" || strings.TrimSpace(res.RemainingContent) != ""
}
