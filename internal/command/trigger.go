package command

import "regexp"

// Trigger is a detected command activation near the cursor. IsPartial means
// the text is not (yet) a registered trigger and carries the typed prefix for
// live filtering.
type Trigger struct {
	Type      TriggerType `json:"type"`
	Text      string      `json:"text"`
	Keyword   string      `json:"keyword"`
	Start     int         `json:"start"`
	End       int         `json:"end"`
	IsPartial bool        `json:"is_partial"`
}

var (
	// $word triggers may appear anywhere adjacent to the cursor.
	nodeTriggerRe = regexp.MustCompile(`\$(\w+)`)
	// /word triggers are only valid at the start of the text or right
	// after whitespace.
	slashTriggerRe = regexp.MustCompile(`(^|\s)(/(\w*))`)
)

// DetectTrigger scans text for a trigger whose span contains the cursor (or
// ends exactly at it). A cursor at offset end sits right after the trigger's
// last character, the position the caret holds the moment the trigger is
// typed; once anything separates the caret from the trigger, even a single
// space, the trigger is no longer adjacent. It returns nil when nothing is
// adjacent to the cursor; that is a normal outcome, not an error.
func (r *Registry) DetectTrigger(text string, cursor int) *Trigger {
	if cursor < 0 || cursor > len(text) {
		return nil
	}

	var best *Trigger

	for _, m := range nodeTriggerRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if cursor < start || cursor > end {
			continue
		}
		t := &Trigger{
			Type:    TriggerNodeType,
			Text:    text[start:end],
			Keyword: text[m[2]:m[3]],
			Start:   start,
			End:     end,
		}
		if best == nil || t.Start > best.Start {
			best = t
		}
	}

	for _, m := range slashTriggerRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[4], m[5]
		if cursor < start || cursor > end {
			continue
		}
		t := &Trigger{
			Type:    TriggerSlash,
			Text:    text[start:end],
			Keyword: text[m[6]:m[7]],
			Start:   start,
			End:     end,
		}
		if best == nil || t.Start > best.Start {
			best = t
		}
	}

	if best != nil {
		best.IsPartial = r.ByTrigger(best.Text) == nil
	}
	return best
}
