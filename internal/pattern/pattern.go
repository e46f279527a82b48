// Package pattern extracts embedded typed tokens (dates, priorities, colors,
// tags, assignees) from free-form node text.
package pattern

// Type identifies the kind of an embedded pattern.
type Type string

const (
	TypeDate     Type = "date"
	TypePriority Type = "priority"
	TypeColor    Type = "color"
	TypeTag      Type = "tag"
	TypeAssignee Type = "assignee"
)

// Pattern is one extracted token. Position is the start offset in the
// original text handed to Extract.
type Pattern struct {
	Type     Type   `json:"type"`
	Value    string `json:"value"`
	Display  string `json:"display"`
	Position int    `json:"position"`
}

// Result is the outcome of an extraction pass: the input with all accepted
// tokens removed and whitespace normalized, plus the tokens themselves sorted
// ascending by position.
type Result struct {
	CleanText string    `json:"clean_text"`
	Patterns  []Pattern `json:"patterns"`
}
