// Package command implements the trigger-detection, registry and execution
// pipeline that turns `$nodeType` and `/command` keystrokes into structured
// edit instructions.
package command

// TriggerType classifies how a command is activated.
type TriggerType string

const (
	TriggerNodeType TriggerType = "node-type"
	TriggerSlash    TriggerType = "slash"
	TriggerShortcut TriggerType = "shortcut"
)

// DefaultPriority is the sort weight assumed for commands that do not set an
// explicit priority.
const DefaultPriority = 100

// Selection is a half-open [Start, End) range into the current text.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Context is the execution-time snapshot a command action reads from.
type Context struct {
	CurrentText     string     `json:"current_text"`
	CursorPosition  int        `json:"cursor_position"`
	Selection       *Selection `json:"selection,omitempty"`
	TriggerPosition int        `json:"trigger_position"`
	TriggerText     string     `json:"trigger_text"`
}

// SelectedText returns the selected slice of the current text, empty when
// there is no selection or the range is out of bounds.
func (c Context) SelectedText() string {
	if c.Selection == nil {
		return ""
	}
	start, end := c.Selection.Start, c.Selection.End
	if start < 0 || end > len(c.CurrentText) || start >= end {
		return ""
	}
	return c.CurrentText[start:end]
}

// Result is the structured edit instruction returned to the editor surface.
// Text is the full replacement buffer.
type Result struct {
	Text           string         `json:"text"`
	CursorPosition int            `json:"cursor_position"`
	NodeType       string         `json:"node_type,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ClearTrigger   bool           `json:"clear_trigger,omitempty"`
}

// Action is the behavior attached to a command. Implementations must be pure
// with respect to the context; failures are reported through the error, and
// panics are contained by the Executor.
type Action interface {
	Execute(ctx Context) (Result, error)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(Context) (Result, error)

// Execute calls f.
func (f ActionFunc) Execute(ctx Context) (Result, error) { return f(ctx) }

// Command is one registered entry: immutable once registered. Trigger and ID
// are both unique within a registry.
type Command struct {
	ID          string      `json:"id"`
	Trigger     string      `json:"trigger"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	TriggerType TriggerType `json:"trigger_type"`
	Action      Action      `json:"-"`
	Keywords    []string    `json:"keywords,omitempty"`
	Priority    int         `json:"priority,omitempty"`
}

// effectivePriority treats the zero value as DefaultPriority.
func (c *Command) effectivePriority() int {
	if c.Priority == 0 {
		return DefaultPriority
	}
	return c.Priority
}
