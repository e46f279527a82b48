package output

import (
	"fmt"
	"strings"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/command"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/content"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTaskData formats parsed task data for display.
func (f *HumanFormatter) FormatTaskData(data task.ParsedData) string {
	var sb strings.Builder

	for _, t := range data.Tasks {
		box := "[ ]"
		if t.IsComplete {
			box = "[x]"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", box, t.Text))
		for _, p := range t.Patterns {
			sb.WriteString(fmt.Sprintf("  %-9s %s (%s)\n", p.Type, p.Value, p.Display))
		}
	}

	if data.DueDate != nil {
		sb.WriteString(fmt.Sprintf("Due:      %s\n", data.DueDate.Format("2006-01-02")))
	}
	if data.Priority != "" {
		sb.WriteString(fmt.Sprintf("Priority: %s\n", data.Priority))
	}
	if data.Assignee != "" {
		sb.WriteString(fmt.Sprintf("Assignee: %s\n", data.Assignee))
	}
	if len(data.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(data.Tags, ", ")))
	}
	return sb.String()
}

// FormatText formats parsed text data for display.
func (f *HumanFormatter) FormatText(data content.TextData) string {
	var sb strings.Builder
	sb.WriteString(data.Content + "\n")

	if m := data.Metadata; m != nil {
		writeField(&sb, "Size", m.FontSize)
		writeField(&sb, "Weight", m.FontWeight)
		writeField(&sb, "Style", m.FontStyle)
		writeField(&sb, "Align", m.TextAlign)
		writeField(&sb, "Color", m.TextColor)
	}
	return sb.String()
}

func (f *HumanFormatter) FormatAnnotation(data content.AnnotationData) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s\n", data.Type, data.Content))
	for _, p := range data.Patterns {
		sb.WriteString(fmt.Sprintf("  %-9s %s\n", p.Type, p.Value))
	}
	return sb.String()
}

func (f *HumanFormatter) FormatQuestion(data content.QuestionData) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Q (%s): %s\n", data.Type, data.Question))
	if len(data.Options) > 0 {
		sb.WriteString(fmt.Sprintf("Options: %s\n", strings.Join(data.Options, ", ")))
	}
	if data.Answer != "" {
		sb.WriteString(fmt.Sprintf("A: %s\n", data.Answer))
	}
	return sb.String()
}

func (f *HumanFormatter) FormatCode(data content.CodeData) string {
	return fmt.Sprintf("(%s)\n%s\n", data.Language, data.Code)
}

func (f *HumanFormatter) FormatImage(data content.ImageData) string {
	var sb strings.Builder
	writeField(&sb, "URL", data.URL)
	writeField(&sb, "Alt", data.Alt)
	writeField(&sb, "Caption", data.Caption)
	return sb.String()
}

func (f *HumanFormatter) FormatResource(data content.ResourceData) string {
	var sb strings.Builder
	writeField(&sb, "URL", data.URL)
	writeField(&sb, "Title", data.Title)
	writeField(&sb, "Description", data.Description)
	return sb.String()
}

func (f *HumanFormatter) FormatTrigger(t *command.Trigger) string {
	if t == nil {
		return "No trigger at cursor.\n"
	}
	state := "exact"
	if t.IsPartial {
		state = "partial"
	}
	return fmt.Sprintf("%s trigger %q (%s) at %d-%d\n", t.Type, t.Text, state, t.Start, t.End)
}

func (f *HumanFormatter) FormatSwitch(res command.SwitchResult) string {
	if !res.HasSwitch {
		return "No node-type switch.\n"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Switch to %s (trigger %s)\n", res.NodeType, res.Trigger))
	sb.WriteString(fmt.Sprintf("Text:   %q\n", res.ProcessedText))
	if res.RemainingContent != "" {
		sb.WriteString(fmt.Sprintf("Rest:   %q\n", res.RemainingContent))
	}
	return sb.String()
}

func (f *HumanFormatter) FormatCommandList(cmds []*command.Command) string {
	if len(cmds) == 0 {
		return "No commands found.\n"
	}
	var sb strings.Builder
	for _, c := range cmds {
		sb.WriteString(fmt.Sprintf("%-12s %-18s %s\n", c.Trigger, c.Label, c.Description))
	}
	return sb.String()
}

func (f *HumanFormatter) FormatResult(res *command.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Text:   %q\n", res.Text))
	sb.WriteString(fmt.Sprintf("Cursor: %d\n", res.CursorPosition))
	writeField(&sb, "Node type", res.NodeType)
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats an informational message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func writeField(sb *strings.Builder, label, value string) {
	if value != "" {
		sb.WriteString(fmt.Sprintf("%s: %s\n", label, value))
	}
}
