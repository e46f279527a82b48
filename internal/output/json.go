package output

import (
	"encoding/json"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/command"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/content"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

func (f *JSONFormatter) FormatTaskData(data task.ParsedData) string { return marshalJSON(data) }

func (f *JSONFormatter) FormatText(data content.TextData) string { return marshalJSON(data) }

func (f *JSONFormatter) FormatAnnotation(data content.AnnotationData) string {
	return marshalJSON(data)
}

func (f *JSONFormatter) FormatQuestion(data content.QuestionData) string { return marshalJSON(data) }

func (f *JSONFormatter) FormatCode(data content.CodeData) string { return marshalJSON(data) }

func (f *JSONFormatter) FormatImage(data content.ImageData) string { return marshalJSON(data) }

func (f *JSONFormatter) FormatResource(data content.ResourceData) string { return marshalJSON(data) }

func (f *JSONFormatter) FormatTrigger(t *command.Trigger) string {
	if t == nil {
		return marshalJSON(map[string]any{"trigger": nil})
	}
	return marshalJSON(t)
}

func (f *JSONFormatter) FormatSwitch(res command.SwitchResult) string { return marshalJSON(res) }

func (f *JSONFormatter) FormatCommandList(cmds []*command.Command) string {
	if cmds == nil {
		cmds = []*command.Command{}
	}
	return marshalJSON(cmds)
}

func (f *JSONFormatter) FormatResult(res *command.Result) string { return marshalJSON(res) }

func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(map[string]string{"error": err.Error()})
}

func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(map[string]string{"message": msg})
}
