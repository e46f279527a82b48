// Package output formats parse and command results for the CLI, in either
// human-readable or JSON form.
package output

import (
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/command"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/content"
	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/task"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTaskData(data task.ParsedData) string
	FormatText(data content.TextData) string
	FormatAnnotation(data content.AnnotationData) string
	FormatQuestion(data content.QuestionData) string
	FormatCode(data content.CodeData) string
	FormatImage(data content.ImageData) string
	FormatResource(data content.ResourceData) string
	FormatTrigger(t *command.Trigger) string
	FormatSwitch(res command.SwitchResult) string
	FormatCommandList(cmds []*command.Command) string
	FormatResult(res *command.Result) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
