package content

import (
	"regexp"
	"strings"
)

// Question types inferred from markers in the question text.
const (
	QuestionOpen           = "open"
	QuestionYesNo          = "yes-no"
	QuestionMultipleChoice = "multiple-choice"
)

// QuestionData is the result of parsing question node input.
type QuestionData struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer,omitempty"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
}

var (
	yesNoRe   = regexp.MustCompile(`(?i)\[\s*yes\s*/\s*no\s*\]`)
	choicesRe = regexp.MustCompile(`\[([^\[\]]*,[^\[\]]*)\]`)
)

// ParseQuestion splits input into question and answer sections. Answer mode
// starts at the first line prefixed "a:" or "answer:" (case-insensitive) and
// holds for the rest of the input. The question type is inferred from a
// [yes/no] marker or a comma-separated bracket list of options.
func ParseQuestion(input string) QuestionData {
	var questionLines, answerLines []string
	answerMode := false

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, "answer:"):
			answerMode = true
			answerLines = append(answerLines, strings.TrimSpace(trimmed[len("answer:"):]))
		case strings.HasPrefix(lower, "a:"):
			answerMode = true
			answerLines = append(answerLines, strings.TrimSpace(trimmed[len("a:"):]))
		case answerMode:
			answerLines = append(answerLines, trimmed)
		default:
			questionLines = append(questionLines, trimmed)
		}
	}

	question := collapse(strings.Join(questionLines, " "))
	answer := collapse(strings.Join(answerLines, " "))

	data := QuestionData{Type: QuestionOpen, Answer: answer}

	if yesNoRe.MatchString(question) {
		data.Type = QuestionYesNo
		question = collapse(yesNoRe.ReplaceAllString(question, ""))
	} else if m := choicesRe.FindStringSubmatch(question); m != nil {
		var options []string
		for _, opt := range strings.Split(m[1], ",") {
			if opt = strings.TrimSpace(opt); opt != "" {
				options = append(options, opt)
			}
		}
		if len(options) > 1 {
			data.Type = QuestionMultipleChoice
			data.Options = options
			question = collapse(strings.Replace(question, m[0], "", 1))
		}
	}

	data.Question = question
	return data
}
