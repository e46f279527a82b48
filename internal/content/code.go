package content

import (
	"regexp"
	"strings"
)

// DefaultLanguage is used when code input carries no language hint.
const DefaultLanguage = "plaintext"

// CodeData is the result of parsing code node input.
type CodeData struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

var (
	fenceRe = regexp.MustCompile("(?s)^\\s*```([\\w+-]*)[ \\t]*\\n?(.*?)```\\s*$")
	langRe  = regexp.MustCompile(`(?i)lang:([\w+-]+)`)
)

// ParseCode strips an optional fenced block or lang: token and returns the
// code body with its language hint.
func ParseCode(input string) CodeData {
	if m := fenceRe.FindStringSubmatch(input); m != nil {
		lang := strings.ToLower(m[1])
		if lang == "" {
			lang = DefaultLanguage
		}
		return CodeData{Code: strings.Trim(m[2], "\n"), Language: lang}
	}

	if m := langRe.FindStringSubmatch(input); m != nil {
		code := strings.TrimSpace(strings.Replace(input, m[0], "", 1))
		return CodeData{Code: code, Language: strings.ToLower(m[1])}
	}

	return CodeData{Code: strings.TrimSpace(input), Language: DefaultLanguage}
}
