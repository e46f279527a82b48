package content

import (
	"regexp"
	"strings"
)

// ImageData is the result of parsing image node input.
type ImageData struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// ResourceData is the result of parsing resource (link) node input.
type ResourceData struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

var (
	mdImageRe = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]+)\)`)
	mdLinkRe  = regexp.MustCompile(`(^|[^!])\[([^\[\]]+)\]\(([^()]+)\)`)
)

// IsURL reports whether a token looks like a web URL.
func IsURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}

// ParseImage reads image input: a markdown image, or a bare URL with the
// remaining text as caption.
func ParseImage(input string) ImageData {
	if m := mdImageRe.FindStringSubmatch(input); m != nil {
		caption := collapse(strings.Replace(input, m[0], "", 1))
		return ImageData{URL: strings.TrimSpace(m[2]), Alt: m[1], Caption: caption}
	}

	if url, rest := splitFirstURL(input); url != "" {
		return ImageData{URL: url, Caption: rest}
	}
	return ImageData{Caption: collapse(input)}
}

// ParseResource reads resource input: a markdown link, or a bare URL with the
// remaining text as title.
func ParseResource(input string) ResourceData {
	if m := mdLinkRe.FindStringSubmatch(input); m != nil {
		full := m[2] // link text
		url := strings.TrimSpace(m[3])
		rest := collapse(strings.Replace(input, strings.TrimPrefix(m[0], m[1]), "", 1))
		return ResourceData{URL: url, Title: full, Description: rest}
	}

	if url, rest := splitFirstURL(input); url != "" {
		return ResourceData{URL: url, Title: rest}
	}
	return ResourceData{Description: collapse(input)}
}

// splitFirstURL pulls the first URL-looking token out of the input and
// returns it with the remaining text collapsed.
func splitFirstURL(input string) (string, string) {
	fields := strings.Fields(input)
	for i, f := range fields {
		if IsURL(f) {
			rest := append(append([]string{}, fields[:i]...), fields[i+1:]...)
			return f, strings.Join(rest, " ")
		}
	}
	return "", ""
}
