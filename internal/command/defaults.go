package command

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RefMatch is one node resolved by the reference search command.
type RefMatch struct {
	NodeID   string `json:"node_id"`
	Content  string `json:"node_content"`
	MapID    string `json:"map_id"`
	MapTitle string `json:"map_title"`
}

// RefSearchFunc resolves free text to existing nodes across maps. A nil func
// degrades the /ref command to zero matches.
type RefSearchFunc func(ctx context.Context, query string) ([]RefMatch, error)

// RegisterDefaults populates the registry with the built-in node-type and
// slash commands. Callers own the registry; tests Clear() and re-register.
func RegisterDefaults(r *Registry, ref RefSearchFunc) {
	registerNodeTypeCommands(r)
	registerFormattingCommands(r)
	registerInsertCommands(r)
	registerTemplateCommands(r)
	registerReferenceCommand(r, ref)
}

func registerNodeTypeCommands(r *Registry) {
	entries := []struct {
		keyword  string
		label    string
		keywords []string
	}{
		{"task", "Task", []string{"todo", "checkbox"}},
		{"code", "Code", []string{"snippet", "monospace"}},
		{"note", "Note", []string{"plain"}},
		{"text", "Text", []string{"styled"}},
		{"question", "Question", []string{"ask", "answer"}},
		{"annotation", "Annotation", []string{"comment", "remark"}},
		{"image", "Image", []string{"picture", "photo"}},
		{"resource", "Resource", []string{"link", "bookmark"}},
	}

	for _, e := range entries {
		nodeType, _ := NodeTypeFor(e.keyword)
		r.Register(&Command{
			ID:          "node-" + e.keyword,
			Trigger:     "$" + e.keyword,
			Label:       e.label,
			Description: "Switch this node to a " + e.keyword + " node",
			Category:    "node",
			TriggerType: TriggerNodeType,
			Keywords:    e.keywords,
			Priority:    10,
			Action:      nodeSwitchAction(nodeType),
		})
	}
}

// nodeSwitchAction strips the trigger and reports the node-type change; the
// remaining text and cursor are otherwise untouched.
func nodeSwitchAction(nodeType string) ActionFunc {
	return func(ctx Context) (Result, error) {
		text, start := spliceTrigger(ctx, "")
		return Result{
			Text:           text,
			CursorPosition: clamp(start, len(text)),
			NodeType:       nodeType,
			ClearTrigger:   true,
		}, nil
	}
}

func registerFormattingCommands(r *Registry) {
	entries := []struct {
		trigger, label, prefix, suffix string
		keywords                       []string
	}{
		{"/bold", "Bold", "**", "**", []string{"strong", "emphasis"}},
		{"/italic", "Italic", "*", "*", []string{"emphasis"}},
		{"/code", "Inline code", "`", "`", []string{"monospace", "snippet"}},
	}

	for _, e := range entries {
		r.Register(&Command{
			ID:          "format-" + strings.TrimPrefix(e.trigger, "/"),
			Trigger:     e.trigger,
			Label:       e.label,
			Description: "Format text as " + e.label,
			Category:    "formatting",
			TriggerType: TriggerSlash,
			Keywords:    e.keywords,
			Priority:    20,
			Action:      wrapAction(e.prefix, e.suffix),
		})
	}

	r.Register(&Command{
		ID:          "format-link",
		Trigger:     "/link",
		Label:       "Link",
		Description: "Insert a link",
		Category:    "formatting",
		TriggerType: TriggerSlash,
		Keywords:    []string{"url", "href"},
		Priority:    20,
		Action:      ActionFunc(linkAction),
	})
}

// wrapAction wraps the selection in prefix/suffix markers, or inserts an
// empty marker pair with the cursor placed between them.
func wrapAction(prefix, suffix string) ActionFunc {
	return func(ctx Context) (Result, error) {
		if sel := ctx.SelectedText(); sel != "" {
			text, end := wrapSelection(ctx, prefix, sel, suffix)
			return Result{Text: text, CursorPosition: end, ClearTrigger: true}, nil
		}
		text, start := spliceTrigger(ctx, prefix+suffix)
		return Result{
			Text:           text,
			CursorPosition: start + len(prefix),
			ClearTrigger:   true,
		}, nil
	}
}

// linkAction inserts [text](url) syntax. Without a selection the cursor
// lands at the link-text placeholder; with one, the selection becomes the
// link text and the cursor lands at the url placeholder.
func linkAction(ctx Context) (Result, error) {
	if sel := ctx.SelectedText(); sel != "" {
		text, end := wrapSelection(ctx, "[", sel, "]()")
		return Result{Text: text, CursorPosition: end - 1, ClearTrigger: true}, nil
	}
	text, start := spliceTrigger(ctx, "[]()")
	return Result{Text: text, CursorPosition: start + 1, ClearTrigger: true}, nil
}

func registerInsertCommands(r *Registry) {
	entries := []struct {
		trigger, label, description string
		keywords                    []string
		insert                      func() string
	}{
		{"/date", "Date", "Insert today's date", []string{"calendar", "when"},
			func() string { return time.Now().Format("January 2, 2006") }},
		{"/time", "Time", "Insert the current time", []string{"clock", "now"},
			func() string { return time.Now().Format("3:04 PM") }},
		{"/today", "Today", "Insert today's date (ISO)", []string{"date", "iso"},
			func() string { return time.Now().Format("2006-01-02") }},
		{"/divider", "Divider", "Insert a horizontal divider", []string{"rule", "separator"},
			func() string { return "\n---\n" }},
	}

	for _, e := range entries {
		insert := e.insert
		r.Register(&Command{
			ID:          "insert-" + strings.TrimPrefix(e.trigger, "/"),
			Trigger:     e.trigger,
			Label:       e.label,
			Description: e.description,
			Category:    "insert",
			TriggerType: TriggerSlash,
			Keywords:    e.keywords,
			Priority:    30,
			Action: ActionFunc(func(ctx Context) (Result, error) {
				content := insert()
				text, start := spliceTrigger(ctx, content)
				return Result{
					Text:           text,
					CursorPosition: start + len(content),
					ClearTrigger:   true,
				}, nil
			}),
		})
	}
}

const meetingTemplate = `# Meeting Notes

Date: %s
Attendees:

## Agenda
-

## Action Items
- [ ] `

func registerTemplateCommands(r *Registry) {
	r.Register(&Command{
		ID:          "template-meeting",
		Trigger:     "/meeting",
		Label:       "Meeting notes",
		Description: "Insert a meeting notes template",
		Category:    "template",
		TriggerType: TriggerSlash,
		Keywords:    []string{"notes", "agenda", "attendees"},
		Priority:    50,
		Action: ActionFunc(func(ctx Context) (Result, error) {
			content := fmt.Sprintf(meetingTemplate, time.Now().Format("2006-01-02"))
			text, start := spliceTrigger(ctx, content)
			return Result{
				Text:           text,
				CursorPosition: start + len(content),
				Metadata:       map[string]any{"template": "meeting"},
				ClearTrigger:   true,
			}, nil
		}),
	})

	r.Register(&Command{
		ID:          "template-todo",
		Trigger:     "/todo",
		Label:       "Todo list",
		Description: "Insert an empty todo list",
		Category:    "template",
		TriggerType: TriggerSlash,
		Keywords:    []string{"tasks", "checklist"},
		Priority:    50,
		Action: ActionFunc(func(ctx Context) (Result, error) {
			const content = "[ ] \n[ ] \n[ ] "
			text, start := spliceTrigger(ctx, content)
			return Result{
				Text:           text,
				CursorPosition: start + len("[ ] "),
				Metadata:       map[string]any{"template": "todo"},
				NodeType:       "task",
				ClearTrigger:   true,
			}, nil
		}),
	})
}

func registerReferenceCommand(r *Registry, ref RefSearchFunc) {
	r.Register(&Command{
		ID:          "reference-search",
		Trigger:     "/ref",
		Label:       "Reference",
		Description: "Link to an existing node across maps",
		Category:    "reference",
		TriggerType: TriggerSlash,
		Keywords:    []string{"search", "node", "mention"},
		Priority:    40,
		Action: ActionFunc(func(ctx Context) (Result, error) {
			text, start := spliceTrigger(ctx, "")
			query := strings.TrimSpace(text)

			var matches []RefMatch
			if ref != nil && query != "" {
				// Transport and server errors degrade to zero matches.
				if found, err := ref(context.Background(), query); err == nil {
					matches = found
				}
			}
			if matches == nil {
				matches = []RefMatch{}
			}
			return Result{
				Text:           text,
				CursorPosition: clamp(start, len(text)),
				Metadata:       map[string]any{"references": matches, "query": query},
				ClearTrigger:   true,
			}, nil
		}),
	})
}

// spliceTrigger replaces the trigger text in the context's buffer with the
// insertion, returning the new buffer and the splice offset.
func spliceTrigger(ctx Context, insertion string) (string, int) {
	start := clamp(ctx.TriggerPosition, len(ctx.CurrentText))
	end := clamp(start+len(ctx.TriggerText), len(ctx.CurrentText))
	return ctx.CurrentText[:start] + insertion + ctx.CurrentText[end:], start
}

// wrapSelection removes the trigger, wraps the selection in prefix/suffix,
// and returns the new buffer plus the offset just past the wrapped text.
func wrapSelection(ctx Context, prefix, sel, suffix string) (string, int) {
	text, _ := spliceTrigger(ctx, "")

	start := ctx.Selection.Start
	end := ctx.Selection.End
	removedAt := clamp(ctx.TriggerPosition, len(ctx.CurrentText))
	if start >= removedAt+len(ctx.TriggerText) {
		start -= len(ctx.TriggerText)
		end -= len(ctx.TriggerText)
	}
	start = clamp(start, len(text))
	end = clamp(end, len(text))

	wrapped := text[:start] + prefix + sel + suffix + text[end:]
	return wrapped, start + len(prefix) + len(sel) + len(suffix)
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
