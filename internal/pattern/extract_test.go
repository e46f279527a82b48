package pattern

import (
	"strings"
	"testing"
)

func TestExtractSinglePatterns(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantClean string
		wantType  Type
		wantValue string
	}{
		{"date", "Ship it @friday", "Ship it", TypeDate, "friday"},
		{"iso date", "Release @2025-10-10 notes", "Release notes", TypeDate, "2025-10-10"},
		{"priority", "Fix bug #high", "Fix bug", TypePriority, "high"},
		{"hex color", "Banner color:#10b981", "Banner", TypeColor, "#10b981"},
		{"named color", "Banner color:red", "Banner", TypeColor, "red"},
		{"rgb color", "Banner color:rgb(16,185,129)", "Banner", TypeColor, "rgb(16,185,129)"},
		{"tag", "Deploy [infra]", "Deploy", TypeTag, "infra"},
		{"assignee", "Review +alice", "Review", TypeAssignee, "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if got.CleanText != tt.wantClean {
				t.Errorf("CleanText = %q, want %q", got.CleanText, tt.wantClean)
			}
			if len(got.Patterns) != 1 {
				t.Fatalf("got %d patterns, want 1: %+v", len(got.Patterns), got.Patterns)
			}
			p := got.Patterns[0]
			if p.Type != tt.wantType || p.Value != tt.wantValue {
				t.Errorf("pattern = %+v, want type %s value %q", p, tt.wantType, tt.wantValue)
			}
		})
	}
}

func TestExtractMultiplePatternsSorted(t *testing.T) {
	got := Extract("Preview PR @2025-10-10 #low [todo] +frontend color:#10b981")
	if got.CleanText != "Preview PR" {
		t.Errorf("CleanText = %q, want %q", got.CleanText, "Preview PR")
	}
	if len(got.Patterns) != 5 {
		t.Fatalf("got %d patterns, want 5", len(got.Patterns))
	}
	for i := 1; i < len(got.Patterns); i++ {
		if got.Patterns[i-1].Position >= got.Patterns[i].Position {
			t.Errorf("patterns not sorted ascending by position: %+v", got.Patterns)
		}
	}
	wantTypes := []Type{TypeDate, TypePriority, TypeTag, TypeAssignee, TypeColor}
	for i, want := range wantTypes {
		if got.Patterns[i].Type != want {
			t.Errorf("pattern %d type = %s, want %s", i, got.Patterns[i].Type, want)
		}
	}
}

func TestExtractOverlapEarliestWins(t *testing.T) {
	// The color matcher starts at "color:", the priority matcher at "#".
	// The earlier-starting color span must win and the priority hit is
	// dropped entirely, not merged.
	got := Extract("color:#10b981")
	if len(got.Patterns) != 1 {
		t.Fatalf("got %d patterns, want 1: %+v", len(got.Patterns), got.Patterns)
	}
	if got.Patterns[0].Type != TypeColor || got.Patterns[0].Value != "#10b981" {
		t.Errorf("pattern = %+v, want color #10b981", got.Patterns[0])
	}
}

func TestExtractCheckboxNeverBecomesTag(t *testing.T) {
	for _, input := range []string{"[x] done", "[X] done", "[ ] open", "[] open", "[;] done", "[,] done", "[ x ] done"} {
		got := Extract(input)
		for _, p := range got.Patterns {
			if p.Type == TypeTag {
				t.Errorf("Extract(%q) produced tag %+v", input, p)
			}
		}
		if !strings.Contains(got.CleanText, "[") {
			t.Errorf("Extract(%q) removed checkbox marker: %q", input, got.CleanText)
		}
	}

	// A real tag still extracts.
	got := Extract("[todo] work")
	if len(got.Patterns) != 1 || got.Patterns[0].Type != TypeTag {
		t.Fatalf("tag not extracted: %+v", got.Patterns)
	}
}

func TestExtractIdempotent(t *testing.T) {
	inputs := []string{
		"Preview PR @2025-10-10 #low [todo] +frontend color:#10b981",
		"Ship @friday with +bob [release, infra]",
		"plain text with no tokens",
		"[x] not a tag",
	}
	for _, input := range inputs {
		first := Extract(input)
		second := Extract(first.CleanText)
		if len(second.Patterns) != 0 {
			t.Errorf("Extract(%q) clean text %q still yields patterns: %+v",
				input, first.CleanText, second.Patterns)
		}
		if second.CleanText != first.CleanText {
			t.Errorf("clean text not stable: %q -> %q", first.CleanText, second.CleanText)
		}
	}
}

func TestExtractWhitespaceCollapse(t *testing.T) {
	got := Extract("a   @friday \n\n b")
	if got.CleanText != "a b" {
		t.Errorf("CleanText = %q, want %q", got.CleanText, "a b")
	}
}

func TestExtractEmptyAndAdversarial(t *testing.T) {
	for _, input := range []string{"", "   ", "@@@###[[[]]]+++", "日本語テキスト @monday", strings.Repeat("#x ", 500)} {
		got := Extract(input) // must not panic
		if got.CleanText != strings.TrimSpace(got.CleanText) {
			t.Errorf("CleanText not trimmed for %q", input)
		}
	}
}

func TestDisplayColor(t *testing.T) {
	tests := []struct{ in, want string }{
		{"#10b981", "#10B981"},
		{"rgb(1,2,3)", "rgb(1,2,3)"},
		{"red", "#EF4444"},
		{"chartreuse", "chartreuse"},
	}
	for _, tt := range tests {
		if got := DisplayColor(tt.in); got != tt.want {
			t.Errorf("DisplayColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayPriority(t *testing.T) {
	if got := DisplayPriority("high"); got != "High Priority" {
		t.Errorf("DisplayPriority(high) = %q", got)
	}
	if got := DisplayPriority("whenever"); got != "Whenever" {
		t.Errorf("DisplayPriority(whenever) = %q", got)
	}
}

func TestDisplayDateWeekday(t *testing.T) {
	if got := DisplayDate("friday"); got != "Friday" {
		t.Errorf("DisplayDate(friday) = %q", got)
	}
	if got := DisplayDate("today"); got != "Today" {
		t.Errorf("DisplayDate(today) = %q", got)
	}
	if got := DisplayDate("garbage"); got != "garbage" {
		t.Errorf("DisplayDate(garbage) = %q", got)
	}
}
