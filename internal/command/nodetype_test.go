package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessNodeTypeSwitchTrailingTrigger(t *testing.T) {
	got := ProcessNodeTypeSwitch("Buy milk $task", 14)

	require.True(t, got.HasSwitch)
	assert.Equal(t, "task", got.NodeType)
	assert.Equal(t, "$task", got.Trigger)
	assert.Equal(t, "Buy milk", got.ProcessedText)
	assert.Equal(t, "Buy milk $task", got.OriginalText)
	assert.Empty(t, got.RemainingContent)
}

func TestProcessNodeTypeSwitchLeadingTrigger(t *testing.T) {
	got := ProcessNodeTypeSwitch("$code fmt.Println(1)", 5)

	require.True(t, got.HasSwitch)
	assert.Equal(t, "code", got.NodeType)
	assert.Equal(t, "fmt.Println(1)", got.ProcessedText)
	assert.Equal(t, "fmt.Println(1)", got.RemainingContent)
}

func TestProcessNodeTypeSwitchNewlineSeparatedContent(t *testing.T) {
	got := ProcessNodeTypeSwitch("$task\nBuy milk", 5)

	require.True(t, got.HasSwitch)
	assert.Equal(t, "task", got.NodeType)
	assert.Equal(t, "Buy milk", got.ProcessedText)
	assert.Equal(t, "Buy milk", got.RemainingContent)
	assert.Equal(t, len("Buy milk"), got.CursorPosition)
}

func TestProcessNodeTypeSwitchPreservesLeadingWhitespace(t *testing.T) {
	got := ProcessNodeTypeSwitch("  $note hello", 7)
	require.True(t, got.HasSwitch)
	assert.Equal(t, "  hello", got.ProcessedText)
}

func TestProcessNodeTypeSwitchUnknownTrigger(t *testing.T) {
	got := ProcessNodeTypeSwitch("Buy milk $rocket", 16)

	assert.False(t, got.HasSwitch)
	assert.Equal(t, "Buy milk $rocket", got.ProcessedText, "unknown triggers leave text unchanged")
	assert.Empty(t, got.NodeType)
	assert.Equal(t, 16, got.CursorPosition)
}

func TestProcessNodeTypeSwitchNoTrigger(t *testing.T) {
	got := ProcessNodeTypeSwitch("plain text", 5)
	assert.False(t, got.HasSwitch)
	assert.Equal(t, "plain text", got.ProcessedText)
}

func TestProcessNodeTypeSwitchAliases(t *testing.T) {
	got := ProcessNodeTypeSwitch("$todo buy milk", 5)
	require.True(t, got.HasSwitch)
	assert.Equal(t, "task", got.NodeType)

	got = ProcessNodeTypeSwitch("$link docs", 5)
	require.True(t, got.HasSwitch)
	assert.Equal(t, "resource", got.NodeType)
}

func TestShouldAutoProcessSwitch(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		currentType string
		want        bool
	}{
		{"type change with content", "Buy milk $task", "note", true},
		{"type change no content", "$task", "note", true},
		{"same type", "Buy milk $task", "task", false},
		{"no trigger", "Buy milk", "note", false},
		{"unknown trigger", "Buy milk $rocket", "note", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldAutoProcessSwitch(tt.text, len(tt.text), tt.currentType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeTypeFor(t *testing.T) {
	typ, ok := NodeTypeFor("TASK")
	require.True(t, ok)
	assert.Equal(t, "task", typ)

	_, ok = NodeTypeFor("rocket")
	assert.False(t, ok)
}
