package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopAction() Action {
	return ActionFunc(func(ctx Context) (Result, error) {
		return Result{Text: ctx.CurrentText, CursorPosition: ctx.CursorPosition}, nil
	})
}

func newCmd(id, trigger string, priority int) *Command {
	return &Command{
		ID:          id,
		Trigger:     trigger,
		Label:       id,
		TriggerType: TriggerSlash,
		Priority:    priority,
		Action:      noopAction(),
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(newCmd("one", "/one", 0))

	require.NotNil(t, r.ByTrigger("/one"))
	require.NotNil(t, r.ByID("one"))
	assert.Nil(t, r.ByTrigger("/missing"))
	assert.Nil(t, r.ByID("missing"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(newCmd("one", "/one", 0))
	r.Register(&Command{ID: "one", Trigger: "/uno", Label: "replacement",
		TriggerType: TriggerSlash, Action: noopAction()})

	assert.Equal(t, 1, r.Len())
	assert.Nil(t, r.ByTrigger("/one"), "displaced trigger key must be removed")
	require.NotNil(t, r.ByTrigger("/uno"))
	assert.Equal(t, "replacement", r.ByTrigger("/uno").Label)
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, nil)
	require.NotZero(t, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Nil(t, r.ByTrigger("/bold"))

	// Re-registration after clear is deterministic.
	RegisterDefaults(r, nil)
	assert.NotNil(t, r.ByTrigger("/bold"))
}

func TestRegistrySearchOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register(newCmd("c", "/charlie", 0)) // unset priority sorts as 100
	r.Register(newCmd("a", "/alpha", 5))
	r.Register(newCmd("b", "/bravo", 5))
	r.Register(newCmd("z", "/zulu", 200))

	got := r.Search(SearchFilter{})
	require.Len(t, got, 4)
	assert.Equal(t, "/alpha", got[0].Trigger)
	assert.Equal(t, "/bravo", got[1].Trigger, "equal priorities tie-break by trigger")
	assert.Equal(t, "/charlie", got[2].Trigger)
	assert.Equal(t, "/zulu", got[3].Trigger)
}

func TestRegistrySearchQueryMatching(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{ID: "bold", Trigger: "/bold", Label: "Bold",
		Description: "Make text strong", Keywords: []string{"emphasis"},
		TriggerType: TriggerSlash, Action: noopAction()})
	r.Register(newCmd("other", "/other", 0))

	assert.Len(t, r.Search(SearchFilter{Query: "BOLD"}), 1, "label match is case-insensitive")
	assert.Len(t, r.Search(SearchFilter{Query: "strong"}), 1, "description matches")
	assert.Len(t, r.Search(SearchFilter{Query: "emphasis"}), 1, "keywords match")
	assert.Len(t, r.Search(SearchFilter{Query: "/bo"}), 1, "trigger substring matches")
	assert.Empty(t, r.Search(SearchFilter{Query: "nothing"}))
}

func TestRegistrySearchFilters(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, nil)

	for _, c := range r.Search(SearchFilter{Category: "formatting"}) {
		assert.Equal(t, "formatting", c.Category)
	}
	for _, c := range r.Search(SearchFilter{TriggerType: TriggerNodeType}) {
		assert.Equal(t, TriggerNodeType, c.TriggerType)
	}

	partial := r.Search(SearchFilter{TriggerPattern: "$ta"})
	require.NotEmpty(t, partial)
	for _, c := range partial {
		assert.Contains(t, c.Trigger, "$ta")
	}

	limited := r.Search(SearchFilter{Limit: 3})
	assert.Len(t, limited, 3)
}

func TestRegistryDefaultsPriorityOrder(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, nil)

	got := r.Search(SearchFilter{})
	last := 0
	for _, c := range got {
		p := c.effectivePriority()
		assert.GreaterOrEqual(t, p, last, "results must be sorted ascending by priority")
		last = p
	}
}
