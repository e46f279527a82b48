package command

import (
	"sort"
	"strings"
	"sync"
)

// Registry is an in-memory catalog of commands keyed by trigger and id. It is
// an explicit, constructible instance owned by the composition root; tests
// build their own and Clear() between cases. Reads are safe under concurrent
// use; Register and Clear are expected at startup or test setup.
type Registry struct {
	mu        sync.RWMutex
	byID      map[string]*Command
	byTrigger map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:      map[string]*Command{},
		byTrigger: map[string]*Command{},
	}
}

// Register adds a command, overwriting any existing entry with the same id or
// trigger. Displaced entries are removed under both keys so id and trigger
// stay unique.
func (r *Registry) Register(cmd *Command) {
	if cmd == nil || cmd.ID == "" || cmd.Trigger == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if old := r.byID[cmd.ID]; old != nil {
		delete(r.byTrigger, old.Trigger)
	}
	if old := r.byTrigger[cmd.Trigger]; old != nil {
		delete(r.byID, old.ID)
	}
	r.byID[cmd.ID] = cmd
	r.byTrigger[cmd.Trigger] = cmd
}

// ByTrigger returns the command registered under trigger, or nil.
func (r *Registry) ByTrigger(trigger string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byTrigger[trigger]
}

// ByID returns the command registered under id, or nil.
func (r *Registry) ByID(id string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// ByCategory returns all commands in a category, priority-ordered.
func (r *Registry) ByCategory(category string) []*Command {
	return r.collect(func(c *Command) bool { return c.Category == category })
}

// ByTriggerType returns all commands of one trigger type, priority-ordered.
func (r *Registry) ByTriggerType(tt TriggerType) []*Command {
	return r.collect(func(c *Command) bool { return c.TriggerType == tt })
}

// All returns every registered command, priority-ordered.
func (r *Registry) All() []*Command {
	return r.collect(func(*Command) bool { return true })
}

// Len reports the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Clear removes every registered command.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = map[string]*Command{}
	r.byTrigger = map[string]*Command{}
}

// SearchFilter narrows a registry search. Zero fields are ignored. Query
// matches case-insensitively against label, description, keywords and
// trigger; TriggerPattern is a prefix filter on the trigger (for live
// completion of partial triggers).
type SearchFilter struct {
	Query          string
	Category       string
	TriggerType    TriggerType
	TriggerPattern string
	Limit          int
}

// Search returns matching commands ordered ascending by priority (unset
// priority sorts as DefaultPriority), ties broken alphabetically by trigger.
func (r *Registry) Search(f SearchFilter) []*Command {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	matches := r.collect(func(c *Command) bool {
		if f.Category != "" && c.Category != f.Category {
			return false
		}
		if f.TriggerType != "" && c.TriggerType != f.TriggerType {
			return false
		}
		if f.TriggerPattern != "" && !strings.HasPrefix(c.Trigger, f.TriggerPattern) {
			return false
		}
		if query == "" {
			return true
		}
		return matchesQuery(c, query)
	})

	if f.Limit > 0 && len(matches) > f.Limit {
		matches = matches[:f.Limit]
	}
	return matches
}

func matchesQuery(c *Command, query string) bool {
	if strings.Contains(strings.ToLower(c.Label), query) ||
		strings.Contains(strings.ToLower(c.Description), query) ||
		strings.Contains(strings.ToLower(c.Trigger), query) {
		return true
	}
	for _, kw := range c.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

// collect snapshots matching commands and sorts them by priority then
// trigger.
func (r *Registry) collect(keep func(*Command) bool) []*Command {
	r.mu.RLock()
	var out []*Command
	for _, c := range r.byID {
		if keep(c) {
			out = append(out, c)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].effectivePriority(), out[j].effectivePriority()
		if pi != pj {
			return pi < pj
		}
		return out[i].Trigger < out[j].Trigger
	})
	return out
}
