package conversation

import (
	"sync"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
)

// Conversation owns one session's dialogue history. The history is
// append-only within a turn and monotonically growing across turns; the only
// destructive operation is Reset, which truncates back to the system entry.
//
// mu serializes whole turns, not just entry access: Engine.Ask holds it for
// the full retrieve/complete/dispatch cycle, so concurrent turns against one
// conversation queue up instead of racing on the history.
type Conversation struct {
	id string

	mu      sync.Mutex
	entries []contractx.Entry
}

func New(id, systemPrompt string) *Conversation {
	return &Conversation{
		id:      id,
		entries: []contractx.Entry{{Role: contractx.RoleSystem, Content: systemPrompt}},
	}
}

func (c *Conversation) ID() string {
	return c.id
}

// Reset truncates the history to the system entry only. It queues behind any
// in-flight turn.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = c.entries[:1]
}

// Entries returns a copy of the current history.
func (c *Conversation) Entries() []contractx.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// snapshot copies the entry list. Caller must hold mu.
func (c *Conversation) snapshot() []contractx.Entry {
	out := make([]contractx.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// commit appends a completed turn's entries. Caller must hold mu.
func (c *Conversation) commit(entries ...contractx.Entry) {
	c.entries = append(c.entries, entries...)
}
