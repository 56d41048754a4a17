package contract

import "fmt"

// Role tags a conversation history entry.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Entry is one element of a conversation history. An assistant entry either
// carries text or a set of pending tool calls; a tool entry carries the
// result for exactly one call, correlated by ToolCallID.
type Entry struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
}

// ToolCall is a model-requested tool invocation. Arguments is the raw JSON
// object produced by the model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Completion is one model turn: either direct text or one or more tool calls
// (the protocol permits both, text wins only when no calls are present).
type Completion struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Passage is a retrieved review snippet used as grounding context.
type Passage struct {
	StoreName string  `json:"store_name"`
	Sentiment string  `json:"sentiment,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	Content   string  `json:"content"`
}

// Text renders the passage the way it was embedded: "[가게이름] 리뷰내용".
func (p Passage) Text() string {
	if p.StoreName == "" {
		return p.Content
	}
	return fmt.Sprintf("[%s] %s", p.StoreName, p.Content)
}

func UserEntry(text string) Entry {
	return Entry{Role: RoleUser, Content: text}
}

func AssistantEntry(text string) Entry {
	return Entry{Role: RoleAssistant, Content: text}
}

func PendingCallsEntry(calls []ToolCall) Entry {
	return Entry{Role: RoleAssistant, ToolCalls: calls}
}

func ToolResultEntry(call ToolCall, result string) Entry {
	return Entry{
		Role:       RoleTool,
		Content:    result,
		ToolCallID: call.ID,
		ToolName:   call.Name,
	}
}
