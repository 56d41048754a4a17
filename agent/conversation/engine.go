package conversation

import (
	"context"
	"errors"
	"strings"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
	toolx "github.com/matziplab/matzip-agent/agent/tool"
)

const contextHeader = "다음은 관련 리뷰입니다:\n"

// Engine runs one query through the retrieve-then-decide, dispatch-then-
// finalize cycle. The model sees retrieved review context before choosing
// between a direct answer and structured lookups, and tool outputs are
// resubmitted so the model composes them into natural language instead of
// dumping raw results at the user.
type Engine struct {
	completer contractx.Completer
	retriever contractx.Retriever
	tools     *toolx.Set
}

func NewEngine(completer contractx.Completer, retriever contractx.Retriever, tools *toolx.Set) (*Engine, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if retriever == nil {
		return nil, errors.New("retriever is required")
	}
	if tools == nil {
		return nil, errors.New("tool set is required")
	}
	return &Engine{
		completer: completer,
		retriever: retriever,
		tools:     tools,
	}, nil
}

// Ask processes one turn and returns the final answer. The turn's entries are
// committed to the conversation only after every upstream call has succeeded:
// a failed turn leaves the history exactly as it was.
func (e *Engine) Ask(ctx context.Context, conv *Conversation, query string) (string, error) {
	conv.mu.Lock()
	defer conv.mu.Unlock()

	passages, err := e.retriever.Retrieve(ctx, query)
	if err != nil {
		return "", err
	}

	staged := []contractx.Entry{
		contractx.UserEntry(query),
		contractx.AssistantEntry(contextHeader + joinPassages(passages)),
	}

	history := append(conv.snapshot(), staged...)
	first, err := e.completer.Complete(ctx, history, e.tools.Schemas())
	if err != nil {
		return "", err
	}

	if len(first.ToolCalls) == 0 {
		answer := strings.TrimSpace(first.Text)
		conv.commit(append(staged, contractx.AssistantEntry(answer))...)
		return answer, nil
	}

	// Dispatch sequentially, preserving the model's requested call order.
	pending := contractx.PendingCallsEntry(first.ToolCalls)
	results := make([]contractx.Entry, 0, len(first.ToolCalls))
	for _, call := range first.ToolCalls {
		results = append(results, contractx.ToolResultEntry(call, e.tools.Dispatch(call)))
	}

	followUp := append(history, pending)
	followUp = append(followUp, results...)

	// Second call without tools: it must produce the final answer.
	final, err := e.completer.Complete(ctx, followUp, nil)
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(final.Text)
	turn := append(staged, pending)
	turn = append(turn, results...)
	turn = append(turn, contractx.AssistantEntry(answer))
	conv.commit(turn...)
	return answer, nil
}

func joinPassages(passages []contractx.Passage) string {
	texts := make([]string, 0, len(passages))
	for _, p := range passages {
		texts = append(texts, p.Text())
	}
	return strings.Join(texts, "\n")
}
