package llm

import (
	"context"
	"fmt"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
	openaix "github.com/matziplab/matzip-agent/pkg/openai"
)

// Completer backs the model-completion boundary with the OpenAI chat
// completions API.
type Completer struct {
	client      *openaisdk.Client
	model       string
	temperature float64
	maxTokens   int
}

var _ contractx.Completer = (*Completer)(nil)

func NewCompleter(client *openaisdk.Client, cfg openaix.Config) *Completer {
	return &Completer{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxCompletionToken,
	}
}

// Complete runs one model call over the history. Offering tools permits the
// model to answer directly or request invocations ("auto" tool choice); with
// no tools the model must produce text.
func (c *Completer) Complete(
	ctx context.Context,
	history []contractx.Entry,
	tools []openaisdk.ChatCompletionToolParam,
) (contractx.Completion, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(c.model),
		Messages: toMessageParams(history),
	}
	if c.temperature >= 0 {
		params.Temperature = openaisdk.Float(c.temperature)
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(int64(c.maxTokens))
	}
	if len(tools) > 0 {
		params.Tools = tools
		params.ToolChoice = openaisdk.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openaisdk.String("auto"),
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return contractx.Completion{}, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return contractx.Completion{}, fmt.Errorf("%w: completion has no choices", contractx.ErrModelInvoke)
	}

	msg := resp.Choices[0].Message
	out := contractx.Completion{Text: msg.Content}
	for _, call := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, contractx.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return out, nil
}

// toMessageParams converts neutral history entries to SDK message params.
// Assistant entries with pending calls and tool-result entries keep their
// call-id correlation so the follow-up request is well formed.
func toMessageParams(history []contractx.Entry) []openaisdk.ChatCompletionMessageParamUnion {
	msgs := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(history))
	for _, entry := range history {
		switch entry.Role {
		case contractx.RoleSystem:
			msgs = append(msgs, openaisdk.SystemMessage(entry.Content))
		case contractx.RoleUser:
			msgs = append(msgs, openaisdk.UserMessage(entry.Content))
		case contractx.RoleAssistant:
			if len(entry.ToolCalls) == 0 {
				msgs = append(msgs, openaisdk.AssistantMessage(entry.Content))
				continue
			}
			calls := make([]openaisdk.ChatCompletionMessageToolCallParam, 0, len(entry.ToolCalls))
			for _, call := range entry.ToolCalls {
				calls = append(calls, openaisdk.ChatCompletionMessageToolCallParam{
					ID: call.ID,
					Function: openaisdk.ChatCompletionMessageToolCallFunctionParam{
						Name:      call.Name,
						Arguments: call.Arguments,
					},
				})
			}
			msgs = append(msgs, openaisdk.ChatCompletionMessageParamUnion{
				OfAssistant: &openaisdk.ChatCompletionAssistantMessageParam{
					ToolCalls: calls,
				},
			})
		case contractx.RoleTool:
			msgs = append(msgs, openaisdk.ToolMessage(entry.Content, entry.ToolCallID))
		}
	}
	return msgs
}
