package contract

import (
	"context"

	openaisdk "github.com/openai/openai-go"
)

// Retriever performs semantic search over embedded review passages. Empty
// results are valid and yield an empty context block.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]Passage, error)
}

// Completer is the model-completion boundary. When tools is empty the result
// carries no tool calls and the model must answer directly.
type Completer interface {
	Complete(ctx context.Context, history []Entry, tools []openaisdk.ChatCompletionToolParam) (Completion, error)
}

// Embedder turns free text into a query vector for the retriever.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
