package llm

import (
	"context"
	"fmt"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
	openaix "github.com/matziplab/matzip-agent/pkg/openai"
)

// Embedder produces query vectors via the OpenAI embeddings API.
type Embedder struct {
	client *openaisdk.Client
	model  string
}

var _ contractx.Embedder = (*Embedder)(nil)

func NewEmbedder(client *openaisdk.Client, cfg openaix.Config) *Embedder {
	return &Embedder{
		client: client,
		model:  cfg.EmbeddingModel,
	}
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.Embeddings.New(ctx, openaisdk.EmbeddingNewParams{
		Model: openaisdk.EmbeddingModel(e.model),
		Input: openaisdk.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: embedding response has no data", contractx.ErrModelInvoke)
	}
	return resp.Data[0].Embedding, nil
}
