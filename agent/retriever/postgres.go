package retriever

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
)

const defaultTopK = 5

type Config struct {
	DSN  string `envconfig:"DSN" split_words:"true" required:"true"`
	TopK int    `envconfig:"TOP_K" split_words:"true" default:"5"`
}

// ReviewPassage is one embedded review row. The embedding column itself is a
// pgvector value and is only touched inside SQL, never scanned.
type ReviewPassage struct {
	bun.BaseModel `bun:"table:review_passages,alias:rp"`

	ID        int64   `bun:"id,pk,autoincrement"`
	StoreName string  `bun:"store_name"`
	Sentiment string  `bun:"sentiment"`
	Rating    float64 `bun:"rating"`
	Content   string  `bun:"content"`
}

// Postgres retrieves review passages by cosine distance over pgvector.
type Postgres struct {
	db       *bun.DB
	embedder contractx.Embedder
	topK     int
}

var _ contractx.Retriever = (*Postgres)(nil)

func NewPostgres(cfg Config, embedder contractx.Embedder) (*Postgres, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: review db dsn is required", contractx.ErrValidation)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", contractx.ErrValidation)
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &Postgres{
		db:       db,
		embedder: embedder,
		topK:     topK,
	}, nil
}

func (p *Postgres) Retrieve(ctx context.Context, query string) ([]contractx.Passage, error) {
	vector, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrRetrieval, err)
	}

	var rows []ReviewPassage
	err = p.db.NewSelect().
		Model(&rows).
		OrderExpr("rp.embedding <=> ?::vector", VectorLiteral(vector)).
		Limit(p.topK).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrRetrieval, err)
	}

	passages := make([]contractx.Passage, 0, len(rows))
	for _, row := range rows {
		passages = append(passages, contractx.Passage{
			StoreName: row.StoreName,
			Sentiment: row.Sentiment,
			Rating:    row.Rating,
			Content:   row.Content,
		})
	}
	return passages, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

// VectorLiteral renders a query vector in pgvector's input syntax.
func VectorLiteral(vector []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vector {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
