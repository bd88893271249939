package catalog

import (
	"context"
	"fmt"
	"strings"

	chromem "github.com/philippgille/chromem-go"
	openai "github.com/sashabaranov/go-openai"
)

const searchCollection = "templates"

// Match is one template search hit.
type Match struct {
	Template   Template
	Similarity float32
}

// Searcher finds templates for a free-text description of the store a
// user wants. With an embedding function it runs semantic search over
// an in-memory chromem index; without one it degrades to keyword
// matching against names, categories, and descriptions.
type Searcher struct {
	collection *chromem.Collection
}

// OpenAIEmbedding returns a chromem embedding function backed by the
// OpenAI embeddings API. An empty model falls back to
// text-embedding-3-small.
func OpenAIEmbedding(apiKey, model string) chromem.EmbeddingFunc {
	client := openai.NewClient(apiKey)
	embModel := embeddingModel(model)
	return func(ctx context.Context, text string) ([]float32, error) {
		resp, err := client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: []string{text},
			Model: embModel,
		})
		if err != nil {
			return nil, fmt.Errorf("openai embedding request failed: %w", err)
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("openai returned no embeddings")
		}
		return resp.Data[0].Embedding, nil
	}
}

func embeddingModel(model string) openai.EmbeddingModel {
	if model == "" {
		return openai.SmallEmbedding3
	}
	return openai.EmbeddingModel(model)
}

// NewSearcher builds the template index. embed may be nil, in which
// case Search uses keyword matching only.
func NewSearcher(ctx context.Context, embed chromem.EmbeddingFunc) (*Searcher, error) {
	if embed == nil {
		return &Searcher{}, nil
	}

	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(searchCollection, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromem.Document, len(storeTemplates))
	for i, t := range storeTemplates {
		docs[i] = chromem.Document{
			ID:      t.ID,
			Content: t.Name + " " + t.NameEn + " " + t.Category + " " + t.Description,
			Metadata: map[string]string{
				"category":   t.Category,
				"store_type": t.StoreType,
			},
		}
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		return nil, fmt.Errorf("index templates: %w", err)
	}

	return &Searcher{collection: col}, nil
}

// Search returns up to limit templates ranked by relevance to query.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > len(storeTemplates) {
		limit = len(storeTemplates)
	}

	if s.collection == nil {
		return keywordSearch(query, limit), nil
	}

	results, err := s.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		if t, ok := ByID(r.ID); ok {
			matches = append(matches, Match{Template: t, Similarity: r.Similarity})
		}
	}
	return matches, nil
}

// keywordSearch scores templates by naive token overlap with the query.
func keywordSearch(query string, limit int) []Match {
	terms := strings.Fields(strings.ToLower(query))
	var matches []Match
	for _, t := range storeTemplates {
		haystack := strings.ToLower(t.Name + " " + t.NameEn + " " + t.Category + " " + t.Description + " " + t.StoreType)
		var hits int
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, Match{
				Template:   t,
				Similarity: float32(hits) / float32(len(terms)),
			})
		}
	}
	// Insertion sort by similarity; the catalog is small.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Similarity > matches[j-1].Similarity; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
