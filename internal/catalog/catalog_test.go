package catalog

import (
	"context"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestCatalogHasTwelveTemplates(t *testing.T) {
	if got := len(All()); got != 12 {
		t.Fatalf("expected 12 templates, got %d", got)
	}
	seen := map[string]bool{}
	for _, tmpl := range All() {
		if tmpl.ID == "" || tmpl.Name == "" || len(tmpl.Sections) == 0 {
			t.Errorf("template %q is incomplete", tmpl.ID)
		}
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
		if !tmpl.Theme.Style.Valid() {
			t.Errorf("template %q has invalid style %q", tmpl.ID, tmpl.Theme.Style)
		}
	}
}

func TestByIDFallsBackToSimpleShop(t *testing.T) {
	got := ByIDOrDefault("no-such-template")
	if got.ID != DefaultTemplateID {
		t.Errorf("expected fallback to %s, got %s", DefaultTemplateID, got.ID)
	}
}

func TestByCategory(t *testing.T) {
	if got := ByCategory(AllCategory); len(got) != len(All()) {
		t.Errorf("الكل should return all templates, got %d", len(got))
	}
	fashion := ByCategory("أزياء")
	if len(fashion) != 1 || fashion[0].ID != "fashion-luxury" {
		t.Errorf("unexpected أزياء templates: %+v", fashion)
	}
	if got := ByCategory("طيران"); got != nil {
		t.Errorf("unknown category should match nothing, got %d", len(got))
	}
}

func TestCategoriesStartWithAll(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 || cats[0] != AllCategory {
		t.Fatalf("categories must start with %s: %v", AllCategory, cats)
	}
	if len(cats) != 13 { // الكل + 12 distinct categories
		t.Errorf("expected 13 category entries, got %d: %v", len(cats), cats)
	}
}

func TestTemplateHTML(t *testing.T) {
	html := TemplateHTML("fashion-luxury", "دار الموضة")
	if !strings.Contains(html, "<title>دار الموضة</title>") {
		t.Error("store name not applied to document title")
	}
	if !strings.Contains(html, "--p: #d4af37;") {
		t.Error("template theme not applied to stylesheet")
	}

	// Empty store name falls back to the template's Arabic name.
	html = TemplateHTML("simple-shop", "")
	if !strings.Contains(html, "<title>سِمبل شوب</title>") {
		t.Error("empty store name should use the template name")
	}

	// Unknown id renders simple-shop.
	if TemplateHTML("bogus", "متجري") != TemplateHTML("simple-shop", "متجري") {
		t.Error("unknown template id should render simple-shop")
	}
}

func TestKeywordSearch(t *testing.T) {
	s, err := NewSearcher(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewSearcher: %v", err)
	}
	matches, err := s.Search(context.Background(), "مجوهرات فاخرة", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Template.ID != "jewelry-royal" {
		t.Errorf("expected jewelry-royal first, got %s", matches[0].Template.ID)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Error("matches not sorted by similarity")
		}
	}
}

func TestEmbeddingModelDefault(t *testing.T) {
	if got := embeddingModel(""); got != openai.SmallEmbedding3 {
		t.Errorf("empty model = %q, want %q", got, openai.SmallEmbedding3)
	}
	if got := embeddingModel("text-embedding-3-large"); got != openai.EmbeddingModel("text-embedding-3-large") {
		t.Errorf("configured model = %q", got)
	}
}

func TestKeywordSearchNoMatches(t *testing.T) {
	s, _ := NewSearcher(context.Background(), nil)
	matches, err := s.Search(context.Background(), "zzzz qqqq", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}
