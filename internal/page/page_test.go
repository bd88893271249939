package page

import (
	"strings"
	"testing"

	"github.com/matjar-app/matjar/internal/section"
	"github.com/matjar-app/matjar/internal/theme"
)

func sampleSections() []section.Config {
	return []section.Config{
		{ID: "s1", Type: section.TypeNavbar},
		{ID: "s2", Type: section.TypeHero},
		{ID: "s3", Type: section.TypeProducts},
		{ID: "s4", Type: section.TypeFooter},
	}
}

func TestBuildDocumentStructure(t *testing.T) {
	doc := BuildDocument("متجري", "general", theme.Default(), sampleSections())

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("document must start with a doctype")
	}
	wants := []string{
		`<html lang="ar" dir="rtl">`,
		`<meta charset="UTF-8">`,
		"<title>متجري</title>",
		"fonts.googleapis.com/css2?family=Tajawal",
		"IntersectionObserver",
		"threshold: 0.1",
		"</body>",
		"</html>",
	}
	for _, w := range wants {
		if !strings.Contains(doc, w) {
			t.Errorf("document missing %q", w)
		}
	}
	if c := strings.Count(doc, "<style>"); c != 1 {
		t.Errorf("expected exactly one style block, got %d", c)
	}
}

func TestBuildDocumentDeterministic(t *testing.T) {
	th := theme.Default()
	secs := sampleSections()
	a := BuildDocument("متجري", "general", th, secs)
	b := BuildDocument("متجري", "general", th, secs)
	if a != b {
		t.Error("identical inputs produced different documents")
	}
}

func TestBuildDocumentPreservesSectionOrder(t *testing.T) {
	doc := BuildDocument("متجري", "general", theme.Default(), sampleSections())

	nav := strings.Index(doc, `data-section-type="navbar"`)
	hero := strings.Index(doc, `data-section-type="hero"`)
	products := strings.Index(doc, `data-section-type="products"`)
	footer := strings.Index(doc, `data-section-type="footer"`)
	if nav < 0 || hero < 0 || products < 0 || footer < 0 {
		t.Fatal("document missing expected sections")
	}
	if !(nav < hero && hero < products && products < footer) {
		t.Error("sections rendered out of input order")
	}
	if c := strings.Count(doc, "<nav"); c != 1 {
		t.Errorf("expected exactly one nav element, got %d", c)
	}
}

func TestBuildDocumentEmptySections(t *testing.T) {
	doc := BuildDocument("متجري", "general", theme.Default(), nil)
	if !strings.Contains(doc, "<body>") || !strings.Contains(doc, "</html>") {
		t.Error("empty section list should still produce a complete document")
	}
}

func TestBuildDocumentUnknownSectionInert(t *testing.T) {
	secs := []section.Config{{ID: "s1", Type: section.Type("widget-9000")}}
	doc := BuildDocument("متجري", "general", theme.Default(), secs)
	if !strings.Contains(doc, "<!-- Unknown section: widget-9000 -->") {
		t.Error("unknown section should render as an inert comment")
	}
}
