package session

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matjar-app/matjar/internal/history"
	"github.com/matjar-app/matjar/internal/mutate"
	"github.com/matjar-app/matjar/internal/section"
)

func TestNewSeedsHistoryFromTemplate(t *testing.T) {
	s := New("fashion-luxury", "دار الموضة", nil)
	doc := s.Current()
	if !strings.Contains(doc, "<title>دار الموضة</title>") {
		t.Error("store name missing from the seeded document")
	}
	if s.HistoryLen() != 1 {
		t.Errorf("history length = %d, want 1", s.HistoryLen())
	}
	if s.CanUndo() {
		t.Error("a fresh session has nothing to undo")
	}
}

func TestNewUnknownTemplateFallsBack(t *testing.T) {
	s := New("does-not-exist", "", nil)
	if s.Template().ID != "simple-shop" {
		t.Errorf("template = %s, want simple-shop", s.Template().ID)
	}
	if s.StoreName != "سِمبل شوب" {
		t.Errorf("empty store name should use the template name, got %q", s.StoreName)
	}
}

func TestApplyIntentPushesHistory(t *testing.T) {
	s := New("simple-shop", "متجري", mutate.NewEngine(nil))
	before := s.Current()

	res, err := s.ApplyIntent(context.Background(), "خلي اللون أخضر")
	if err != nil {
		t.Fatalf("ApplyIntent: %v", err)
	}
	if res.HTML == before {
		t.Error("green intent should change the document")
	}
	if s.Current() != res.HTML {
		t.Error("current document should be the mutation result")
	}

	undone, err := s.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if undone != before {
		t.Error("undo should restore the pre-intent document")
	}
	redone, err := s.Redo()
	if err != nil {
		t.Fatal(err)
	}
	if redone != res.HTML {
		t.Error("redo should restore the mutated document")
	}
}

func TestAddSection(t *testing.T) {
	s := New("simple-shop", "متجري", nil)
	doc, err := s.AddSection(section.TypeCountdown, nil)
	if err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if !strings.Contains(doc, `data-section-type="countdown"`) {
		t.Error("countdown fragment missing from the document")
	}
	at := strings.LastIndex(doc, "</body>")
	frag := strings.Index(doc, `data-section-type="countdown"`)
	if frag < 0 || frag > at {
		t.Error("new section must sit inside the body")
	}
	if !s.CanUndo() {
		t.Error("adding a section must be undoable")
	}
}

func TestApplyTemplateAndReset(t *testing.T) {
	s := New("simple-shop", "متجري", nil)
	doc := s.ApplyTemplate("jewelry-royal")
	if s.StoreType != "jewelry" {
		t.Errorf("store type = %q, want jewelry", s.StoreType)
	}
	if !strings.Contains(doc, "<title>متجري</title>") {
		t.Error("store name must survive a template switch")
	}
	if !s.CanUndo() {
		t.Error("template switch must be undoable")
	}

	s.Reset()
	if s.HistoryLen() != 1 {
		t.Errorf("reset should clear history, length = %d", s.HistoryLen())
	}
	if _, err := s.Undo(); !errors.Is(err, history.ErrNothingToUndo) {
		t.Errorf("undo after reset: %v", err)
	}
}

func TestExportWritesStoreNamedFile(t *testing.T) {
	dir := t.TempDir()
	s := New("simple-shop", "متجر نور", nil)

	path, err := s.Export(dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Base(path) != "متجر نور.html" {
		t.Errorf("export file name = %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != s.Current() {
		t.Error("export must be a byte-identical dump of the current document")
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCartReducers(t *testing.T) {
	c := NewCart("store-1")
	c.AddItem("p1", "عباية", 200, 1)
	c.AddItem("p2", "شال", 50, 2)
	c.AddItem("p1", "عباية", 200, 1) // merges into the first line

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
	if c.TotalItems() != 4 {
		t.Errorf("TotalItems = %d, want 4", c.TotalItems())
	}
	if !almostEqual(c.Subtotal(), 500) {
		t.Errorf("Subtotal = %v, want 500", c.Subtotal())
	}
	if !almostEqual(c.Tax(), 75) {
		t.Errorf("Tax = %v, want 75 (15%% VAT)", c.Tax())
	}
	if !almostEqual(c.Total(), 575) {
		t.Errorf("Total = %v, want 575", c.Total())
	}

	c.SetQuantity("p2", 1)
	if c.TotalItems() != 3 {
		t.Errorf("TotalItems after SetQuantity = %d, want 3", c.TotalItems())
	}
	c.SetQuantity("p1", 0) // removes the line
	if len(c.Items) != 1 || c.Items[0].ProductID != "p2" {
		t.Errorf("zero quantity should remove the line: %+v", c.Items)
	}

	c.Clear()
	if c.TotalItems() != 0 || !almostEqual(c.Total(), 0) {
		t.Error("cleared cart should be empty")
	}
}
