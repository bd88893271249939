// Package session owns one storefront editing workspace: the theme and
// section list, the mutation engine, and the undo history behind it.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/history"
	"github.com/matjar-app/matjar/internal/mutate"
	"github.com/matjar-app/matjar/internal/page"
	"github.com/matjar-app/matjar/internal/section"
)

// Session is a single-user builder workspace. All methods are meant to
// be called from one goroutine; callers owning a shared session must
// serialize access themselves.
type Session struct {
	StoreName string
	StoreType string

	template catalog.Template
	sections []section.Config

	engine *mutate.Engine
	hist   *history.History
}

// New seeds a workspace from a template. An empty storeName uses the
// template's Arabic name. engine may be nil for view-only sessions.
func New(templateID, storeName string, engine *mutate.Engine) *Session {
	tmpl := catalog.ByIDOrDefault(templateID)
	if storeName == "" {
		storeName = tmpl.Name
	}

	s := &Session{
		StoreName: storeName,
		StoreType: tmpl.StoreType,
		template:  tmpl,
		engine:    engine,
		hist:      history.New(),
	}
	s.sections = append([]section.Config(nil), tmpl.Sections...)
	s.hist.Push(s.render(), "إنشاء الصفحة")
	return s
}

func (s *Session) render() string {
	return page.BuildDocument(s.StoreName, s.StoreType, s.template.Theme, s.sections)
}

// Current returns the document under the history cursor.
func (s *Session) Current() string {
	doc, err := s.hist.Current()
	if err != nil {
		return s.render()
	}
	return doc
}

// ApplyIntent runs a chat message through the mutation engine and
// records the result.
func (s *Session) ApplyIntent(ctx context.Context, message string) (mutate.Result, error) {
	engine := s.engine
	if engine == nil {
		engine = mutate.NewEngine(nil)
	}
	res, err := engine.Apply(ctx, mutate.Intent{
		Message:     message,
		CurrentHTML: s.Current(),
		StoreName:   s.StoreName,
		StoreType:   s.StoreType,
	})
	if err != nil {
		return mutate.Result{}, fmt.Errorf("applying intent: %w", err)
	}
	s.hist.Push(res.HTML, res.Message)
	return res, nil
}

// AddSection renders a section of the given type and splices it into
// the current document just before the closing body tag, preserving any
// assistant edits the document carries. The section also joins the
// session's section list so a rebuild keeps it.
func (s *Session) AddSection(sectionType section.Type, props map[string]any) (string, error) {
	cfg := section.Config{ID: uuid.NewString(), Type: sectionType, Props: props}
	fragment := section.Render(cfg, section.Context{StoreName: s.StoreName, StoreType: s.StoreType})

	doc := s.Current()
	at := strings.LastIndex(doc, "</body>")
	if at < 0 {
		return "", fmt.Errorf("document has no body to extend")
	}
	doc = doc[:at] + fragment + "\n" + doc[at:]

	s.sections = append(s.sections, cfg)
	s.hist.Push(doc, "إضافة قسم "+string(sectionType))
	return doc, nil
}

// ApplyTemplate switches the workspace to another template and
// re-renders, keeping the store name. The change is undoable.
func (s *Session) ApplyTemplate(templateID string) string {
	tmpl := catalog.ByIDOrDefault(templateID)
	s.template = tmpl
	s.StoreType = tmpl.StoreType
	s.sections = append(s.sections[:0:0], tmpl.Sections...)

	doc := s.render()
	s.hist.Push(doc, "تطبيق قالب "+tmpl.Name)
	return doc
}

// Reset reseeds the workspace from its original template, clearing the
// history.
func (s *Session) Reset() string {
	s.sections = append(s.sections[:0:0], s.template.Sections...)
	s.hist = history.New()
	doc := s.render()
	s.hist.Push(doc, "إعادة التعيين")
	return doc
}

// Rebuild re-renders the document from the session's own theme and
// sections, discarding text-level edits, and records the result.
func (s *Session) Rebuild() string {
	doc := s.render()
	s.hist.Push(doc, "إعادة البناء")
	return doc
}

// Undo steps the history back and returns that document.
func (s *Session) Undo() (string, error) { return s.hist.Undo() }

// Redo steps the history forward and returns that document.
func (s *Session) Redo() (string, error) { return s.hist.Redo() }

// JumpTo moves the history cursor to index i.
func (s *Session) JumpTo(i int) (string, error) { return s.hist.JumpTo(i) }

func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// HistoryLen returns how many snapshots the session retains.
func (s *Session) HistoryLen() int { return s.hist.Len() }

// Template returns the template the session was seeded from.
func (s *Session) Template() catalog.Template { return s.template }

// ExportFileName is the download name for a store's page.
func ExportFileName(storeName string) string {
	return storeName + ".html"
}

// Export writes the current document into dir as "<store name>.html"
// and returns the written path.
func (s *Session) Export(dir string) (string, error) {
	path := filepath.Join(dir, ExportFileName(s.StoreName))
	if err := os.WriteFile(path, []byte(s.Current()), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
