// Package catalog holds the curated storefront templates and the
// lookups over them.
package catalog

import (
	"github.com/matjar-app/matjar/internal/page"
)

// AllCategory is the pseudo category that matches every template.
const AllCategory = "الكل"

// DefaultTemplateID is used when a requested template does not exist.
const DefaultTemplateID = "simple-shop"

// All returns every curated template in catalog order.
func All() []Template {
	return storeTemplates
}

// ByID returns the template with the given id. The second result is
// false when no such template exists.
func ByID(id string) (Template, bool) {
	for _, t := range storeTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ByIDOrDefault returns the template with the given id, falling back
// to the simple-shop template for unknown ids.
func ByIDOrDefault(id string) Template {
	if t, ok := ByID(id); ok {
		return t
	}
	t, _ := ByID(DefaultTemplateID)
	return t
}

// ByCategory returns the templates in a category. The "الكل" category
// returns everything.
func ByCategory(category string) []Template {
	if category == AllCategory {
		return storeTemplates
	}
	var out []Template
	for _, t := range storeTemplates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns "الكل" followed by each distinct template
// category in catalog order.
func Categories() []string {
	out := []string{AllCategory}
	seen := map[string]bool{}
	for _, t := range storeTemplates {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// TemplateHTML renders the full page for a template. Unknown ids fall
// back to simple-shop; an empty store name uses the template's own
// Arabic name.
func TemplateHTML(id, storeName string) string {
	t := ByIDOrDefault(id)
	if storeName == "" {
		storeName = t.Name
	}
	return page.BuildDocument(storeName, t.StoreType, t.Theme, t.Sections)
}
