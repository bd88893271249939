// Package section renders the building blocks of a storefront page.
// Each section kind has a renderer that is total: missing props fall
// back to built-in Arabic defaults and unknown kinds degrade to an
// inert placeholder, so rendering never fails.
package section

// Type identifies a section kind on a storefront page.
type Type string

const (
	TypeNavbar           Type = "navbar"
	TypeHero             Type = "hero"
	TypeHeroSplit        Type = "hero-split"
	TypeTrustBadges      Type = "trust-badges"
	TypeCategories       Type = "categories"
	TypeProducts         Type = "products"
	TypeProductsFeatured Type = "products-featured"
	TypeFeatures         Type = "features"
	TypeTestimonials     Type = "testimonials"
	TypeNewsletter       Type = "newsletter"
	TypeBanner           Type = "banner"
	TypeStats            Type = "stats"
	TypeBrands           Type = "brands"
	TypeOffers           Type = "offers"
	TypeCountdown        Type = "countdown"
	TypeGallery          Type = "gallery"
	TypeCTA              Type = "cta"
	TypeFAQ              Type = "faq"
	TypeContact          Type = "contact"
	TypeFooter           Type = "footer"
	TypeFooterRich       Type = "footer-rich"
	TypeSpacer           Type = "spacer"
)

// Known lists every section type with a dedicated renderer, in a
// stable order suitable for menus.
func Known() []Type {
	return []Type{
		TypeNavbar, TypeHero, TypeHeroSplit, TypeTrustBadges,
		TypeCategories, TypeProducts, TypeProductsFeatured,
		TypeFeatures, TypeTestimonials, TypeNewsletter, TypeBanner,
		TypeStats, TypeBrands, TypeOffers, TypeCountdown, TypeGallery,
		TypeCTA, TypeFAQ, TypeContact, TypeFooter, TypeFooterRich,
		TypeSpacer,
	}
}

// Config describes one section instance on a page.
type Config struct {
	ID    string         `json:"id" yaml:"id"`
	Type  Type           `json:"type" yaml:"type"`
	Props map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// Context carries the store identity renderers may interpolate.
type Context struct {
	StoreName string
	StoreType string
}

// propString returns props[key] as a string, or def when absent or not
// a string.
func propString(props map[string]any, key, def string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// propStrings returns props[key] as a string slice. Both []string and
// []any of strings are accepted, since configs decoded from JSON carry
// the latter.
func propStrings(props map[string]any, key string) []string {
	v, ok := props[key]
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func propInt(props map[string]any, key string, def int) int {
	if v, ok := props[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return def
}

// propMaps returns props[key] as a slice of objects, as JSON-decoded
// configs deliver item lists.
func propMaps(props map[string]any, key string) []map[string]any {
	items, ok := props[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, e := range items {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// productsFromProps decodes an explicit product list supplied in props.
// An empty result means the renderer should use the built-in catalog.
func productsFromProps(props map[string]any) []Product {
	var out []Product
	for _, m := range propMaps(props, "products") {
		name := propString(m, "name", "")
		if name == "" {
			continue
		}
		out = append(out, Product{
			Name:     name,
			Price:    propString(m, "price", ""),
			OldPrice: propString(m, "oldPrice", ""),
			Emoji:    propString(m, "emoji", "🛍️"),
			Badge:    propString(m, "badge", ""),
			Gradient: propString(m, "gradient", "linear-gradient(135deg, #f5f5f5 0%, #e0e0e0 100%)"),
		})
	}
	return out
}

func categoriesFromProps(props map[string]any) []Category {
	var out []Category
	for _, m := range propMaps(props, "categories") {
		name := propString(m, "name", "")
		if name == "" {
			continue
		}
		out = append(out, Category{
			Name:     name,
			Emoji:    propString(m, "emoji", "🛍️"),
			Count:    propString(m, "count", "+10"),
			Gradient: propString(m, "gradient", "linear-gradient(135deg, #f5f5f5 0%, #e0e0e0 100%)"),
		})
	}
	return out
}

func featuresFromProps(props map[string]any) []Feature {
	var out []Feature
	for _, m := range propMaps(props, "features") {
		title := propString(m, "title", "")
		if title == "" {
			continue
		}
		out = append(out, Feature{
			Icon:  propString(m, "icon", "✨"),
			Title: title,
			Desc:  propString(m, "desc", ""),
		})
	}
	return out
}

func testimonialsFromProps(props map[string]any) []Testimonial {
	var out []Testimonial
	for _, m := range propMaps(props, "testimonials") {
		text := propString(m, "text", "")
		if text == "" {
			continue
		}
		rating := propInt(m, "rating", 5)
		if rating < 0 {
			rating = 0
		}
		if rating > 5 {
			rating = 5
		}
		out = append(out, Testimonial{
			Name:     propString(m, "name", "عميل سعيد"),
			Role:     propString(m, "role", "عميل"),
			Text:     text,
			Rating:   rating,
			Initials: propString(m, "initials", "ع"),
		})
	}
	return out
}
