package section

import (
	"strings"
	"testing"
)

func testCtx() Context {
	return Context{StoreName: "متجر الأناقة", StoreType: "fashion"}
}

func TestRenderCoversAllKnownTypes(t *testing.T) {
	for _, typ := range Known() {
		out := Render(Config{ID: "s1", Type: typ}, testCtx())
		if out == "" {
			t.Errorf("type %s rendered empty fragment", typ)
		}
		if strings.Contains(out, "Unknown section") {
			t.Errorf("type %s fell through to the placeholder", typ)
		}
	}
}

func TestRenderUnknownTypeIsInert(t *testing.T) {
	out := Render(Config{ID: "x", Type: Type("hologram")}, testCtx())
	if !strings.Contains(out, "<!-- Unknown section: hologram -->") {
		t.Errorf("unexpected placeholder: %q", out)
	}
	if strings.Contains(out, "<script") {
		t.Error("placeholder must not carry active content")
	}
}

func TestRenderHeroDefaults(t *testing.T) {
	out := Render(Config{Type: TypeHero}, testCtx())
	if !strings.Contains(out, "مرحباً بكم في متجر الأناقة") {
		t.Error("hero missing default title with store name")
	}
	if !strings.Contains(out, "min-height:500px") {
		t.Error("hero missing default height")
	}
}

func TestRenderHeroPropsOverrideDefaults(t *testing.T) {
	out := Render(Config{
		Type:  TypeHero,
		Props: map[string]any{"title": "عنوان مخصص", "height": "600px"},
	}, testCtx())
	if !strings.Contains(out, "عنوان مخصص") {
		t.Error("custom title not rendered")
	}
	if !strings.Contains(out, "min-height:600px") {
		t.Error("custom height not rendered")
	}
	if strings.Contains(out, "مرحباً بكم في") {
		t.Error("default title leaked alongside custom title")
	}
}

func TestRenderProductsUsesStoreTypeCatalog(t *testing.T) {
	fashion := Render(Config{Type: TypeProducts}, Context{StoreName: "x", StoreType: "fashion"})
	if !strings.Contains(fashion, "فستان سهرة أنيق") {
		t.Error("fashion store should render fashion products")
	}

	// Unknown store types fall back to the general set.
	generic := Render(Config{Type: TypeProducts}, Context{StoreName: "x", StoreType: "pottery"})
	if !strings.Contains(generic, "منتج مميز أول") {
		t.Error("unknown store type should render general products")
	}
}

func TestRenderProductsCount(t *testing.T) {
	out := Render(Config{Type: TypeProducts, Props: map[string]any{"count": 4}}, testCtx())
	if got := strings.Count(out, `class="product-card"`); got != 4 {
		t.Errorf("count=4 rendered %d product cards", got)
	}
}

func TestRenderProductsCountClamped(t *testing.T) {
	// JSON numbers decode as float64, so a hostile payload arrives as
	// float64(-1); it must not slice out of bounds.
	out := Render(Config{Type: TypeProducts, Props: map[string]any{"count": float64(-1)}}, testCtx())
	if got := strings.Count(out, `class="product-card"`); got != 0 {
		t.Errorf("negative count rendered %d product cards", got)
	}

	out = Render(Config{Type: TypeProducts, Props: map[string]any{"count": 100}}, testCtx())
	if got := strings.Count(out, `class="product-card"`); got != 8 {
		t.Errorf("oversized count rendered %d product cards, want all 8", got)
	}
}

func TestRenderProductsExplicitItems(t *testing.T) {
	out := Render(Config{
		Type: TypeProducts,
		Props: map[string]any{
			"products": []any{
				map[string]any{"name": "سجادة يدوية", "price": "1,250", "badge": "حصري"},
				map[string]any{"name": "مزهرية خزف", "price": "320", "oldPrice": "400"},
			},
		},
	}, testCtx())

	if got := strings.Count(out, `class="product-card"`); got != 2 {
		t.Fatalf("rendered %d product cards, want 2", got)
	}
	for _, w := range []string{"سجادة يدوية", "مزهرية خزف", "حصري", "400 ر.س"} {
		if !strings.Contains(out, w) {
			t.Errorf("explicit product data missing %q", w)
		}
	}
	// Explicit items replace the store-type catalog entirely.
	if strings.Contains(out, "فستان سهرة أنيق") {
		t.Error("catalog products leaked alongside explicit items")
	}
}

func TestRenderProductsFeaturedExplicitSingleItem(t *testing.T) {
	out := Render(Config{
		Type: TypeProductsFeatured,
		Props: map[string]any{
			"products": []any{
				map[string]any{"name": "عود كمبودي فاخر", "price": "2,900"},
			},
		},
	}, testCtx())
	if !strings.Contains(out, "عود كمبودي فاخر") {
		t.Error("explicit featured product not rendered")
	}
}

func TestRenderCategoriesExplicitItems(t *testing.T) {
	out := Render(Config{
		Type: TypeCategories,
		Props: map[string]any{
			"categories": []any{
				map[string]any{"name": "أقمشة", "emoji": "🧵", "count": "+40"},
			},
		},
	}, testCtx())
	if !strings.Contains(out, "أقمشة") || !strings.Contains(out, "+40 منتج") {
		t.Error("explicit category data not rendered")
	}
	if strings.Contains(out, "أزياء نسائية") {
		t.Error("catalog categories leaked alongside explicit items")
	}
}

func TestRenderFeaturesExplicitItems(t *testing.T) {
	out := Render(Config{
		Type: TypeFeatures,
		Props: map[string]any{
			"features": []any{
				map[string]any{"icon": "🪡", "title": "تفصيل حسب الطلب", "desc": "مقاسات دقيقة"},
			},
		},
	}, testCtx())
	if !strings.Contains(out, "تفصيل حسب الطلب") || !strings.Contains(out, "مقاسات دقيقة") {
		t.Error("explicit feature data not rendered")
	}
}

func TestRenderTestimonialsExplicitItems(t *testing.T) {
	out := Render(Config{
		Type: TypeTestimonials,
		Props: map[string]any{
			"testimonials": []any{
				map[string]any{"name": "هند", "text": "خدمة ممتازة", "rating": float64(4), "initials": "هـ"},
			},
		},
	}, testCtx())
	if !strings.Contains(out, "خدمة ممتازة") {
		t.Fatal("explicit testimonial not rendered")
	}
	if !strings.Contains(out, "★★★★☆") {
		t.Error("rating 4 should render four filled stars")
	}

	// Out-of-range ratings are clamped, never panic.
	out = Render(Config{
		Type: TypeTestimonials,
		Props: map[string]any{
			"testimonials": []any{
				map[string]any{"name": "x", "text": "y", "rating": float64(-3)},
			},
		},
	}, testCtx())
	if !strings.Contains(out, "☆☆☆☆☆") {
		t.Error("negative rating should clamp to zero stars")
	}
}

func TestRenderFooterRichAliasesFooter(t *testing.T) {
	a := Render(Config{Type: TypeFooter}, testCtx())
	b := Render(Config{Type: TypeFooterRich}, testCtx())
	if a != b {
		t.Error("footer-rich should render the same markup as footer")
	}
}

func TestRenderContactDerivesEmailDomain(t *testing.T) {
	out := Render(Config{Type: TypeContact}, Context{StoreName: "Noor Store", StoreType: "general"})
	if !strings.Contains(out, "info@noorstore.com") {
		t.Error("contact email should collapse and lowercase the store name")
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := Config{Type: TypeProducts}
	if Render(cfg, testCtx()) != Render(cfg, testCtx()) {
		t.Error("same section rendered differently")
	}
}

func TestCatalogFallbacks(t *testing.T) {
	if len(ProductsFor("nonexistent")) == 0 {
		t.Error("ProductsFor should fall back to general")
	}
	if len(CategoriesFor("auto")) == 0 {
		t.Error("CategoriesFor should fall back to general")
	}
	if len(FeaturesFor("auto")) == 0 {
		t.Error("FeaturesFor should fall back to default")
	}
	if len(Testimonials()) < 3 {
		t.Error("testimonials set too small")
	}
}
