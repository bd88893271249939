// Package theme defines the design tokens of a storefront page and
// turns them into the page stylesheet.
package theme

import "strings"

// Style selects the overall visual direction of a storefront.
type Style string

const (
	StyleLuxury  Style = "luxury"
	StyleModern  Style = "modern"
	StyleMinimal Style = "minimal"
	StyleClassic Style = "classic"
	StyleBold    Style = "bold"
	StylePlayful Style = "playful"
)

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	switch s {
	case StyleLuxury, StyleModern, StyleMinimal, StyleClassic, StyleBold, StylePlayful:
		return true
	}
	return false
}

// Theme is the set of design tokens a storefront page is rendered with.
// All values are CSS literals (colors, gradients, a font stack, a radius).
type Theme struct {
	Primary        string `json:"primary" yaml:"primary"`
	PrimaryDark    string `json:"primary_dark" yaml:"primary_dark"`
	Accent         string `json:"accent" yaml:"accent"`
	Background     string `json:"bg" yaml:"bg"`
	Surface        string `json:"surface" yaml:"surface"`
	SurfaceAlt     string `json:"surface_alt" yaml:"surface_alt"`
	Text           string `json:"text" yaml:"text"`
	TextSecondary  string `json:"text_secondary" yaml:"text_secondary"`
	HeroGradient   string `json:"hero_gradient" yaml:"hero_gradient"`
	CardBackground string `json:"card_bg" yaml:"card_bg"`
	BorderColor    string `json:"border_color" yaml:"border_color"`
	FontFamily     string `json:"font_family" yaml:"font_family"`
	Radius         string `json:"radius" yaml:"radius"`
	Style          Style  `json:"style" yaml:"style"`
}

// Default returns the neutral theme used when a store has no template.
func Default() Theme {
	return Theme{
		Primary:        "#6c5ce7",
		PrimaryDark:    "#5f3dc4",
		Accent:         "#00cec9",
		Background:     "#ffffff",
		Surface:        "#f8f9fa",
		SurfaceAlt:     "#f1f3f5",
		Text:           "#2d3436",
		TextSecondary:  "#636e72",
		HeroGradient:   "linear-gradient(135deg, #6c5ce7 0%, #5f3dc4 100%)",
		CardBackground: "#ffffff",
		BorderColor:    "#e9ecef",
		FontFamily:     "'Tajawal', sans-serif",
		Radius:         "12px",
		Style:          StyleModern,
	}
}

// Stylesheet renders the complete page CSS for t. The output is a pure
// function of the token values: equal themes produce identical CSS.
func Stylesheet(t Theme) string {
	r := strings.NewReplacer(
		"{primary}", t.Primary,
		"{primary-dark}", t.PrimaryDark,
		"{accent}", t.Accent,
		"{bg}", t.Background,
		"{surface}", t.Surface,
		"{surface-alt}", t.SurfaceAlt,
		"{text}", t.Text,
		"{text-secondary}", t.TextSecondary,
		"{card-bg}", t.CardBackground,
		"{border}", t.BorderColor,
		"{radius}", t.Radius,
		"{hero-gradient}", t.HeroGradient,
	)
	return r.Replace(baseCSS)
}
