package theme

import (
	"strings"
	"testing"
)

func TestStylesheetSubstitutesTokens(t *testing.T) {
	th := Default()
	css := Stylesheet(th)

	wants := []string{
		"--p: #6c5ce7;",
		"--pd: #5f3dc4;",
		"--a: #00cec9;",
		"--bg: #ffffff;",
		"--r: 12px;",
		"--hg: linear-gradient(135deg, #6c5ce7 0%, #5f3dc4 100%);",
	}
	for _, w := range wants {
		if !strings.Contains(css, w) {
			t.Errorf("stylesheet missing %q", w)
		}
	}
	if strings.Contains(css, "{primary}") || strings.Contains(css, "{hero-gradient}") {
		t.Error("stylesheet contains unsubstituted placeholders")
	}
}

func TestStylesheetDeterministic(t *testing.T) {
	th := Default()
	if Stylesheet(th) != Stylesheet(th) {
		t.Error("same theme produced different stylesheets")
	}
}

func TestStylesheetDiffersPerTheme(t *testing.T) {
	a := Default()
	b := Default()
	b.Primary = "#d4af37"
	if Stylesheet(a) == Stylesheet(b) {
		t.Error("different primary produced identical stylesheets")
	}
}

func TestStyleValid(t *testing.T) {
	for _, s := range []Style{StyleLuxury, StyleModern, StyleMinimal, StyleClassic, StyleBold, StylePlayful} {
		if !s.Valid() {
			t.Errorf("style %q should be valid", s)
		}
	}
	if Style("vaporwave").Valid() {
		t.Error("unknown style should not be valid")
	}
}
