package mutate

import (
	"context"
	"strings"
)

// substitution rewrites one literal token value inside the document.
type substitution struct {
	old string
	new string
}

// rule matches intent keywords and carries the substitutions plus the
// Arabic label reported back to the user.
type rule struct {
	keywords []string
	subs     []substitution
	label    string
}

// fallbackRules is evaluated in order; every matching rule is applied.
// The substitutions target the neutral theme's token values, so a rule
// silently no-ops on a document whose tokens were already rewritten.
var fallbackRules = []rule{
	{
		keywords: []string{"أخضر", "green"},
		subs: []substitution{
			{"#6c5ce7", "#2ecc71"},
			{"#5f3dc4", "#27ae60"},
		},
		label: "تم تغيير اللون إلى الأخضر",
	},
	{
		keywords: []string{"أحمر", "red"},
		subs: []substitution{
			{"#6c5ce7", "#e74c3c"},
			{"#5f3dc4", "#c0392b"},
		},
		label: "تم تغيير اللون إلى الأحمر",
	},
	{
		keywords: []string{"ذهبي", "gold"},
		subs: []substitution{
			{"#6c5ce7", "#d4af37"},
			{"#5f3dc4", "#b8960c"},
		},
		label: "تم تغيير اللون إلى الذهبي",
	},
	{
		keywords: []string{"أزرق", "blue"},
		subs: []substitution{
			{"#6c5ce7", "#0984e3"},
			{"#5f3dc4", "#0652dd"},
		},
		label: "تم تغيير اللون إلى الأزرق",
	},
	{
		keywords: []string{"وردي", "pink"},
		subs: []substitution{
			{"#6c5ce7", "#e84393"},
			{"#5f3dc4", "#d6336c"},
		},
		label: "تم تغيير اللون إلى الوردي",
	},
	{
		keywords: []string{"فاخر", "ملكي", "luxury"},
		subs: []substitution{
			{"#6c5ce7", "#d4af37"},
			{"#5f3dc4", "#b8960c"},
			{"#ffffff", "#12121f"},
			{"#f8f9fa", "#1a1a2e"},
			{"#f1f3f5", "#16162a"},
			{"#2d3436", "#f0e6d2"},
			{"#636e72", "#cbb98a"},
			{"#e9ecef", "#2a2a40"},
		},
		label: "تم تحويل التصميم لستايل فاخر",
	},
	{
		keywords: []string{"داكن", "dark"},
		subs: []substitution{
			{"#ffffff", "#0f0f23"},
			{"#f8f9fa", "#16163a"},
			{"#f1f3f5", "#1a1a3e"},
			{"#2d3436", "#e0e0e0"},
			{"#636e72", "#9aa0b4"},
			{"#e9ecef", "#2c2c4a"},
		},
		label: "تم تفعيل الوضع الداكن",
	},
}

// noMatchMessage acknowledges intents no rule understood.
const noMatchMessage = "تم تطبيق التعديلات"

// FallbackStrategy interprets the intent against a fixed keyword table
// and rewrites theme tokens by literal substitution. It never fails.
type FallbackStrategy struct{}

func NewFallbackStrategy() *FallbackStrategy { return &FallbackStrategy{} }

func (s *FallbackStrategy) Name() string { return "rules" }

func (s *FallbackStrategy) Mutate(_ context.Context, intent Intent) (Result, error) {
	html := intent.CurrentHTML
	message := strings.ToLower(intent.Message)

	var labels []string
	for _, r := range fallbackRules {
		if !matchesAny(message, r.keywords) {
			continue
		}
		for _, sub := range r.subs {
			html = strings.ReplaceAll(html, sub.old, sub.new)
		}
		labels = append(labels, r.label)
	}

	if len(labels) == 0 {
		labels = append(labels, noMatchMessage)
	}

	return Result{
		HTML:     html,
		Message:  strings.Join(labels, " — ") + " ✅",
		Strategy: s.Name(),
	}, nil
}

func matchesAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
