package mutate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matjar-app/matjar/internal/catalog"
)

func sampleDocument(t *testing.T) string {
	t.Helper()
	return catalog.TemplateHTML("simple-shop", "متجري")
}

func TestFallbackGreenRewritesPrimary(t *testing.T) {
	doc := sampleDocument(t)
	if !strings.Contains(doc, "#6c5ce7") {
		t.Fatal("sample document must carry the neutral primary color")
	}

	res, err := NewFallbackStrategy().Mutate(context.Background(), Intent{
		Message:     "خلي الموقع أخضر",
		CurrentHTML: doc,
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if strings.Contains(res.HTML, "#6c5ce7") {
		t.Error("old primary color still present")
	}
	if !strings.Contains(res.HTML, "#2ecc71") {
		t.Error("green primary not applied")
	}
	if !strings.Contains(res.Message, "الأخضر") {
		t.Errorf("message does not name the color: %q", res.Message)
	}
}

func TestFallbackIsIdempotent(t *testing.T) {
	intent := Intent{Message: "لون ذهبي", CurrentHTML: sampleDocument(t)}
	s := NewFallbackStrategy()

	first, err := s.Mutate(context.Background(), intent)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Mutate(context.Background(), Intent{Message: intent.Message, CurrentHTML: first.HTML})
	if err != nil {
		t.Fatal(err)
	}
	if first.HTML != second.HTML {
		t.Error("repeating the same color intent changed the document again")
	}
}

func TestFallbackNoMatchReturnsUnchanged(t *testing.T) {
	doc := sampleDocument(t)
	res, err := NewFallbackStrategy().Mutate(context.Background(), Intent{
		Message:     "أضف صفحة تواصل اجتماعي",
		CurrentHTML: doc,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.HTML != doc {
		t.Error("unmatched intent must leave the document untouched")
	}
	if !strings.Contains(res.Message, "تم تطبيق التعديلات") {
		t.Errorf("unexpected acknowledgement: %q", res.Message)
	}
}

func TestFallbackAppliesEveryMatchedRule(t *testing.T) {
	doc := sampleDocument(t)
	res, err := NewFallbackStrategy().Mutate(context.Background(), Intent{
		Message:     "خليه أخضر مع وضع داكن",
		CurrentHTML: doc,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.HTML, "#2ecc71") {
		t.Error("green rule not applied")
	}
	if !strings.Contains(res.HTML, "#0f0f23") {
		t.Error("dark rule not applied")
	}
	if !strings.Contains(res.Message, "الأخضر") || !strings.Contains(res.Message, "الداكن") {
		t.Errorf("message missing a matched rule label: %q", res.Message)
	}
}

func TestFallbackMatchesEnglishKeywords(t *testing.T) {
	res, err := NewFallbackStrategy().Mutate(context.Background(), Intent{
		Message:     "Make it BLUE please",
		CurrentHTML: sampleDocument(t),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.HTML, "#0984e3") {
		t.Error("english keyword not matched case-insensitively")
	}
}

type failingStrategy struct{}

func (failingStrategy) Name() string { return "assistant" }

func (failingStrategy) Mutate(context.Context, Intent) (Result, error) {
	return Result{}, ErrAssistantUnavailable
}

func TestEngineFallsBackWhenRemoteFails(t *testing.T) {
	doc := sampleDocument(t)
	intent := Intent{Message: "غير اللون إلى أحمر", CurrentHTML: doc}

	engineRes, err := NewEngine(failingStrategy{}).Apply(context.Background(), intent)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	fallbackRes, err := NewFallbackStrategy().Mutate(context.Background(), intent)
	if err != nil {
		t.Fatal(err)
	}
	if engineRes.HTML != fallbackRes.HTML {
		t.Error("engine output should match the rule interpreter after a remote failure")
	}
	if engineRes.Strategy != "rules" {
		t.Errorf("strategy = %q, want rules", engineRes.Strategy)
	}
	if engineRes.HTML == doc {
		t.Error("red intent should have changed the document")
	}
}

func TestEngineWithoutRemote(t *testing.T) {
	res, err := NewEngine(nil).Apply(context.Background(), Intent{
		Message:     "ذهبي فخم",
		CurrentHTML: sampleDocument(t),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.HTML, "#d4af37") {
		t.Error("gold rule not applied")
	}
}

func TestRemoteStrategyWithoutKey(t *testing.T) {
	s := NewRemoteStrategy("", "")
	_, err := s.Mutate(context.Background(), Intent{Message: "أي شيء", CurrentHTML: "<html></html>"})
	if !errors.Is(err, ErrAssistantUnavailable) {
		t.Errorf("expected ErrAssistantUnavailable, got %v", err)
	}
}

func TestStripCodeFences(t *testing.T) {
	wrapped := "```html\n<!DOCTYPE html>\n<html></html>\n```"
	if got := stripCodeFences(wrapped); got != "<!DOCTYPE html>\n<html></html>" {
		t.Errorf("stripCodeFences = %q", got)
	}
	plain := "<!DOCTYPE html>\n<html></html>"
	if got := stripCodeFences(plain); got != plain {
		t.Errorf("unfenced content altered: %q", got)
	}
}
