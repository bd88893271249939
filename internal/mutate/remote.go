package mutate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const chatSystemPrompt = `أنت مطور ويب محترف ومصمم متاجر إلكترونية. المستخدم يبني متجره عبر الدردشة.

مهمتك:
1. افهم طلب المستخدم (تغيير ألوان، إضافة أقسام، تعديل محتوى، إلخ)
2. عدّل كود HTML/CSS حسب الطلب
3. أرجع الكود الكامل المعدّل

قواعد صارمة:
- أرجع HTML كامل فقط (من <!DOCTYPE html> إلى </html>)
- لا تكتب أي شرح أو markdown أو ` + "```" + `
- التزم بـ RTL والعربية
- استخدم خط Tajawal من Google Fonts
- اجعل التصميم عصري وجذاب
- استخدم CSS inline في <style> داخل <head>
- لا تستخدم JavaScript خارجي أو مكتبات
- حافظ على بنية الصفحة وحسّنها`

// RemoteStrategy asks an OpenAI chat model to rewrite the document.
type RemoteStrategy struct {
	client *openai.Client
	model  string
}

// NewRemoteStrategy creates the assistant-backed strategy. An empty
// apiKey yields a strategy that always reports itself unavailable so
// the engine can fall through to the local rules.
func NewRemoteStrategy(apiKey, model string) *RemoteStrategy {
	if model == "" {
		model = "gpt-4o-mini"
	}
	s := &RemoteStrategy{model: model}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

func (s *RemoteStrategy) Name() string { return "assistant" }

func (s *RemoteStrategy) Mutate(ctx context.Context, intent Intent) (Result, error) {
	if s.client == nil {
		return Result{}, fmt.Errorf("no API key configured: %w", ErrAssistantUnavailable)
	}

	userPrompt := fmt.Sprintf("الكود الحالي:\n%s\n\nطلب المستخدم: %s\n\nأرجع HTML الكامل المعدّل:",
		intent.CurrentHTML, intent.Message)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.5,
		MaxTokens:   8000,
	})
	if err != nil {
		return Result{}, fmt.Errorf("chat completion failed (%v): %w", err, ErrAssistantUnavailable)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("empty completion: %w", ErrAssistantUnavailable)
	}

	html := stripCodeFences(resp.Choices[0].Message.Content)
	if !looksLikeDocument(html) {
		return Result{}, fmt.Errorf("reply is not a full HTML document: %w", ErrAssistantUnavailable)
	}

	return Result{
		HTML:     html,
		Message:  fmt.Sprintf("تم تطبيق: %s ✅", intent.Message),
		Strategy: s.Name(),
	}, nil
}

// stripCodeFences removes markdown fence lines the model sometimes
// wraps its reply in, despite being told not to.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func looksLikeDocument(html string) bool {
	lower := strings.ToLower(html)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}
