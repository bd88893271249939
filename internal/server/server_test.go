package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/db"
	"github.com/matjar-app/matjar/internal/mutate"
	"github.com/matjar-app/matjar/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	searcher, err := catalog.NewSearcher(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewSearcher: %v", err)
	}
	return New(Config{Addr: "127.0.0.1:0"}, database, mutate.NewEngine(nil), searcher)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	srv := New(Config{Addr: "127.0.0.1:0", AllowAll: true}, database, mutate.NewEngine(nil), nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestChatEndpointUsesRuleFallback(t *testing.T) {
	srv := newTestServer(t)

	doc := catalog.TemplateHTML("simple-shop", "متجري")
	body, _ := json.Marshal(map[string]string{
		"message":      "خلي الألوان حمراء",
		"current_html": doc,
		"store_name":   "متجري",
	})

	req := httptest.NewRequest("POST", "/api/ai/chat", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d: %s", w.Code, w.Body.String())
	}
	var res mutate.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.HTML, "#e74c3c") {
		t.Error("red rule not applied")
	}
	if res.Message == "" {
		t.Error("chat response must carry a message")
	}
}

func TestChatEndpointLogsConversation(t *testing.T) {
	srv := newTestServer(t)

	rec := &store.Record{Name: "متجر نور"}
	if err := srv.Service().Create(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	body, _ := json.Marshal(map[string]string{
		"message":      "خليه أخضر",
		"current_html": catalog.TemplateHTML("simple-shop", "متجر نور"),
		"store_id":     rec.ID,
	})
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("POST", "/api/ai/chat", strings.NewReader(string(body))))
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/stores/"+rec.ID+"/chat", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d: %s", w.Code, w.Body.String())
	}
	var msgs []store.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msgs); err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("history has %d turns, want user + assistant", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "خليه أخضر" {
		t.Errorf("first turn = %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Strategy != "rules" {
		t.Errorf("second turn = %+v", msgs[1])
	}
}

func TestChatEndpointWithoutStoreIDLogsNothing(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"message":      "خليه أزرق",
		"current_html": catalog.TemplateHTML("simple-shop", "متجري"),
	})
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("POST", "/api/ai/chat", strings.NewReader(string(body))))
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d", w.Code)
	}

	msgs, err := srv.Service().ChatHistory(context.Background(), "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 0 {
		t.Errorf("anonymous chat logged %d turns", len(msgs))
	}
}

func TestChatEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/ai/chat", strings.NewReader(`{"message":"بس"}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestTemplateEndpoints(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var templates []catalog.Template
	if err := json.Unmarshal(w.Body.Bytes(), &templates); err != nil {
		t.Fatal(err)
	}
	if len(templates) != 12 {
		t.Errorf("listed %d templates, want 12", len(templates))
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates?category=أزياء", nil))
	json.Unmarshal(w.Body.Bytes(), &templates)
	if len(templates) != 1 {
		t.Errorf("أزياء category listed %d templates, want 1", len(templates))
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates/categories", nil))
	var cats []string
	json.Unmarshal(w.Body.Bytes(), &cats)
	if len(cats) == 0 || cats[0] != catalog.AllCategory {
		t.Errorf("categories = %v", cats)
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates/bogus", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown template status = %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates/food-gourmet/preview?store_name=ذَواقة", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("preview status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `dir="rtl"`) {
		t.Error("preview is not an RTL page")
	}
}

func TestTemplateSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates/search?q=مجوهرات", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d: %s", w.Code, w.Body.String())
	}
	var matches []catalog.Match
	if err := json.Unmarshal(w.Body.Bytes(), &matches); err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 || matches[0].Template.ID != "jewelry-royal" {
		t.Errorf("unexpected matches: %+v", matches)
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/templates/search", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing q status = %d, want 400", w.Code)
	}
}

func TestQuickActionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/ai/quick-actions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var actions []mutate.QuickAction
	if err := json.Unmarshal(w.Body.Bytes(), &actions); err != nil {
		t.Fatal(err)
	}
	if len(actions) == 0 {
		t.Fatal("no quick actions")
	}
	for _, a := range actions {
		if a.Label == "" || a.Prompt == "" {
			t.Errorf("incomplete action: %+v", a)
		}
	}
}
