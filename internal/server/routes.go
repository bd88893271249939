package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/mutate"
	"github.com/matjar-app/matjar/internal/store"
)

// registerRoutes mounts the chat and catalog endpoints.
func (s *Server) registerRoutes(r chi.Router) {
	r.Post("/api/ai/chat", s.chatHandler)
	r.Get("/api/ai/quick-actions", s.quickActionsHandler)
	r.Get("/api/stores/{id}/chat", s.chatHistoryHandler)
	r.Get("/api/templates", s.listTemplatesHandler)
	r.Get("/api/templates/categories", s.categoriesHandler)
	r.Get("/api/templates/search", s.searchTemplatesHandler)
	r.Get("/api/templates/{id}", s.getTemplateHandler)
	r.Get("/api/templates/{id}/preview", s.previewTemplateHandler)
	r.Get("/ws/builder", s.builderSocketHandler)
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		mutate.Intent
		StoreID string `json:"store_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	intent := req.Intent
	if intent.Message == "" || intent.CurrentHTML == "" {
		http.Error(w, "message and current_html are required", http.StatusBadRequest)
		return
	}
	if intent.StoreName == "" {
		intent.StoreName = "متجري"
	}
	if intent.StoreType == "" {
		intent.StoreType = "general"
	}

	res, err := s.engine.Apply(r.Context(), intent)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// With a store id the conversation is kept for that store.
	if req.StoreID != "" {
		if err := s.svc.LogChat(r.Context(), req.StoreID, "user", intent.Message, ""); err != nil {
			log.Printf("chat log: %v", err)
		}
		if err := s.svc.LogChat(r.Context(), req.StoreID, "assistant", res.Message, res.Strategy); err != nil {
			log.Printf("chat log: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) chatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	msgs, err := s.svc.ChatHistory(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []store.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) quickActionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mutate.QuickActions)
}

func (s *Server) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.AllCategory
	}
	templates := catalog.ByCategory(category)
	if templates == nil {
		templates = []catalog.Template{}
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories())
}

func (s *Server) searchTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		http.Error(w, "template search is not configured", http.StatusServiceUnavailable)
		return
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	matches, err := s.searcher.Search(r.Context(), q, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if matches == nil {
		matches = []catalog.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) getTemplateHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) previewTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := catalog.ByID(id); !ok {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(catalog.TemplateHTML(id, r.URL.Query().Get("store_name"))))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
