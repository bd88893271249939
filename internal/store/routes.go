package store

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matjar-app/matjar/internal/session"
)

// RegisterRoutes mounts store, job, and cart endpoints.
func RegisterRoutes(r chi.Router, svc *Service, gen *Generator) {
	r.Get("/api/stores", listStoresHandler(svc))
	r.Post("/api/stores", createStoreHandler(svc))
	r.Post("/api/stores/generate", generateStoreHandler(gen))
	r.Get("/api/stores/{id}", getStoreHandler(svc))
	r.Put("/api/stores/{id}", updateStoreHandler(svc))
	r.Delete("/api/stores/{id}", deleteStoreHandler(svc))
	r.Get("/api/stores/{id}/preview", previewHandler(svc))
	r.Get("/api/stores/{id}/export", exportHandler(svc))
	r.Get("/api/stores/{id}/cart", getCartHandler(svc))
	r.Put("/api/stores/{id}/cart", putCartHandler(svc))
	r.Get("/api/jobs/{id}", getJobHandler(svc))
}

func listStoresHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))

		result, err := svc.List(r.Context(), q.Get("status"), limit, offset)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []Record{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func createStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if rec.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if err := svc.Create(r.Context(), &rec); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

func generateStoreHandler(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name       string `json:"name"`
			StoreType  string `json:"store_type"`
			TemplateID string `json:"template_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		job, err := gen.Submit(r.Context(), req.Name, req.StoreType, req.TemplateID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"job_id": job.ID})
	}
}

func getStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func updateStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			HTMLContent string `json:"html_content"`
			Status      string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")
		if err := svc.UpdateContent(r.Context(), id, req.HTMLContent, req.Status); err != nil {
			httpError(w, err)
			return
		}
		rec, err := svc.Get(r.Context(), id)
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func deleteStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			httpError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func previewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(rec.HTMLContent))
	}
}

func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpError(w, err)
			return
		}
		filename := session.ExportFileName(rec.Name)
		disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", disposition)
		w.Write([]byte(rec.HTMLContent))
	}
}

func getCartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := svc.LoadCart(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"store_id":    cart.StoreID,
			"items":       cart.Items,
			"total_items": cart.TotalItems(),
			"subtotal":    cart.Subtotal(),
			"tax":         cart.Tax(),
			"total":       cart.Total(),
		})
	}
}

func putCartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Items []session.CartItem `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		cart := session.NewCart(chi.URLParam(r, "id"))
		for _, it := range req.Items {
			cart.AddItem(it.ProductID, it.Name, it.Price, it.Quantity)
		}
		if err := svc.SaveCart(r.Context(), cart); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, cart)
	}
}

func getJobHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := svc.GetJob(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func httpError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrStoreNotFound) || errors.Is(err, ErrJobNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
