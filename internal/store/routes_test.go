package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (chi.Router, *Service, *Generator) {
	t.Helper()
	svc := newTestService(t)
	gen := NewGenerator(svc)
	r := chi.NewRouter()
	RegisterRoutes(r, svc, gen)
	return r, svc, gen
}

func TestCreateAndGetStoreAPI(t *testing.T) {
	r, _, _ := newTestRouter(t)

	body := `{"name":"متجر نور","store_type":"beauty","template_id":"beauty-glow"}`
	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created Record
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Status != StatusPending {
		t.Errorf("created status = %q, want pending", created.Status)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
}

func TestCreateStoreRequiresName(t *testing.T) {
	r, _, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(`{"store_type":"food"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetMissingStoreIs404(t *testing.T) {
	r, _, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateJobAPI(t *testing.T) {
	r, svc, gen := newTestRouter(t)

	body := `{"name":"ذَواقة","store_type":"food","template_id":"food-gourmet"}`
	req := httptest.NewRequest(http.MethodPost, "/api/stores/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	gen.Wait()

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+resp["job_id"], nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("job status = %d", rec.Code)
	}
	var job Job
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatal(err)
	}
	if job.Status != JobCompleted {
		t.Fatalf("job = %+v, want completed", job)
	}

	// The generated page is served as HTML.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/"+job.StoreID+"/preview", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("preview status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("preview content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `dir="rtl"`) {
		t.Error("preview is not the generated RTL page")
	}

	got, err := svc.Get(req.Context(), job.StoreID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusActive {
		t.Errorf("generated store status = %q", got.Status)
	}
}

func TestExportAPISetsDownloadName(t *testing.T) {
	r, svc, _ := newTestRouter(t)

	rec0 := &Record{Name: "متجر نور", HTMLContent: "<!DOCTYPE html><html></html>"}
	if err := svc.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), rec0); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/"+rec0.ID+"/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d", rec.Code)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".html") {
		t.Errorf("content disposition = %q", cd)
	}
	if rec.Body.String() != rec0.HTMLContent {
		t.Error("export must dump the stored document byte for byte")
	}
}

func TestCartAPIRoundTrip(t *testing.T) {
	r, svc, _ := newTestRouter(t)

	store0 := &Record{Name: "متجر"}
	if err := svc.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), store0); err != nil {
		t.Fatal(err)
	}

	body := `{"items":[{"product_id":"p1","name":"عباية","price":200,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/stores/"+store0.ID+"/cart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("put cart status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/"+store0.ID+"/cart", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get cart status = %d", rec.Code)
	}
	var resp struct {
		TotalItems int     `json:"total_items"`
		Subtotal   float64 `json:"subtotal"`
		Tax        float64 `json:"tax"`
		Total      float64 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalItems != 2 || resp.Subtotal != 400 || resp.Tax != 60 || resp.Total != 460 {
		t.Errorf("cart totals = %+v", resp)
	}
}
