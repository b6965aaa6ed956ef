package news

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/news/db"
	"github.com/mcdev12/clubsite/go/internal/pagination"
	"github.com/mcdev12/clubsite/go/internal/storetest"
)

func uncached(h http.Handler) http.Handler { return h }

func newTestMux(t *testing.T, database *sql.DB) *http.ServeMux {
	t.Helper()
	repo := NewRepository(db.New(database), database)
	svc := NewService(NewApp(repo), pagination.Paginator{DefaultSize: 10, MaxSize: 100},
		api.NewFormatter("http://media.example.com/media", nil))
	mux := http.NewServeMux()
	svc.RegisterRoutes(mux, uncached)
	return mux
}

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func TestListCategoriesRoute(t *testing.T) {
	database := storetest.Open(t)
	seedCategory(t, database, "klub", 0)
	mux := newTestMux(t, database)

	rec := get(mux, "/news/category/list/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decode[[]map[string]any](t, rec)
	if len(body) != 1 {
		t.Fatalf("len = %d, want 1", len(body))
	}
	for _, key := range []string{"id", "name_uz", "name_ru", "name_en"} {
		if _, ok := body[0][key]; !ok {
			t.Errorf("category missing %q: %v", key, body[0])
		}
	}
}

func TestListByCategoryRoute(t *testing.T) {
	database := storetest.Open(t)
	cat := seedCategory(t, database, "klub", 15)
	mux := newTestMux(t, database)
	base := "/news/category/" + cat.ID.String() + "/"

	rec := get(mux, base+"?page=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	page := decode[pagination.Page[ListItem]](t, rec)
	if page.Count != 15 || len(page.Results) != 5 {
		t.Fatalf("count = %d, results = %d", page.Count, len(page.Results))
	}
	if page.Next != nil {
		t.Fatalf("next = %q, want null", *page.Next)
	}
	if page.Previous == nil {
		t.Fatal("previous is null on page 2")
	}
	first := page.Results[0]
	if first.CategoryName != "klub" || first.Date != "2024-03-01" {
		t.Fatalf("item = %+v", first)
	}
	if first.Image != "http://media.example.com/media/news/2024/03/04.jpg" {
		t.Fatalf("image = %q", first.Image)
	}

	tests := []struct {
		target string
		want   string
	}{
		{base + "?page=3", "Invalid page."},
		{base + "?page=abc", "Invalid page."},
		{base + "?page=300000000", "Invalid page."},
		{base + "?page=922337203685477582", "Invalid page."},
		{"/news/category/" + uuid.NewString() + "/", "Category not found"},
		{"/news/category/not-a-uuid/", "Category not found"},
	}
	for _, tt := range tests {
		rec := get(mux, tt.target)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", tt.target, rec.Code)
			continue
		}
		if got := decode[api.ErrorResponse](t, rec).Error; got != tt.want {
			t.Errorf("%s: error = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestEmptyCategoryRendersFirstPage(t *testing.T) {
	database := storetest.Open(t)
	cat := seedCategory(t, database, "bo'sh", 0)
	mux := newTestMux(t, database)

	rec := get(mux, "/news/category/"+cat.ID.String()+"/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	page := decode[pagination.Page[ListItem]](t, rec)
	if page.Count != 0 || page.Results == nil || len(page.Results) != 0 {
		t.Fatalf("page = %+v, want empty results", page)
	}
}

func TestGetNewsRoute(t *testing.T) {
	database := storetest.Open(t)
	seedCategory(t, database, "klub", 1)
	mux := newTestMux(t, database)

	rec := get(mux, "/news/klub-00/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	detail := decode[DetailResponse](t, rec)
	if detail.Slug != "klub-00" || detail.DescriptionRU == nil || *detail.DescriptionRU != "текст" {
		t.Fatalf("detail = %+v", detail)
	}

	rec = get(mux, "/news/missing/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decode[api.ErrorResponse](t, rec).Error; got != "News not found" {
		t.Fatalf("error = %q", got)
	}
}
