package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFormatterMedia(t *testing.T) {
	f := NewFormatter("https://cdn.example.com/media/", nil)

	if got := f.Media("players/2024/03/a.jpg"); got != "https://cdn.example.com/media/players/2024/03/a.jpg" {
		t.Fatalf("Media = %q", got)
	}
	if got := f.Media("http://other.example.com/a.jpg"); got != "http://other.example.com/a.jpg" {
		t.Fatalf("absolute Media = %q", got)
	}
	if got := f.Media(""); got != "" {
		t.Fatalf("empty Media = %q, want empty", got)
	}
	blank := ""
	if got := f.OptionalMedia(&blank); got != nil {
		t.Fatalf("OptionalMedia(blank) = %q, want nil", *got)
	}
	if got := f.OptionalMedia(nil); got != nil {
		t.Fatalf("OptionalMedia(nil) = %q, want nil", *got)
	}
}

func TestFormatterDateUsesClubZone(t *testing.T) {
	loc := time.FixedZone("UZT", 5*60*60)
	f := NewFormatter("/media", loc)

	// 21:30 UTC is already the next day in Tashkent
	created := time.Date(2024, time.March, 1, 21, 30, 0, 0, time.UTC)
	if got := f.Date(created); got != "2024-03-02" {
		t.Fatalf("Date = %q, want 2024-03-02", got)
	}

	birth := time.Date(1998, time.May, 14, 0, 0, 0, 0, time.UTC)
	if got := f.BirthDate(birth); got != "1998-05-14" {
		t.Fatalf("BirthDate = %q, want 1998-05-14", got)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news/x/", nil)
	InternalError(rec, req, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("body leaks cause: %s", rec.Body.String())
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "internal server error" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestPathHelpers(t *testing.T) {
	mux := http.NewServeMux()
	var gotSlug string
	var slugOK, idOK bool
	mux.HandleFunc("GET /n/{slug}/{$}", func(w http.ResponseWriter, r *http.Request) {
		gotSlug, slugOK = PathSlug(r, "slug")
	})
	mux.HandleFunc("GET /p/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		_, idOK = PathUUID(r, "id")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/n/new-season_2024/", nil))
	if !slugOK || gotSlug != "new-season_2024" {
		t.Fatalf("PathSlug = %q, %v", gotSlug, slugOK)
	}
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/n/bad.slug/", nil))
	if slugOK {
		t.Fatal("PathSlug accepted bad.slug")
	}
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/p/123/", nil))
	if idOK {
		t.Fatal("PathUUID accepted 123")
	}
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/p/6f1c2a8e-3b7d-4c55-9a0e-1d2f3a4b5c01/", nil))
	if !idOK {
		t.Fatal("PathUUID rejected a valid id")
	}
}
