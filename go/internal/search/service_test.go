package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mcdev12/clubsite/go/internal/api"
)

type stubApp struct {
	calls int
	res   *Results
	err   error
}

func (s *stubApp) Search(context.Context, string) (*Results, error) {
	s.calls++
	return s.res, s.err
}

func post(t *testing.T, app SearchApp, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	NewService(app, api.NewFormatter("/media", nil)).RegisterRoutes(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search/", strings.NewReader(body)))
	return rec
}

func TestSearchRouteRendersEmptyLists(t *testing.T) {
	app := &stubApp{res: &Results{}}
	rec := post(t, app, `{"search": "nobody"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := `{"news":[],"players":[],"coaches":[],"leaders":[]}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestSearchRouteValidatesBeforeQuerying(t *testing.T) {
	app := &stubApp{res: &Results{}}

	rec := post(t, app, `{"search": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body["search"]) != 1 {
		t.Fatalf("body = %v", body)
	}

	rec = post(t, app, `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed: status = %d, want 400", rec.Code)
	}
	if app.calls != 0 {
		t.Fatalf("searched %d times on invalid input", app.calls)
	}
}

func TestSearchRouteHidesStoreErrors(t *testing.T) {
	rec := post(t, &stubApp{err: errors.New("pq: too many connections")}, `{"search": "ali"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "pq:") {
		t.Fatalf("body leaks cause: %s", rec.Body.String())
	}
}

func TestSearchRouteRejectsGET(t *testing.T) {
	mux := http.NewServeMux()
	NewService(&stubApp{}, api.NewFormatter("/media", nil)).RegisterRoutes(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
