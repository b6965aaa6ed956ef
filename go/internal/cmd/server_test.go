package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/clubsite/go/internal/api"
	"github.com/mcdev12/clubsite/go/internal/cache"
	"github.com/mcdev12/clubsite/go/internal/models"
	"github.com/mcdev12/clubsite/go/internal/pagination"
	"github.com/mcdev12/clubsite/go/internal/storetest"
	"github.com/rs/zerolog"
)

type testServer struct {
	handler http.Handler
	db      *sql.DB
	clock   *clockwork.FakeClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	database := storetest.Open(t)
	clock := clockwork.NewFakeClock()
	cfg := Config{CORSOrigins: []string{"*"}, CacheTTL: cache.DefaultTTL, CachePrefix: "test"}

	services := setupServices(database,
		pagination.Paginator{DefaultSize: 10, MaxSize: 100},
		api.NewFormatter("/media", time.UTC))
	responses := cache.NewMiddleware(cache.NewMemoryStore(clock), cfg.CacheTTL, cfg.CachePrefix)

	return &testServer{
		handler: newHandler(cfg, zerolog.Nop(), services, responses),
		db:      database,
		clock:   clock,
	}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestResponsesAreCachedForTTL(t *testing.T) {
	s := newTestServer(t)
	partner := storetest.InsertPartner(t, s.db, models.Partner{
		Image: "partners/a.png", Link: "https://old.example.com", CreatedAt: storetest.Base,
	})

	first := s.do(http.MethodGet, "/partners/", "")
	if first.Code != http.StatusOK || first.Header().Get(cache.HeaderCache) != "MISS" {
		t.Fatalf("first: status = %d, X-Cache = %q", first.Code, first.Header().Get(cache.HeaderCache))
	}

	if _, err := s.db.Exec(`UPDATE partners SET link = $1 WHERE id = $2`, "https://new.example.com", partner.ID); err != nil {
		t.Fatalf("update: %v", err)
	}

	s.clock.Advance(119 * time.Second)
	second := s.do(http.MethodGet, "/partners/", "")
	if second.Header().Get(cache.HeaderCache) != "HIT" {
		t.Fatalf("second X-Cache = %q, want HIT", second.Header().Get(cache.HeaderCache))
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("cached body changed within ttl: %s", second.Body.String())
	}

	s.clock.Advance(2 * time.Second)
	third := s.do(http.MethodGet, "/partners/", "")
	if third.Header().Get(cache.HeaderCache) != "MISS" {
		t.Fatalf("third X-Cache = %q, want MISS", third.Header().Get(cache.HeaderCache))
	}
	if !strings.Contains(third.Body.String(), "https://new.example.com") {
		t.Fatalf("stale body after ttl: %s", third.Body.String())
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/nope/", "/players/not-a-uuid/", "/news/missing-slug/"} {
		rec := s.do(http.MethodGet, target, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, rec.Code)
			continue
		}
		if rec.Header().Get(cache.HeaderCache) == "HIT" {
			t.Errorf("%s: 404 served from cache", target)
		}
		var body api.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
			t.Errorf("%s: body = %s", target, rec.Body.String())
		}
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestSearchEndToEnd(t *testing.T) {
	s := newTestServer(t)
	country := storetest.InsertPlayerCountry(t, s.db, models.PlayerCountry{Name: "O'zbekiston", Flag: "flags/uz.png", CreatedAt: storetest.Base})
	position := storetest.InsertPlayerPosition(t, s.db, models.PlayerPosition{Name: storetest.Text("Hujumchi", "Нападающий", "Forward"), CreatedAt: storetest.Base})
	for i := 0; i < 7; i++ {
		storetest.InsertPlayer(t, s.db, models.Player{
			FullName: "Karimov " + string(rune('A'+i)), Image: "players/k.jpg", Number: i + 1,
			BirthDate: storetest.Base, Height: "180", Gender: models.GenderMan,
			CountryID: country.ID, PositionID: position.ID, CreatedAt: storetest.At(i),
		})
	}
	storetest.InsertLeader(t, s.db, models.Leader{
		FullName: "Akmal Karimov", Position: "Prezident", Country: "O'zbekiston", Image: "leaders/k.jpg",
		BirthDate: storetest.Base, CreatedAt: storetest.Base,
	})

	rec := s.do(http.MethodPost, "/search/", `{"search": "karimov"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body["players"]) != 5 {
		t.Fatalf("players = %d, want 5", len(body["players"]))
	}
	if body["players"][0]["full_name"] != "Karimov G" {
		t.Fatalf("first player = %v, want the newest", body["players"][0]["full_name"])
	}
	if len(body["leaders"]) != 1 || len(body["news"]) != 0 || len(body["coaches"]) != 0 {
		t.Fatalf("body = %v", body)
	}
	if rec.Header().Get(cache.HeaderCache) != "" {
		t.Fatalf("search went through the cache: %q", rec.Header().Get(cache.HeaderCache))
	}

	rec = s.do(http.MethodPost, "/search/", `{"search": "`+strings.Repeat("x", 101)+`"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("long query: status = %d, want 400", rec.Code)
	}
}
