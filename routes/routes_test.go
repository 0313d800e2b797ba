package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfare/budget"
	"wayfare/catalog"
	"wayfare/chat"
	"wayfare/dialogue"
	"wayfare/ratelim"
	"wayfare/session"

	"github.com/julienschmidt/httprouter"
)

// newFullRouter registers every route group exactly as main.go does.
func newFullRouter(t *testing.T) *httprouter.Router {
	t.Helper()

	cat := catalog.NewMemoryStore()
	engine := dialogue.NewEngine(cat, session.NewMemoryStore(), nil, budget.DefaultPolicy())
	rateLimiter := ratelim.NewRateLimiter()
	hub := chat.NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	router := httprouter.New()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("route registration panicked: %v", r)
		}
	}()
	AddUtilityRoutes(router)
	AddCatalogRoutes(router, rateLimiter, cat)
	AddChatRoutes(router, rateLimiter, engine, hub)

	return router
}

func TestFullRouteRegistration(t *testing.T) {
	router := newFullRouter(t)

	checks := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/destinations", "", http.StatusOK},
		{http.MethodGet, "/api/v1/catalog/italy/hotels", "", http.StatusOK},
		{http.MethodGet, "/api/v1/catalog/italy/activities", "", http.StatusOK},
		{http.MethodPost, "/api/v1/conversations", "", http.StatusCreated},
		{http.MethodPost, "/api/v1/conversations/c1/messages", `{"message":"hello"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/conversations/c1/itinerary", "", http.StatusNotFound},
		{http.MethodDelete, "/api/v1/conversations/c1", "", http.StatusOK},
	}

	for _, c := range checks {
		var req *http.Request
		if c.body != "" {
			req = httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		} else {
			req = httptest.NewRequest(c.method, c.path, nil)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Errorf("%s %s: got %d, want %d", c.method, c.path, rec.Code, c.want)
		}
	}
}
