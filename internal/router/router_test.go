package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lightbnb/internal/cache"
	"lightbnb/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/properties",
		http.MethodPost + " /api/properties",
		http.MethodGet + " /api/reservations",
		http.MethodPost + " /api/users",
		http.MethodPost + " /api/users/login",
		http.MethodPost + " /api/users/logout",
		http.MethodGet + " /api/users/me",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{})

	for _, r := range []struct{ method, path string }{
		{http.MethodPost, "/api/properties"},
		{http.MethodGet, "/api/reservations"},
		{http.MethodPost, "/api/users/logout"},
		{http.MethodGet, "/api/users/me"},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(r.method, r.path, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, r.path)
	}
}
