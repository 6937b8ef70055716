package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAnonymous_AnonymousSeesLoginPage(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log in")
}

func TestRequireAnonymous_AuthenticatedIsRedirected(t *testing.T) {
	srv, repo := newTestServer(t)
	cookie := loginSession(t, srv, repo, "misty", "starmie")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
}

func TestRequireAuthenticated_AnonymousIsRedirected(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/home", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireAuthenticated_SessionProceeds(t *testing.T) {
	srv, repo := newTestServer(t)
	cookie := loginSession(t, srv, repo, "misty", "starmie")

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(cookie)
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back")
}

func TestRequireAuthenticated_StaleCookieIsRedirected(t *testing.T) {
	srv, repo := newTestServer(t)
	cookie := loginSession(t, srv, repo, "misty", "starmie")
	srv.sessions.Destroy(cookie.Value)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(cookie)
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}
