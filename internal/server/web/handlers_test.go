package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_RendersFullDataset(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bulbasaur")
	assert.Contains(t, body, "Ivysaur")
}

func TestIndexAlias_RedirectsToCatalog(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/index", nil))

	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
}

func TestDetail_KnownID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/catalog/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bulbasaur")
	assert.Contains(t, body, "Venusaur")
}

func TestDetail_UnknownID(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/catalog/999", "/catalog/notanumber"} {
		rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "Pokemon not found")
	}
}

func TestFilter_MatchesSubstringCaseInsensitively(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/catalog/filter?name=ivy", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ivysaur")
	assert.NotContains(t, body, "Bulbasaur")
}

func TestFilter_MissingNameIs400(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/catalog/filter", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid query")
}

func TestSort_DescendingByName(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/catalog/sort?field=name&order=desc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "Ivysaur"), strings.Index(body, "Bulbasaur"),
		"Ivysaur must render before Bulbasaur in descending name order")
}

func TestSort_BadRequests(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path string
		want string
	}{
		{"/catalog/sort?order=asc", "Missing field or order query parameters"},
		{"/catalog/sort?field=name", "Missing field or order query parameters"},
		{"/catalog/sort?field=nonexistentField&order=asc", "Invalid field specified"},
		{"/catalog/sort?field=name&order=sideways", "Invalid field specified"},
	}

	for _, tc := range tests {
		rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", tc.path)
		assert.Contains(t, rec.Body.String(), tc.want, "path %s", tc.path)
	}
}

func TestRegister_CreatesAccountAndRedirectsToLogin(t *testing.T) {
	srv, repo := newTestServer(t)

	rec := postForm(t, srv, "/register", url.Values{
		"username": {"ash"}, "password": {"pikachu123"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	_, err := repo.GetByUsername(t.Context(), "ash")
	assert.NoError(t, err)
}

func TestRegister_DuplicateUsernameRerendersForm(t *testing.T) {
	srv, repo := newTestServer(t)
	seedAccount(t, repo, "ash", "original")

	rec := postForm(t, srv, "/register", url.Values{
		"username": {"ash"}, "password": {"other"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists")
}

func TestLogin_Success_EstablishesSession(t *testing.T) {
	srv, repo := newTestServer(t)
	seedAccount(t, repo, "misty", "starmie")

	rec := postForm(t, srv, "/login", url.Values{
		"username": {"misty"}, "password": {"starmie"},
	})

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie must be set")
	assert.True(t, cookie.HttpOnly)

	sess, ok := srv.sessions.Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "uid-misty", sess.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, repo := newTestServer(t)
	seedAccount(t, repo, "misty", "starmie")

	rec := postForm(t, srv, "/login", url.Values{
		"username": {"misty"}, "password": {"psyduck"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect password")
}

func TestLogin_UnknownUser(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postForm(t, srv, "/login", url.Values{
		"username": {"ghost"}, "password": {"boo"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User does not exist")
}

func TestLogout_DestroysSessionAndClearsCookie(t *testing.T) {
	srv, repo := newTestServer(t)
	cookie := loginSession(t, srv, repo, "misty", "starmie")

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	_, ok := srv.sessions.Get(cookie.Value)
	assert.False(t, ok, "session must be destroyed")

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie must be cleared")
}

func TestLogout_WithoutSessionStillClearsCookie(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/logout", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
