package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/server/models"
)

func apiLogin(t *testing.T, srv *Server, repo *fakeUsersRepo, username, password string) string {
	t.Helper()
	seedAccount(t, repo, username, password)

	body := `{"username":"` + username + `","password":"` + password + `"}`
	rec := doRequest(t, srv, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func authedGet(t *testing.T, srv *Server, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return doRequest(t, srv, req)
}

func TestAPILogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	srv, repo := newTestServer(t)
	seedAccount(t, repo, "misty", "starmie")

	cases := []string{
		`{"username":"misty","password":"wrong"}`,
		`{"username":"ghost","password":"whatever"}`,
	}

	var bodies []string
	for _, body := range cases {
		rec := doRequest(t, srv, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1], "wrong password and unknown user must read the same")
}

func TestAPILogin_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIList_RequiresToken(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = authedGet(t, srv, "/api/pokemon", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIList_ReturnsDataset(t *testing.T) {
	srv, repo := newTestServer(t)
	token := apiLogin(t, srv, repo, "misty", "starmie")

	rec := authedGet(t, srv, "/api/pokemon", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Pokemon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Bulbasaur", items[0].Name)
}

func TestAPIDetail(t *testing.T) {
	srv, repo := newTestServer(t)
	token := apiLogin(t, srv, repo, "misty", "starmie")

	rec := authedGet(t, srv, "/api/pokemon/2", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.Pokemon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Ivysaur", item.Name)

	rec = authedGet(t, srv, "/api/pokemon/99", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIFilter(t *testing.T) {
	srv, repo := newTestServer(t)
	token := apiLogin(t, srv, repo, "misty", "starmie")

	rec := authedGet(t, srv, "/api/pokemon/filter?name=ivy", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Pokemon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Ivysaur", items[0].Name)

	rec = authedGet(t, srv, "/api/pokemon/filter", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPISort(t *testing.T) {
	srv, repo := newTestServer(t)
	token := apiLogin(t, srv, repo, "misty", "starmie")

	rec := authedGet(t, srv, "/api/pokemon/sort?field=name&order=desc", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Pokemon
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Ivysaur", items[0].Name)
	assert.Equal(t, "Bulbasaur", items[1].Name)

	rec = authedGet(t, srv, "/api/pokemon/sort?field=bogus&order=asc", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
