package web

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pokedex/internal/common"
	"pokedex/internal/cryptox"
	"pokedex/internal/dbx"
	"pokedex/internal/logging"
	"pokedex/internal/server/config"
	"pokedex/internal/server/models"
	"pokedex/internal/server/repositories/pokemons"
	"pokedex/internal/server/repositories/users"
	"pokedex/internal/server/services"
	"pokedex/internal/server/sessions"
)

// --- in-memory fakes backing the user service in handler tests ---

type fakeUsersRepo struct {
	byUsername map[string]*models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byUsername: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := f.byUsername[u.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	stored := *u
	stored.ID = "uid-" + u.Username
	stored.CreatedAt = time.Now()
	f.byUsername[u.Username] = &stored
	return &stored, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeRepoManager struct {
	users users.Repository
}

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository            { return f.users }
func (f *fakeRepoManager) Pokemons(db dbx.DBTX) pokemons.Repository     { return nil }
func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

// --- test server wiring ---

func testDataset() []models.Pokemon {
	return []models.Pokemon{
		{
			ID: 1, Name: "Bulbasaur", Type: "Grass", Height: 0.7, Weight: 6.9,
			Abilities: []string{"Overgrow"},
			EvolutionChain: models.EvolutionChain{
				ID: 1, BaseForm: "Bulbasaur", EvolvesTo: "Ivysaur", FinalForm: "Venusaur",
			},
		},
		{
			ID: 2, Name: "Ivysaur", Type: "Grass", Height: 1.0, Weight: 13,
			Abilities: []string{"Overgrow"},
			EvolutionChain: models.EvolutionChain{
				ID: 1, BaseForm: "Bulbasaur", EvolvesTo: "Ivysaur", FinalForm: "Venusaur",
			},
		},
	}
}

func newTestServer(t *testing.T) (*Server, *fakeUsersRepo) {
	t.Helper()

	cfg := &config.Config{
		Address:                     ":0",
		SecretKey:                   "test-secret",
		SessionTTL:                  time.Hour,
		AccessTokenValidityDuration: time.Hour,
		SeedAdminPassword:           "adminpassword",
		SeedUserPassword:            "userpassword",
		PublicDir:                   t.TempDir(),
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo := newFakeUsersRepo()
	us := services.NewUserService(nil, &fakeRepoManager{users: repo}, logger, cfg)
	ms := services.NewMediaService(cfg, logger)
	ss := sessions.NewStore(cfg.SessionTTL)

	srv, err := NewServer(cfg, logger, testDataset(), us, ms, ss)
	require.NoError(t, err)
	return srv, repo
}

func seedAccount(t *testing.T, repo *fakeUsersRepo, username, password string) {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &models.User{
		Username: username, PasswordHash: hash, Role: models.RoleUser,
	})
	require.NoError(t, err)
}

func doRequest(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, srv, req)
}

// loginSession registers the account if needed, logs in, and returns the
// session cookie.
func loginSession(t *testing.T, srv *Server, repo *fakeUsersRepo, username, password string) *http.Cookie {
	t.Helper()
	if _, err := repo.GetByUsername(context.Background(), username); err != nil {
		seedAccount(t, repo, username, password)
	}

	rec := postForm(t, srv, "/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusFound, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}
