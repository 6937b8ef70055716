// Package cli is the interactive catalog viewer. It works either off the
// local JSON dataset or, when a server address is configured, against the
// catalog server's JSON API after an interactive login.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"pokedex/internal/client/api"
	"pokedex/internal/client/config"
	"pokedex/internal/common"
	"pokedex/internal/server/catalog"
	"pokedex/internal/server/models"
)

// catalogSource is the minimal data surface the menu needs. The local dataset
// and the remote API client both satisfy it.
type catalogSource interface {
	List(ctx context.Context) ([]models.Pokemon, error)
	Get(ctx context.Context, id int) (models.Pokemon, error)
}

// localSource serves the dataset loaded from disk at startup.
type localSource struct {
	items []models.Pokemon
}

func (s *localSource) List(ctx context.Context) ([]models.Pokemon, error) {
	return s.items, nil
}

func (s *localSource) Get(ctx context.Context, id int) (models.Pokemon, error) {
	item, ok := catalog.FindByID(s.items, id)
	if !ok {
		return models.Pokemon{}, common.ErrorNotFound
	}
	return item, nil
}

type App struct {
	config *config.Config
	source catalogSource
	remote *api.Client
	reader *bufio.Reader
	out    io.Writer
}

// NewApp picks the data source from the config: a configured server address
// selects remote mode, otherwise the local dataset file is loaded up front.
func NewApp(cfg *config.Config) (*App, error) {

	app := &App{config: cfg, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	if cfg.ServerAddr != "" {
		client := api.NewClient(cfg.ServerAddr)
		app.remote = client
		app.source = client
		return app, nil
	}

	items, err := catalog.Load(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("dataset load error: %w", err)
	}
	app.source = &localSource{items: items}

	return app, nil
}

// Run logs in first when in remote mode, then hands over to the menu loop.
func (a *App) Run(ctx context.Context) error {
	if a.remote != nil {
		if err := a.login(ctx); err != nil {
			return err
		}
	}
	a.runMenu(ctx)
	return nil
}

func (a *App) login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username:", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.remote.Login(ctx, username, string(password)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", username)
	return nil
}
