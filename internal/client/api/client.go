// Package api is a thin HTTP client for the catalog server's JSON API. It
// exchanges credentials for a bearer token once and attaches the token to
// every subsequent request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pokedex/internal/common"
	"pokedex/internal/server/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient builds a client for the given server address. A bare host:port
// is assumed to be plain HTTP.
func NewClient(addr string) *Client {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &Client{
		baseURL:    strings.TrimRight(addr, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token and stores it on the client.
// A 401 maps to common.ErrorInvalidCredentials.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return common.ErrorInvalidCredentials
	default:
		return fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return err
	}

	c.token = lr.AccessToken
	return nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// List fetches the whole catalog.
func (c *Client) List(ctx context.Context) ([]models.Pokemon, error) {
	var items []models.Pokemon
	if err := c.get(ctx, "/api/pokemon", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item by its catalog id.
func (c *Client) Get(ctx context.Context, id int) (models.Pokemon, error) {
	var item models.Pokemon
	if err := c.get(ctx, fmt.Sprintf("/api/pokemon/%d", id), &item); err != nil {
		return models.Pokemon{}, err
	}
	return item, nil
}
