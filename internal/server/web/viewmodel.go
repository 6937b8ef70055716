package web

import (
	"context"
	"strings"

	"pokedex/internal/server/models"
)

// ItemView is one catalog row prepared for rendering. ImageURL has already
// been resolved through the media service.
type ItemView struct {
	ID          int
	Name        string
	Description string
	Height      float64
	Weight      float64
	IsLegendary bool
	Birthdate   string
	ImageURL    string
	Type        string
	Abilities   string
	Evolution   string
}

// IndexView backs the catalog listing page.
type IndexView struct {
	Items    []ItemView
	LoggedIn bool
}

// DetailView backs the single-item page.
type DetailView struct {
	Item     ItemView
	LoggedIn bool
}

// LoginView backs the login form; Error is empty unless the previous
// attempt failed.
type LoginView struct {
	Error string
}

// RegisterView backs the registration form.
type RegisterView struct {
	Error string
}

// HomeView backs the authenticated landing page.
type HomeView struct {
	LoggedIn bool
}

// newItemView maps one catalog record to its view model. Not-found
// conditions never reach this mapping; they are handled explicitly by the
// caller.
func (s *Server) newItemView(ctx context.Context, p *models.Pokemon) ItemView {
	return ItemView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Height:      p.Height,
		Weight:      p.Weight,
		IsLegendary: p.IsLegendary,
		Birthdate:   p.Birthdate,
		ImageURL:    s.media.ResolveImageURL(ctx, p.ImageURL),
		Type:        p.Type,
		Abilities:   strings.Join(p.Abilities, ", "),
		Evolution:   p.EvolutionChain.BaseForm + " -> " + p.EvolutionChain.EvolvesTo + " -> " + p.EvolutionChain.FinalForm,
	}
}

func (s *Server) newIndexView(ctx context.Context, items []models.Pokemon, loggedIn bool) IndexView {
	view := IndexView{
		Items:    make([]ItemView, 0, len(items)),
		LoggedIn: loggedIn,
	}
	for i := range items {
		view.Items = append(view.Items, s.newItemView(ctx, &items[i]))
	}
	return view
}
