// Package pokemons stores the catalog mirror: each Pokémon is kept as one
// JSONB document keyed by its catalog id.
package pokemons

import (
	"context"

	"pokedex/internal/server/models"
)

// Repository is the data-access contract for the catalog mirror.
type Repository interface {
	// Exists reports whether a document with the given catalog id is stored.
	Exists(ctx context.Context, id int) (bool, error)

	// Create inserts the item as a new document.
	Create(ctx context.Context, item *models.Pokemon) error

	// GetByID returns the stored document, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int) (*models.Pokemon, error)

	// GetAll returns every stored document ordered by catalog id.
	GetAll(ctx context.Context) ([]models.Pokemon, error)
}
