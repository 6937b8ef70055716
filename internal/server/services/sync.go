package services

import (
	"context"
	"database/sql"
	"fmt"

	"pokedex/internal/logging"
	"pokedex/internal/server/models"
	"pokedex/internal/server/repositories/repomanager"
)

// SyncService mirrors the in-memory dataset into the pokemons collection at
// boot. The mirror is write-only: request handling reads the dataset, not
// the database.
type SyncService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewSyncService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *SyncService {
	return &SyncService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "sync_service"),
	}
}

// SyncCatalog inserts every item that is not yet stored, keyed by catalog
// id, and skips the rest. Running it repeatedly against the same dataset is
// a no-op after the first pass.
func (s *SyncService) SyncCatalog(ctx context.Context, items []models.Pokemon) error {
	repo := s.repomanager.Pokemons(s.db)

	for i := range items {
		item := &items[i]

		exists, err := repo.Exists(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("error checking pokemon %d: %w", item.ID, err)
		}
		if exists {
			s.logger.Info(ctx, "pokemon already exists in the database, skipping insertion", "name", item.Name)
			continue
		}

		if err := repo.Create(ctx, item); err != nil {
			return fmt.Errorf("error inserting pokemon %d: %w", item.ID, err)
		}
		s.logger.Info(ctx, "pokemon inserted into the database", "name", item.Name)
	}

	return nil
}
