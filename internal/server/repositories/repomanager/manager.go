// Package repomanager wires repository constructors to a concrete storage
// backend and exposes the schema migration hook run at startup.
package repomanager

import (
	"context"
	"database/sql"

	"pokedex/internal/dbx"
	"pokedex/internal/server/repositories/pokemons"
	"pokedex/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// them against the pool or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Pokemons(db dbx.DBTX) pokemons.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
