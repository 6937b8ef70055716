package pokemons

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pokedex/internal/common"
	"pokedex/internal/dbx"
	"pokedex/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM pokemons WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Pokemon) error {
	doc, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	query := `INSERT INTO pokemons (id, doc) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, item.ID, doc); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*models.Pokemon, error) {
	query := `SELECT doc FROM pokemons WHERE id = $1`

	var doc []byte
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	item := &models.Pokemon{}
	if err := json.Unmarshal(doc, item); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Pokemon, error) {
	query := `SELECT doc FROM pokemons ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []models.Pokemon
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		var item models.Pokemon
		if err := json.Unmarshal(doc, &item); err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
