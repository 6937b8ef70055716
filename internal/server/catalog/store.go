// Package catalog implements the in-memory Pokémon dataset: loading it from
// the static JSON source and the filter/sort/lookup queries the web layer
// and the CLI viewer run against it.
package catalog

import (
	"pokedex/internal/filex"
	"pokedex/internal/server/models"
)

// Load reads the dataset from the JSON file at path. Failures wrap
// common.ErrorDatasetRead or common.ErrorDatasetParse; either one is fatal
// at startup, since the catalog has no usable default.
//
// The returned slice is shared and must be treated as read-only; queries
// always return fresh slices and never mutate entries in place.
func Load(path string) ([]models.Pokemon, error) {
	var items []models.Pokemon
	if err := filex.ReadJSON(path, &items); err != nil {
		return nil, err
	}
	return items, nil
}
