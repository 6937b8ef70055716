package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"pokedex/internal/common"
	"pokedex/internal/server/models"
)

// Sort orders accepted by SortByField.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FilterByName returns the items whose name contains substr,
// case-insensitively, preserving the original relative order. An empty
// substring is an input error, not an empty result.
func FilterByName(items []models.Pokemon, substr string) ([]models.Pokemon, error) {
	if substr == "" {
		return nil, fmt.Errorf("%w: name", common.ErrorMissingParameter)
	}

	needle := strings.ToLower(substr)
	filtered := make([]models.Pokemon, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// SortByField returns a sorted copy of items, comparing the named field's
// values as lowercased strings under lexical ordering. The field must name
// an attribute present on the catalog record and order must be "asc" or
// "desc". The sort is stable: items with equal keys keep their input order.
func SortByField(items []models.Pokemon, field, order string) ([]models.Pokemon, error) {
	if field == "" || order == "" {
		return nil, fmt.Errorf("%w: field, order", common.ErrorMissingParameter)
	}
	if !validField(field) {
		return nil, fmt.Errorf("%w: field %q", common.ErrorInvalidParameter, field)
	}
	if order != OrderAsc && order != OrderDesc {
		return nil, fmt.Errorf("%w: order %q", common.ErrorInvalidParameter, order)
	}

	sorted := make([]models.Pokemon, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := fieldString(&sorted[i], field)
		b := fieldString(&sorted[j], field)
		if order == OrderAsc {
			return a < b
		}
		return a > b
	})

	return sorted, nil
}

// FindByID returns the item with the exact identifier, or ok=false when the
// id is not in the dataset.
func FindByID(items []models.Pokemon, id int) (models.Pokemon, bool) {
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pokemon{}, false
}

// sortFields is the set of attribute names a client may sort on. It mirrors
// the JSON keys of the catalog record.
var sortFields = map[string]struct{}{
	"id":             {},
	"name":           {},
	"description":    {},
	"height":         {},
	"weight":         {},
	"isLegendary":    {},
	"birthdate":      {},
	"imageUrl":       {},
	"type":           {},
	"abilities":      {},
	"evolutionChain": {},
}

func validField(field string) bool {
	_, ok := sortFields[field]
	return ok
}

// fieldString renders the named attribute as a lowercased string, matching
// the catalog's string-based comparison semantics for every field type.
func fieldString(p *models.Pokemon, field string) string {
	var s string
	switch field {
	case "id":
		s = strconv.Itoa(p.ID)
	case "name":
		s = p.Name
	case "description":
		s = p.Description
	case "height":
		s = strconv.FormatFloat(p.Height, 'f', -1, 64)
	case "weight":
		s = strconv.FormatFloat(p.Weight, 'f', -1, 64)
	case "isLegendary":
		s = strconv.FormatBool(p.IsLegendary)
	case "birthdate":
		s = p.Birthdate
	case "imageUrl":
		s = p.ImageURL
	case "type":
		s = p.Type
	case "abilities":
		s = strings.Join(p.Abilities, ",")
	case "evolutionChain":
		s = fmt.Sprintf("%s->%s->%s", p.EvolutionChain.BaseForm, p.EvolutionChain.EvolvesTo, p.EvolutionChain.FinalForm)
	}
	return strings.ToLower(s)
}
