package models

// EvolutionChain describes the three-stage evolution line a Pokémon belongs to.
type EvolutionChain struct {
	ID        int    `json:"id"`
	BaseForm  string `json:"baseForm"`
	EvolvesTo string `json:"evolvesTo"`
	FinalForm string `json:"finalForm"`
}

// Pokemon is one catalog record. The dataset is loaded once at startup and
// treated as immutable afterwards.
type Pokemon struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Height         float64        `json:"height"`
	Weight         float64        `json:"weight"`
	IsLegendary    bool           `json:"isLegendary"`
	Birthdate      string         `json:"birthdate"`
	ImageURL       string         `json:"imageUrl"`
	Type           string         `json:"type"`
	Abilities      []string       `json:"abilities"`
	EvolutionChain EvolutionChain `json:"evolutionChain"`
}
