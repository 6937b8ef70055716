package config

import (
	"encoding/json"
	"os"

	"pokedex/internal/flagx"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
type JsonConfig struct {
	DatasetPath string `json:"dataset_path"`
	ServerAddr  string `json:"server_address"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named the
// function is a no-op; an unreadable or malformed file panics, since a
// half-applied config is worse than a crash at startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatasetPath = c.DatasetPath
	config.ServerAddr = c.ServerAddr
}
