// Package config loads runtime settings for the catalog viewer CLI.
package config

// Config holds runtime settings for the viewer.
//
// Fields:
//   - DatasetPath: path of the local JSON dataset (local mode).
//   - ServerAddr: host:port (or full URL) of the catalog server. When set,
//     the viewer works against the server's JSON API instead of the local
//     file.
type Config struct {
	DatasetPath string `json:"dataset_path"`
	ServerAddr  string `json:"server_address"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatasetPath = "pokemon.json"
	c.ServerAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
