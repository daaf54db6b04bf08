package ecs

import "github.com/JeremyLoy/config"

// WorldConfig holds the tunables a world is constructed with.
type WorldConfig struct {
	// ChunkBytes is the byte budget for a single chunk page.
	ChunkBytes int `config:"CHUNK_BYTES"`
}

// DefaultWorldConfig returns the built-in defaults.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{ChunkBytes: DefaultChunkBytes}
}

// LoadWorldConfig fills the config from the environment (CHUNK_BYTES),
// falling back to the defaults for unset or invalid values.
func LoadWorldConfig() WorldConfig {
	cfg := DefaultWorldConfig()
	config.FromEnv().To(&cfg)
	if cfg.ChunkBytes <= 0 {
		cfg.ChunkBytes = DefaultChunkBytes
	}
	return cfg
}
