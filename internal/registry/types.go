package registry

import "time"

// Pack is a registered firmware package root
type Pack struct {
	ID           string    `yaml:"id" json:"id"`                       // UUID v4
	Name         string    `yaml:"name" json:"name"`                   // Human-readable pack name
	Path         string    `yaml:"path" json:"path"`                   // Absolute path to the package root
	RegisteredAt time.Time `yaml:"registered_at" json:"registered_at"` // When the pack was registered
}

// RegistryData holds all registered packs
type RegistryData struct {
	Packs map[string]*Pack `yaml:"packs" json:"packs"` // Map of pack ID to Pack
}
