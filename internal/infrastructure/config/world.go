package config

import "github.com/younwookim/pevious/internal/domain/terrain"

// WorldConfig is the root config for world.json
type WorldConfig struct {
	ScrollSpeed float64             `json:"scrollSpeed"`
	Terrain     terrain.Config      `json:"terrain"`
	Clouds      terrain.CloudConfig `json:"clouds"`
}

// AssetsConfig is the root config for assets.json. Keys map to paths
// relative to the asset directory.
type AssetsConfig struct {
	Images map[string]string `json:"images"`
	Sounds map[string]string `json:"sounds"`
	BGM    string            `json:"bgm"`
}
