package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game   *GameSettings
	World  *WorldConfig
	Assets *AssetsConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadGame loads game.json and resolves its colour table
func (l *Loader) LoadGame() (*GameSettings, error) {
	var cfg GameSettings
	if err := l.readJSON("game.json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.resolveColors(); err != nil {
		return nil, fmt.Errorf("failed to resolve colors in game.json: %w", err)
	}
	return &cfg, nil
}

// LoadWorld loads world.json
func (l *Loader) LoadWorld() (*WorldConfig, error) {
	var cfg WorldConfig
	if err := l.readJSON("world.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAssets loads assets.json
func (l *Loader) LoadAssets() (*AssetsConfig, error) {
	var cfg AssetsConfig
	if err := l.readJSON("assets.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads all configurations (game, world, assets), fills defaults
// and validates the result
func (l *Loader) LoadAll() (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	world, err := l.LoadWorld()
	if err != nil {
		return nil, err
	}

	assets, err := l.LoadAssets()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Game:   game,
		World:  world,
		Assets: assets,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
