package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Bindings *BindingsConfig
}

// Loader loads game configuration from files using fs.FS interface
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

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, PhysicsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	// Missing keys keep their shipped defaults
	cfg := DefaultPhysics()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics.json: %w", err)
	}

	return cfg, nil
}

// LoadBindings loads bindings.yaml
func (l *Loader) LoadBindings() (*BindingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, BindingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings.yaml: %w", err)
	}

	var cfg BindingsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bindings.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadRoom loads a room JSON file
func (l *Loader) LoadRoom(name string) (*RoomConfig, error) {
	p := path.Join(RoomsDir, name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read room %s: %w", name, err)
	}

	var cfg RoomConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse room %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// RoomNames lists the JSON rooms available to the loader
func (l *Loader) RoomNames() ([]string, error) {
	matches, err := fs.Glob(l.fsys, path.Join(RoomsDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads all base configurations (physics, bindings)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	bindings, err := l.LoadBindings()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Bindings: bindings,
	}, nil
}

// File layout under the config directory
const (
	PhysicsFile  = "physics.json"
	BindingsFile = "bindings.yaml"
	RoomsDir     = "rooms"
)
