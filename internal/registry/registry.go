package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrPackNotFound indicates the pack ID doesn't exist
	ErrPackNotFound = errors.New("pack not found")
	// ErrPackAlreadyExists indicates the path is already registered
	ErrPackAlreadyExists = errors.New("pack already exists")
	// ErrInvalidPath indicates the path doesn't exist or is not accessible
	ErrInvalidPath = errors.New("invalid path")
)

// Registry manages the collection of registered firmware packs
type Registry struct {
	filePath string
	data     *RegistryData
	mu       sync.RWMutex
}

// New creates a new Registry instance
func New(filePath string) (*Registry, error) {
	r := &Registry{
		filePath: filePath,
		data: &RegistryData{
			Packs: make(map[string]*Pack),
		},
	}

	// Try to load existing registry
	if err := r.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	return r, nil
}

// FilePath returns the path of the backing registry file
func (r *Registry) FilePath() string {
	return r.filePath
}

// Load reads the registry from disk
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			r.data = &RegistryData{Packs: make(map[string]*Pack)}
			return nil
		}
		return err
	}

	var registryData RegistryData
	if err := yaml.Unmarshal(data, &registryData); err != nil {
		return fmt.Errorf("failed to unmarshal registry: %w", err)
	}

	// Initialize map if nil
	if registryData.Packs == nil {
		registryData.Packs = make(map[string]*Pack)
	}

	r.data = &registryData
	return nil
}

// saveNoLock persists registry without locking (caller must hold lock)
func (r *Registry) saveNoLock() error {
	// Ensure parent directory exists
	dir := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(r.data)
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	// Write to temp file for atomic replacement
	f, err := os.CreateTemp(dir, ".packs-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()
	// Best-effort cleanup if we fail
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to fsync registry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close registry file: %w", err)
	}

	// Atomic replace
	if err := os.Rename(tmp, r.filePath); err != nil {
		return fmt.Errorf("failed to replace registry: %w", err)
	}

	return nil
}

// RegisterAndSave atomically registers and persists.
// On save failure, the in-memory change is rolled back.
func (r *Registry) RegisterAndSave(pack *Pack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate path exists and canonicalize it
	absPath, err := filepath.Abs(pack.Path)
	if err != nil {
		return fmt.Errorf("%w: path=%s: %v", ErrInvalidPath, pack.Path, err)
	}

	// Follow symlinks to get canonical path
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	if st, err := os.Stat(absPath); err != nil || !st.IsDir() {
		return fmt.Errorf("%w: path=%s is not a readable directory", ErrInvalidPath, absPath)
	}

	// Check if path already registered
	for _, p := range r.data.Packs {
		if p.Path == absPath {
			return ErrPackAlreadyExists
		}
	}

	// Set absolute path
	pack.Path = absPath

	// Set timestamps if not already set
	if pack.RegisteredAt.IsZero() {
		pack.RegisteredAt = time.Now().UTC()
	}

	// Generate ID if not set
	if pack.ID == "" {
		pack.ID = GeneratePackID()
	}

	// Apply in-memory
	r.data.Packs[pack.ID] = pack

	// Persist
	if err := r.saveNoLock(); err != nil {
		// Rollback in-memory change
		delete(r.data.Packs, pack.ID)
		return fmt.Errorf("persist failed: %w", err)
	}
	return nil
}

// UnregisterAndSave atomically removes and persists.
// On save failure, the removal is rolled back.
func (r *Registry) UnregisterAndSave(packID string) (*Pack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pack, ok := r.data.Packs[packID]
	if !ok {
		return nil, ErrPackNotFound
	}

	// Apply in-memory
	delete(r.data.Packs, packID)

	// Persist
	if err := r.saveNoLock(); err != nil {
		// Rollback removal
		r.data.Packs[packID] = pack
		return nil, fmt.Errorf("persist failed: %w", err)
	}
	return pack, nil
}

// Get returns a registered pack by id
func (r *Registry) Get(packID string) (*Pack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pack, ok := r.data.Packs[packID]
	if !ok {
		return nil, ErrPackNotFound
	}
	return pack, nil
}

// List returns all registered packs sorted by name then ID
func (r *Registry) List() []*Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	packs := make([]*Pack, 0, len(r.data.Packs))
	for _, p := range r.data.Packs {
		packs = append(packs, p)
	}

	sort.Slice(packs, func(i, j int) bool {
		if packs[i].Name == packs[j].Name {
			return packs[i].ID < packs[j].ID
		}
		return packs[i].Name < packs[j].Name
	})

	return packs
}
