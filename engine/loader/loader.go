package loader

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeOBJ selects the Wavefront OBJ loader backend.
	BackendTypeOBJ LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	modelCache map[string]model.Model

	backend      loaderBackend
	color        common.Color
	modelOptions []model.ModelBuilderOption
	workers      int
}

// Loader defines the public-facing interface for loading and caching mesh files.
// It abstracts the file format behind a backend and caches every loaded Model
// by the path or name it was loaded under.
type Loader interface {
	// Load imports a model file and caches the result.
	// If the model is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension.
	// A file that parses to no triangles yields a Model with empty geometry;
	// placing it in a scene fails with mesh.ErrEmptyGeometry.
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: error if the file cannot be opened or read
	Load(path string) (model.Model, error)

	// LoadReader imports a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded model
	//   - r: the reader providing model data
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (model.Model, error)

	// Preload loads every path in parallel on a bounded worker pool and returns once all finish.
	// Successfully loaded files are cached even when others fail.
	//
	// Parameters:
	//   - paths: the files to load
	//
	// Returns:
	//   - error: the joined load errors, or nil
	Preload(paths ...string) error

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns the full model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeOBJ)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:         sync.RWMutex{},
		modelCache: make(map[string]model.Model),
		color:      common.DimGray,
		workers:    4,
	}

	for _, option := range options {
		option(l)
	}

	switch backendType {
	case BackendTypeOBJ:
		l.backend = newOBJLoaderBackend(l.color)
	}
	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	imported, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return l.store(path, imported), nil
}

func (l *loader) LoadReader(name string, r io.Reader) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	imported, err := l.backend.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	return l.store(name, imported), nil
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

// resolveBackend selects an appropriate loader backend based on the file extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if slices.Contains(l.backend.Extensions(), ext) {
		return l.backend, nil
	}
	return nil, fmt.Errorf("unsupported model format: %q", ext)
}

// store wraps an import in a Model and caches it under key. The model takes the name the
// file declares, falling back to the file's base name.
// If another goroutine cached the same key first, that model wins.
func (l *loader) store(key string, imported ImportResult) model.Model {
	if imported.Skipped > 0 {
		log.Printf("[Loader] %s: skipped %d unusable lines", key, imported.Skipped)
	}
	if imported.Geometry.Empty() {
		log.Printf("[Loader] %s: no triangles found", key)
	}

	opts := append([]model.ModelBuilderOption{
		model.WithName(common.Coalesce(imported.Name, strings.TrimSuffix(filepath.Base(key), filepath.Ext(key)))),
		model.WithGeometry(imported.Geometry),
		model.WithColor(l.color),
	}, l.modelOptions...)
	m := model.NewModel(opts...)

	l.mu.Lock()
	defer l.mu.Unlock()
	if cached, ok := l.modelCache[key]; ok {
		return cached
	}
	l.modelCache[key] = m
	return m
}
