package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

// ImportResult is the CPU-side output of a backend import.
type ImportResult struct {
	// Geometry is the imported triangle list. It may be empty.
	Geometry mesh.Geometry
	// Skipped counts lines that were recognized but could not be used.
	Skipped int
	// Name is the object name declared in the file, if any.
	Name string
}

// loaderBackend defines the generic interface for importing geometry from files or streams.
// Concrete implementations (e.g., objLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load imports the file at path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - ImportResult: the imported geometry
	//   - error: error if the file cannot be read
	Load(path string) (ImportResult, error)

	// LoadReader imports from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing model data
	//
	// Returns:
	//   - ImportResult: the imported geometry
	//   - error: error if the stream cannot be read
	LoadReader(r io.Reader) (ImportResult, error)

	// Extensions lists the lowercase file extensions the backend accepts, including the dot.
	Extensions() []string
}
