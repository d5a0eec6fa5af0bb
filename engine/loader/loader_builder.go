package loader

import (
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithColor is an option builder that sets the vertex color assigned to every loaded vertex.
//
// Parameters:
//   - c: the vertex color
//
// Returns:
//   - LoaderBuilderOption: a function that applies the color option to a loader
func WithColor(c common.Color) LoaderBuilderOption {
	return func(l *loader) {
		l.color = c
	}
}

// WithModelOptions is an option builder that appends model options to every loaded Model,
// e.g. a default scale for placed copies.
//
// Parameters:
//   - options: the model options
//
// Returns:
//   - LoaderBuilderOption: a function that applies the model options to a loader
func WithModelOptions(options ...model.ModelBuilderOption) LoaderBuilderOption {
	return func(l *loader) {
		l.modelOptions = append(l.modelOptions, options...)
	}
}

// WithWorkers is an option builder that bounds the number of goroutines Preload uses.
//
// Parameters:
//   - n: the worker count, minimum 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithModel is an option builder that pre-populates the model cache with a model.
//
// Parameters:
//   - key: the cache key for the model
//   - model: the model to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the model option to a loader
func WithModel(key string, model model.Model) LoaderBuilderOption {
	return func(l *loader) {
		l.modelCache[key] = model
	}
}
