// SPDX-License-Identifier: MIT
// Package: blokus/piece
//
// options.go - functional options for Catalog.
//
// Contract:
//   • Options are functional (type CatalogOption func(*catalogConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     Catalog itself never panics.
//   • Later options override earlier ones.

package piece

import (
	"runtime"

	"github.com/katalvlaran/blokus/shape"
)

// CatalogOption customizes Catalog.
type CatalogOption func(*catalogConfig)

// catalogConfig aggregates all knobs used by Catalog.
type catalogConfig struct {
	// bounds are forwarded to shape.Arrangements.
	bounds []shape.BoundOption
	// workers caps concurrent goroutines; <=0 never reaches here.
	workers int
}

// newCatalogConfig applies opts over deterministic defaults:
// no bounds, one worker per CPU.
func newCatalogConfig(opts ...CatalogOption) catalogConfig {
	cfg := catalogConfig{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBounds keeps only arrangements whose coordinates all lie in
// [lower, upper]. Panics if lower > upper.
func WithBounds(lower, upper int) CatalogOption {
	if lower > upper {
		panic("piece: WithBounds(lower>upper)")
	}
	return func(c *catalogConfig) {
		c.bounds = []shape.BoundOption{shape.WithLower(lower), shape.WithUpper(upper)}
	}
}

// WithBoard is WithBounds(0, size-1). Panics if size < 1.
func WithBoard(size int) CatalogOption {
	if size < 1 {
		panic("piece: WithBoard(size<1)")
	}
	return WithBounds(0, size-1)
}

// WithWorkers caps the number of pieces processed at once. Panics if n < 1.
func WithWorkers(n int) CatalogOption {
	if n < 1 {
		panic("piece: WithWorkers(n<1)")
	}
	return func(c *catalogConfig) {
		c.workers = n
	}
}
