// SPDX-License-Identifier: MIT
// File: backend.go
// Role: name → Backend registry. The built-in "molalign" backend is a
// default Engine; callers may register others (for example a wrapper around
// an external toolkit) and select them by name from configuration.

package align

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/molalign/config"
	"github.com/katalvlaran/molalign/core"
)

// DefaultBackend is the name of the built-in Engine backend.
const DefaultBackend = "molalign"

// Backend computes RMSD and alignments. *Engine implements it.
type Backend interface {
	RMSD(a, b core.Structure) (*Result, error)
	Align(mobile, reference core.Structure) (core.Structure, *Result, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Backend{DefaultBackend: New()}
)

// Register adds b under name (case-insensitive).
//
// Errors:
//   - ErrOptionViolation for an empty name or nil backend.
//   - ErrBackendExists if the name is taken.
func Register(name string, b Backend) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || b == nil {
		return fmt.Errorf("%w: Register(%q, %v)", ErrOptionViolation, name, b)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[key]; ok {
		return fmt.Errorf("%w: %q", ErrBackendExists, key)
	}
	registry[key] = b

	return nil
}

// Lookup returns the backend registered under name (case-insensitive).
//
// Errors:
//   - ErrUnknownBackend, listing the known names.
func Lookup(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	registryMu.RLock()
	b, ok := registry[key]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q, known: %s", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}

	return b, nil
}

// BackendFromConfig resolves cfg.Backend. The default name yields an Engine
// built from cfg; any other name is looked up in the registry as is.
//
// Errors:
//   - config.ErrInvalidConfig if cfg does not validate.
//   - ErrUnknownBackend for an unregistered name.
func BackendFromConfig(cfg config.Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Backend), DefaultBackend) {
		return New(WithConfig(cfg)), nil
	}

	return Lookup(cfg.Backend)
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}
