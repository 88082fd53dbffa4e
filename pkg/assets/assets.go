// Package assets resolves the filesystem the site's static files are served
// from. Backends register themselves by type; the embedded files compiled
// into the binary are always available as a fallback.
package assets

import (
	"io/fs"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type Type string

var ErrNotRegistered = errors.New("assets backend not registered")

// CreateFunc builds a backend from its raw options. embedded holds the files
// compiled into the binary.
type CreateFunc func(options any, embedded fs.FS) (fs.FS, error)

var (
	registryMu sync.RWMutex
	registry   = map[Type]CreateFunc{}
)

func Register(typ Type, fn CreateFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[typ] = fn
}

func Registered() []Type {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]Type, 0, len(registry))
	for typ := range registry {
		types = append(types, typ)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})

	return types
}

func New(typ Type, options any, embedded fs.FS) (fs.FS, error) {
	registryMu.RLock()
	create, exists := registry[typ]
	registryMu.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "'%s'", typ)
	}

	fsys, err := create(options, embedded)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fsys, nil
}
