package assets

import (
	"embed"
	"io/fs"
	"net/http"
	"slices"
	"sync"

	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

var ErrNotRegistered = errors.New("not registered")

type Type string

const TypeEmbed Type = "embed"

type CreateFunc func(options any) (fs.FS, error)

var (
	registryMutex sync.RWMutex
	registry      = map[Type]CreateFunc{}
)

//go:embed static/**
var staticFs embed.FS

func init() {
	Register(TypeEmbed, func(options any) (fs.FS, error) {
		return Embedded(), nil
	})
}

// Embedded returns the assets shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return sub
}

func Register(typ Type, fn CreateFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[typ] = fn
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for typ := range registry {
		types = append(types, typ)
	}

	slices.Sort(types)

	return types
}

func New(typ Type, options any) (fs.FS, error) {
	registryMutex.RLock()
	create, exists := registry[typ]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "no assets source registered for type '%s'", typ)
	}

	fsys, err := create(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fsys, nil
}

// Handler serves the given source, falling back on the embedded assets for
// missing files.
func Handler(source fs.FS) http.Handler {
	return http.FileServerFS(mergefs.Merge(source, Embedded()))
}
