// Package registry provides a global registry for model file parsers.
// Parsers register themselves in init() functions, allowing the loader
// to pick one by file extension without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/framedata/internal/fighter"
)

// Model is the raw content of a model file, before symbol tables are built.
type Model struct {
	Name          string
	Fighters      []*fighter.Fighter
	CommonScripts []fighter.Script
}

// Parser decodes one model file format.
type Parser interface {
	// ID returns a unique identifier for this format (e.g., "yaml").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Extensions returns the lower-case file extensions, with the dot.
	Extensions() []string

	// Parse decodes a whole model file.
	Parse(data []byte) (*Model, error)
}

// ParserInfo contains metadata about a registered parser.
type ParserInfo struct {
	ID         string
	Title      string
	Extensions []string
}

// Factory is a function that creates a new parser.
type Factory func() Parser

var (
	factories  = make(map[string]Factory)
	infos      = make(map[string]ParserInfo)
	extensions = make(map[string]string)
	mu         sync.RWMutex
)

// Register adds a parser factory to the registry.
// Typically called from a format's init() function.
// Panics if the ID or one of its extensions is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: parser %q already registered", id))
	}

	p := f()
	for _, ext := range p.Extensions() {
		ext = strings.ToLower(ext)
		if owner, taken := extensions[ext]; taken {
			panic(fmt.Sprintf("registry: extension %q already registered by %q", ext, owner))
		}
		extensions[ext] = id
	}

	factories[id] = f
	infos[id] = ParserInfo{ID: id, Title: p.Title(), Extensions: p.Extensions()}
}

// List returns information about all registered parsers, sorted by ID.
func List() []ParserInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ParserInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a parser by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Parser, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown parser %q", id)
	}

	return f(), nil
}

// ForExtension instantiates the parser registered for ext (".yaml").
func ForExtension(ext string) (Parser, bool) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := extensions[strings.ToLower(ext)]
	if !ok {
		return nil, false
	}
	return factories[id](), true
}

// Exists checks if a parser with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
