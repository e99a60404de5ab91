package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/registry"
)

// ErrUnsupportedFormat is returned for model files no parser is registered for.
var ErrUnsupportedFormat = errors.New("formats: unsupported model format")

// Load reads the model file at path and builds the mod. The mod is named by
// the file's name field, or the file name without extension. Integrity
// violations are returned as *fighter.IntegrityError.
func Load(path, linkPrefix string) (*fighter.Mod, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := registry.ForExtension(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formats: cannot read %s: %w", path, err)
	}

	m, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("formats: cannot parse %s: %w", path, err)
	}

	name := m.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return fighter.NewMod(name, m.Fighters, m.CommonScripts, linkPrefix)
}
