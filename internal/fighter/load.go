package fighter

import "fmt"

// IntegrityError reports model data that must never reach report generation.
// It aborts loading of the whole mod.
type IntegrityError struct {
	Scope string
	// Offset is the duplicated script offset, if the error is about scripts.
	Offset uint32
	// First and Second are the indexes of the colliding scripts.
	First  int
	Second int
	// Reason is set for integrity errors that are not offset collisions.
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fighter: integrity violation in %s: %s", e.Scope, e.Reason)
	}
	return fmt.Sprintf("fighter: duplicate script offset 0x%x in %s (scripts %d and %d)",
		e.Offset, e.Scope, e.First, e.Second)
}

// NewMod validates the fighters and builds every symbol table. The returned Mod
// is complete and read-only; on error nothing is returned.
func NewMod(name string, fighters []*Fighter, commonScripts []Script, linkPrefix string) (*Mod, error) {
	paths := Paths{Prefix: linkPrefix, Mod: name}

	common, err := buildSymbols(paths, CommonScope, nil, commonScripts)
	if err != nil {
		return nil, err
	}

	for _, f := range fighters {
		if err := checkFrames(f); err != nil {
			return nil, err
		}
		symbols, err := buildSymbols(paths, f.Name, f.Subactions, f.Scripts)
		if err != nil {
			return nil, err
		}
		f.Symbols = symbols
	}

	return &Mod{
		Name:          name,
		Fighters:      fighters,
		CommonScripts: commonScripts,
		Common:        common,
		Paths:         paths,
	}, nil
}

// checkFrames enforces 0 <= iasa <= frame count for every subaction.
func checkFrames(f *Fighter) error {
	for _, sub := range f.Subactions {
		if sub.IASA < 0 || sub.IASA > len(sub.Frames) {
			return &IntegrityError{
				Scope:  f.Name + "/" + sub.Name,
				Reason: fmt.Sprintf("iasa %d outside [0, %d]", sub.IASA, len(sub.Frames)),
			}
		}
	}
	return nil
}
