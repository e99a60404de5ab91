// Package formats reads model files into fighters. Each file format is a
// registry.Parser registered by extension; the YAML decoder also serves
// JSON, which is valid YAML.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/registry"
)

type document struct {
	Name          string       `yaml:"name"`
	Fighters      []fighterDoc `yaml:"fighters"`
	CommonScripts []scriptDoc  `yaml:"common_scripts"`
}

type fighterDoc struct {
	Name       string             `yaml:"name"`
	Common     bool               `yaml:"common"`
	Attributes fighter.Attributes `yaml:"attributes"`
	Actions    []actionDoc        `yaml:"actions"`
	Subactions []subactionDoc     `yaml:"subactions"`
	Scripts    []scriptDoc        `yaml:"scripts"`
}

type actionDoc struct {
	Name   string `yaml:"name"`
	IASA   int    `yaml:"iasa"`
	Frames int    `yaml:"frames"`
}

type subactionDoc struct {
	Name       string     `yaml:"name"`
	IASA       int        `yaml:"iasa"`
	LandingLag *int       `yaml:"landing_lag"`
	Frames     []frameDoc `yaml:"frames"`
	Scripts    struct {
		Main  scriptDoc `yaml:"main"`
		GFX   scriptDoc `yaml:"gfx"`
		SFX   scriptDoc `yaml:"sfx"`
		Other scriptDoc `yaml:"other"`
	} `yaml:"scripts"`
}

// frameDoc is one frame, or Repeat identical frames.
type frameDoc struct {
	Repeat           int            `yaml:"repeat"`
	Hurtboxes        []hurtboxDoc   `yaml:"hurtboxes"`
	Hitboxes         []collisionDoc `yaml:"hitboxes"`
	LandingLag       bool           `yaml:"landing_lag"`
	ReverseDirection bool           `yaml:"reverse_direction"`
	RehitSets        []int          `yaml:"rehit_sets"`
}

type hurtboxDoc struct {
	Bone  int    `yaml:"bone"`
	State string `yaml:"state"`
}

type scriptDoc struct {
	Offset uint32     `yaml:"offset"`
	Events []eventDoc `yaml:"events"`
}

// Decode parses a YAML or JSON model document.
func Decode(data []byte) (*registry.Model, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	m := &registry.Model{
		Name:          doc.Name,
		CommonScripts: scripts(doc.CommonScripts),
	}

	for _, fd := range doc.Fighters {
		f, err := fd.fighter()
		if err != nil {
			return nil, err
		}
		m.Fighters = append(m.Fighters, f)
	}

	return m, nil
}

func (fd *fighterDoc) fighter() (*fighter.Fighter, error) {
	f := &fighter.Fighter{
		Name:       fd.Name,
		Common:     fd.Common,
		Attributes: fd.Attributes,
		Scripts:    scripts(fd.Scripts),
	}

	for _, a := range fd.Actions {
		f.Actions = append(f.Actions, fighter.Action{Name: a.Name, IASA: a.IASA, Frames: a.Frames})
	}

	for _, sd := range fd.Subactions {
		frames, err := sd.frames()
		if err != nil {
			return nil, fmt.Errorf("fighter %s subaction %s: %w", fd.Name, sd.Name, err)
		}
		f.Subactions = append(f.Subactions, fighter.Subaction{
			Name:       sd.Name,
			IASA:       sd.IASA,
			Frames:     frames,
			LandingLag: sd.LandingLag,
			Main:       sd.Scripts.Main.script(),
			GFX:        sd.Scripts.GFX.script(),
			SFX:        sd.Scripts.SFX.script(),
			Other:      sd.Scripts.Other.script(),
		})
	}

	return f, nil
}

func (sd *subactionDoc) frames() ([]fighter.Frame, error) {
	var out []fighter.Frame
	for i, fd := range sd.Frames {
		fr := fighter.Frame{
			LandingLag:       fd.LandingLag,
			ReverseDirection: fd.ReverseDirection,
		}

		for _, h := range fd.Hurtboxes {
			state, err := parseHurtboxState(h.State)
			if err != nil {
				return nil, fmt.Errorf("frame entry %d: %w", i, err)
			}
			fr.Hurtboxes = append(fr.Hurtboxes, fighter.Hurtbox{Bone: h.Bone, State: state})
		}

		for _, c := range fd.Hitboxes {
			fr.Hitboxes = append(fr.Hitboxes, c.entry)
		}

		for _, set := range fd.RehitSets {
			if set < 0 || set >= fighter.RehitSetCount {
				return nil, fmt.Errorf("frame entry %d: rehit set %d outside [0, %d)", i, set, fighter.RehitSetCount)
			}
			fr.RehitSets[set] = true
		}

		n := max(fd.Repeat, 1)
		for k := 0; k < n; k++ {
			// Each copy gets its own slices so frames never alias.
			c := fr
			c.Hurtboxes = append([]fighter.Hurtbox(nil), fr.Hurtboxes...)
			c.Hitboxes = append([]fighter.CollisionEntry(nil), fr.Hitboxes...)
			out = append(out, c)
		}
	}
	return out, nil
}

func parseHurtboxState(s string) (fighter.HurtboxState, error) {
	switch strings.ToLower(s) {
	case "", "vulnerable", "normal":
		return fighter.Vulnerable, nil
	case "invincible":
		return fighter.Invincible, nil
	case "intangible":
		return fighter.Intangible, nil
	default:
		return 0, fmt.Errorf("unknown hurtbox state %q", s)
	}
}

func scripts(docs []scriptDoc) []fighter.Script {
	var out []fighter.Script
	for i := range docs {
		out = append(out, docs[i].script())
	}
	return out
}

func (sd *scriptDoc) script() fighter.Script {
	return fighter.Script{Offset: sd.Offset, Events: events(sd.Events)}
}

func events(docs []eventDoc) []fighter.Event {
	if docs == nil {
		return nil
	}
	out := make([]fighter.Event, len(docs))
	for i, d := range docs {
		out[i] = d.ev
	}
	return out
}
