package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/framedata/internal/fighter"
	"github.com/vovakirdan/framedata/internal/registry"
)

func TestParsersRegistered(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".json", ".YAML"} {
		_, ok := registry.ForExtension(ext)
		assert.True(t, ok, ext)
	}
}

func TestLoadYAML(t *testing.T) {
	mod, err := Load(filepath.Join("testdata", "brawl.yaml"), "/fd")
	require.NoError(t, err)

	assert.Equal(t, "Brawl", mod.Name)
	require.Len(t, mod.Fighters, 1)

	mario, ok := mod.Fighter("Mario")
	require.True(t, ok)
	assert.Equal(t, 4, mario.Attributes.NormalLandingLag)
	assert.Equal(t, float32(100), mario.Attributes.Weight)
	require.Len(t, mario.Actions, 3)
	assert.Equal(t, "CatchWait", mario.Actions[2].Name)

	air := mario.Subactions[0]
	assert.Equal(t, "AttackAirN", air.Name)
	assert.Len(t, air.Frames, 30)
	require.NotNil(t, air.LandingLag)
	assert.Equal(t, 16, *air.LandingLag)

	assert.True(t, air.Frames[0].LandingLag)
	assert.True(t, air.Frames[1].LandingLag)
	assert.False(t, air.Frames[2].LandingLag)
	assert.True(t, air.Frames[29].ReverseDirection)
	assert.True(t, air.Frames[3].RehitSets[0])

	require.Len(t, air.Frames[2].Hurtboxes, 2)
	assert.Equal(t, fighter.Invincible, air.Frames[2].Hurtboxes[0].State)
	assert.Equal(t, fighter.Vulnerable, air.Frames[2].Hurtboxes[1].State)

	// Omitted hit fields keep their defaults
	require.Len(t, air.Frames[4].Hitboxes, 1)
	hit, ok := air.Frames[4].Hitboxes[0].(fighter.HitEntry)
	require.True(t, ok)
	assert.Equal(t, float32(12), hit.Values.Damage)
	assert.Equal(t, 361, hit.Values.Angle)
	assert.Equal(t, 2, hit.Values.SoundLevel)
	assert.True(t, hit.Values.Enabled)
	assert.Equal(t, float32(1), hit.Values.HitlagMult)
	assert.True(t, hit.Values.Targets.FightersAerial)

	// Repeated frames do not share slices
	air.Frames[2].Hitboxes[0] = fighter.GrabEntry{}
	_, still := air.Frames[3].Hitboxes[0].(fighter.HitEntry)
	assert.True(t, still)

	grab, ok := mario.Subactions[1].Frames[0].Hitboxes[0].(fighter.GrabEntry)
	require.True(t, ok)
	assert.Equal(t, 2, grab.Values.TargetAction)
	assert.Equal(t, fighter.GrabTargetGrounded, grab.Values.Target)
	assert.True(t, grab.Values.Enabled)

	sym, ok := mario.Symbols.Lookup(0x1000)
	require.True(t, ok)
	assert.Equal(t, "/fd/Brawl/Mario/subactions/AttackAirN.html", sym.Link)

	require.Len(t, mod.CommonScripts, 1)
	assert.Equal(t, []fighter.Event{fighter.SoundEffect{ID: 7}}, mod.CommonScripts[0].Events)
}

func TestLoadYAMLEvents(t *testing.T) {
	mod, err := Load(filepath.Join("testdata", "brawl.yaml"), "")
	require.NoError(t, err)

	main := mod.Fighters[0].Subactions[0].Main
	assert.Equal(t, uint32(0x1000), main.Offset)

	want := []fighter.Event{
		fighter.SyncWait{Frames: 2},
		fighter.Subroutine{Offset: 0x2000},
		fighter.IfStatement{
			Test: fighter.Binary{
				Left:     fighter.Variable{ID: 0x12},
				Operator: fighter.OpLess,
				Right:    fighter.Value{V: 3},
			},
			Then: []fighter.Event{
				fighter.ChangeAction{ActionIndex: 1, Test: fighter.Nullary{Requirement: "OnGround"}},
			},
			Else: []fighter.Event{},
		},
		fighter.Goto{Offset: 0x9999},
		fighter.Nop{},
	}
	assert.Equal(t, want, main.Events)

	fragment := mod.Fighters[0].Scripts[0]
	assert.Equal(t, []fighter.Event{
		fighter.ChangeActionStatus{
			StatusID:    0x2710,
			ActionIndex: 0,
			Requirement: fighter.Nullary{Requirement: "AnimationEnd"},
			Flip:        true,
		},
		fighter.Unknown{Raw: "mystery_event"},
	}, fragment.Events)
}

func TestLoadJSON(t *testing.T) {
	mod, err := Load(filepath.Join("testdata", "brawl.json"), "")
	require.NoError(t, err)

	// No name field: the file name is used
	assert.Equal(t, "brawl", mod.Name)

	luigi := mod.Fighters[0]
	assert.Equal(t, "Luigi", luigi.Name)
	assert.Equal(t, []fighter.Event{fighter.Goto{Offset: 8192}}, luigi.Subactions[0].Main.Events)
	assert.Equal(t, []fighter.Event{fighter.DeleteAllHitBoxes{}}, luigi.Scripts[0].Events)
}

func TestLoadIntegrityError(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate.yaml"), "")

	var integrity *fighter.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, uint32(0x10), integrity.Offset)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "model.txt"), "")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))

	tests := []struct {
		name string
		body string
	}{
		{"event without type", "fighters:\n  - name: A\n    scripts:\n      - offset: 1\n        events:\n          - {offset: 2}\n"},
		{"unknown hitbox kind", "fighters:\n  - name: A\n    subactions:\n      - name: S\n        frames:\n          - hitboxes: [{kind: laser}]\n"},
		{"bad hurtbox state", "fighters:\n  - name: A\n    subactions:\n      - name: S\n        frames:\n          - hurtboxes: [{bone: 1, state: sleepy}]\n"},
		{"rehit set out of range", "fighters:\n  - name: A\n    subactions:\n      - name: S\n        frames:\n          - rehit_sets: [10]\n"},
		{"empty expression", "fighters:\n  - name: A\n    scripts:\n      - offset: 1\n        events:\n          - {type: change_action, action: 0, test: {}}\n"},
		{"malformed", "fighters: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "model.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path, "")
			assert.Error(t, err)
		})
	}
}

func TestExpressionForms(t *testing.T) {
	body := `
fighters:
  - name: A
    scripts:
      - offset: 1
        events:
          - {type: change_action, action: 0, test: {not: {requirement: InAir}}}
          - {type: change_action, action: 0, test: {requirement: ButtonPress, arg: {value: 1}}}
          - {type: change_action, action: 0, test: {scalar: 1.5}}
          - {type: change_action, action: 0}
`
	m, err := Decode([]byte(body))
	require.NoError(t, err)

	events := m.Fighters[0].Scripts[0].Events
	require.Len(t, events, 4)
	assert.Equal(t, fighter.Not{Expr: fighter.Nullary{Requirement: "InAir"}}, events[0].(fighter.ChangeAction).Test)
	assert.Equal(t, fighter.Unary{Requirement: "ButtonPress", Operand: fighter.Value{V: 1}}, events[1].(fighter.ChangeAction).Test)
	assert.Equal(t, fighter.Scalar{V: 1.5}, events[2].(fighter.ChangeAction).Test)
	assert.Nil(t, events[3].(fighter.ChangeAction).Test)
}
