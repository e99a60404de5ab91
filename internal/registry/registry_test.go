package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	id   string
	exts []string
}

func (p stubParser) ID() string                   { return p.id }
func (p stubParser) Title() string                { return "Stub " + p.id }
func (p stubParser) Extensions() []string         { return p.exts }
func (p stubParser) Parse([]byte) (*Model, error) { return &Model{Name: p.id}, nil }

func TestRegisterAndLookup(t *testing.T) {
	Register("stub-a", func() Parser { return stubParser{"stub-a", []string{".stba"}} })
	Register("stub-b", func() Parser { return stubParser{"stub-b", []string{".stbb", ".STBC"}} })

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("stub-missing"))

	p, ok := ForExtension(".STBA")
	require.True(t, ok)
	assert.Equal(t, "stub-a", p.ID())

	p, ok = ForExtension(".stbc")
	require.True(t, ok)
	assert.Equal(t, "stub-b", p.ID())

	_, ok = ForExtension(".nope")
	assert.False(t, ok)

	created, err := Create("stub-b")
	require.NoError(t, err)
	m, err := created.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "stub-b", m.Name)

	_, err = Create("stub-missing")
	assert.Error(t, err)

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "stub-a")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Parser { return stubParser{"stub-dup", []string{".dup"}} })

	assert.Panics(t, func() {
		Register("stub-dup", func() Parser { return stubParser{"stub-dup", nil} })
	})
	assert.Panics(t, func() {
		Register("stub-dup2", func() Parser { return stubParser{"stub-dup2", []string{".dup"}} })
	})
}
