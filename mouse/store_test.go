package mouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/retain/geom"
)

func TestStoreAddOverwrites(t *testing.T) {
	store := NewStore()
	store.Add(Mouse(1), State{Position: geom.Pt(0.1, 0.2)})

	var buttons PressedButtons
	buttons.Press(Secondary)
	store.Add(Mouse(1), State{Position: geom.Pt(0.5, 0.6), Buttons: buttons})

	state, ok := store.Get(Mouse(1))
	require.True(t, ok)
	assert.Equal(t, geom.Pt(0.5, 0.6), state.Position)
	assert.True(t, state.Buttons.IsPressed(Secondary))
	assert.Equal(t, 1, store.Len())
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()
	store.Add(Mouse(3), State{})
	store.Remove(Mouse(3))
	_, ok := store.Get(Mouse(3))
	assert.False(t, ok)
	assert.Nil(t, store.GetMut(Mouse(3)))

	store.Remove(Mouse(4))
	assert.Equal(t, 0, store.Len())
}

func TestStoreGetMut(t *testing.T) {
	store := NewStore()
	store.Add(Mouse(0), State{})
	store.GetMut(Mouse(0)).Buttons.Press(Primary)
	store.GetMut(Mouse(0)).Position = geom.Pt(1, 1)

	state, _ := store.Get(Mouse(0))
	assert.True(t, state.Buttons.IsPressed(Primary))
	assert.Equal(t, geom.Pt(1, 1), state.Position)

	// Get returns a copy
	state.Buttons.Release(Primary)
	again, _ := store.Get(Mouse(0))
	assert.True(t, again.Buttons.IsPressed(Primary))
}

func TestStoreMiceAreSorted(t *testing.T) {
	store := NewStore()
	for _, m := range []Mouse{7, 2, 9, 0} {
		store.Add(m, State{})
	}
	assert.Equal(t, []Mouse{0, 2, 7, 9}, store.Mice())
}
