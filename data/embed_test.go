package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonfighters/internal/config"
	"github.com/samdwyer/dungeonfighters/internal/telemetry"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

func TestBundledMapsLoad(t *testing.T) {
	loader := world.NewLoader(Maps(), world.WithTracer(telemetry.NoopTracer()))
	w, err := loader.Load(context.Background(), config.DefaultMap)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Len())

	ids := map[string]world.RoomID{}
	for _, name := range []string{"entry", "hall", "vault", "cellar"} {
		id, ok := w.Lookup(name)
		require.True(t, ok, name)
		ids[name] = id
	}

	// The four rooms form a square.
	entry := w.Room(ids["entry"])
	assert.Equal(t, ids["hall"], entry.Neighbor(world.North))
	assert.Equal(t, ids["cellar"], entry.Neighbor(world.East))
	assert.Equal(t, ids["vault"], w.Room(ids["hall"]).Neighbor(world.East))
	assert.Equal(t, ids["cellar"], w.Room(ids["vault"]).Neighbor(world.South))
	assert.Equal(t, ids["entry"], w.Room(ids["cellar"]).Neighbor(world.West))

	assert.True(t, entry.HasDoor(world.North))
	assert.False(t, entry.HasDoor(world.South))
	assert.Len(t, entry.Items(), 2)
	assert.Len(t, entry.Monsters(), 1)
}

func TestEveryBundledMapLoadsAlone(t *testing.T) {
	for _, name := range []string{"entry", "hall", "vault", "cellar"} {
		t.Run(name, func(t *testing.T) {
			w, err := world.NewLoader(Maps(), world.WithTracer(telemetry.NoopTracer())).
				Load(context.Background(), name)
			require.NoError(t, err)
			assert.Equal(t, 4, w.Len())
			assert.Equal(t, name, w.Entry().ID())
		})
	}
}
