package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonfighters/internal/entity"
	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/telemetry"
	"github.com/samdwyer/dungeonfighters/internal/ui"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

func mapData(items, monsters []string) []byte {
	var b strings.Builder
	b.WriteString("MAPSTART\nMAPFINISH\nITEMS\n")
	for _, rec := range items {
		b.WriteString(rec + "\n")
	}
	b.WriteString("MONSTERS\n")
	for _, rec := range monsters {
		b.WriteString(rec + "\n")
	}
	b.WriteString("ENDFILE\n")
	return []byte(b.String())
}

// twoRooms is "start" with "east" behind its east door.
func twoRooms(items, monsters []string) fstest.MapFS {
	return fstest.MapFS{
		"start.map":   {Data: mapData(items, monsters)},
		"start.links": {Data: []byte("None\nNone\neast\nNone\n")},
		"east.map":    {Data: mapData(nil, nil)},
		"east.links":  {Data: []byte("None\nNone\nNone\nstart\n")},
	}
}

func newHero(t *testing.T) *entity.Hero {
	t.Helper()
	def, err := gamedata.MustLoadClassRegistry().Get("hero")
	require.NoError(t, err)
	return entity.NewHero(def)
}

func newGame(t *testing.T, fsys fstest.MapFS) (*Game, *entity.Hero) {
	t.Helper()
	w, err := world.NewLoader(fsys, world.WithTracer(telemetry.NoopTracer())).
		Load(context.Background(), "start")
	require.NoError(t, err)
	hero := newHero(t)
	return New(w, hero, WithTracer(telemetry.NoopTracer()), WithSessionID("test")), hero
}

func heroAt(t *testing.T, g *Game) world.Point {
	t.Helper()
	p, ok := g.CurrentRoom().Hero()
	require.True(t, ok, "hero missing from %q", g.CurrentRoom().ID())
	return p
}

func TestNewPlacesHeroAtCenter(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))

	assert.Equal(t, "start", g.CurrentRoom().ID())
	assert.Equal(t, world.EntryPoint(world.Center), heroAt(t, g))
	assert.Equal(t, world.KindPlayer, g.Snapshot()[5][10].Kind)
	assert.Equal(t, StateExplore, g.State())
	assert.False(t, g.GameOver())
	assert.Equal(t, 0, g.Turns())
	assert.Equal(t, "test", g.SessionID())
}

func TestMoveHeroStep(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))

	move := g.MoveHero(context.Background(), 0, 1)
	assert.Equal(t, world.MoveStepped, move.Outcome)
	assert.Equal(t, world.Point{Row: 5, Col: 11}, heroAt(t, g))
	assert.Equal(t, 1, g.Turns())
}

func TestMoveHeroBlockedDoesNotCountTurn(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))
	ctx := context.Background()

	// No north link, so the top row has no door.
	for i := 0; i < 5; i++ {
		g.MoveHero(ctx, -1, 0)
	}
	require.Equal(t, world.Point{Row: 0, Col: 10}, heroAt(t, g))

	move := g.MoveHero(ctx, -1, 0)
	assert.Equal(t, world.MoveBlocked, move.Outcome)
	assert.Equal(t, world.Point{Row: 0, Col: 10}, heroAt(t, g))
	assert.Equal(t, 5, g.Turns())
}

func TestMoveHeroThroughDoorAndBack(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))
	ctx := context.Background()
	start := g.CurrentRoom()

	for i := 0; i < 9; i++ {
		g.MoveHero(ctx, 0, 1)
	}
	require.Equal(t, world.Point{Row: 5, Col: 19}, heroAt(t, g))

	move := g.MoveHero(ctx, 0, 1)
	assert.Equal(t, world.MoveExited, move.Outcome)
	assert.Equal(t, world.East, move.Exit)
	assert.Equal(t, "east", g.CurrentRoom().ID())
	assert.Equal(t, world.EntryPoint(world.East), heroAt(t, g))

	_, inStart := start.Hero()
	assert.False(t, inStart)
	assert.Equal(t, world.EmptyTile(true), start.At(world.Point{Row: 5, Col: 19}))

	move = g.MoveHero(ctx, 0, -1)
	require.Equal(t, world.MoveExited, move.Outcome)
	assert.Same(t, start, g.CurrentRoom())
	assert.Equal(t, world.EntryPoint(world.West), heroAt(t, g))
}

func TestMoveHeroPickup(t *testing.T) {
	g, hero := newGame(t, twoRooms([]string{"Potion,5,0,0,5,11"}, nil))

	move := g.MoveHero(context.Background(), 0, 1)
	assert.Equal(t, world.MovePickedUp, move.Outcome)
	assert.Equal(t, "Picked up Potion", g.Status())
	assert.Equal(t, 15, hero.HP)
	assert.Empty(t, g.CurrentRoom().Items())
}

func TestMoveHeroFight(t *testing.T) {
	g, hero := newGame(t, twoRooms(nil, []string{"Goblin,4,1,5,11"}))

	move := g.MoveHero(context.Background(), 0, 1)
	assert.Equal(t, world.MoveFought, move.Outcome)
	assert.Equal(t, "Defeated Goblin", g.Status())
	assert.Equal(t, 8, hero.HP)
	assert.False(t, g.GameOver())
	assert.Equal(t, world.Point{Row: 5, Col: 11}, heroAt(t, g))
}

func TestGameOver(t *testing.T) {
	g, hero := newGame(t, twoRooms(nil, []string{"Troll,30,6,5,11"}))
	ctx := context.Background()

	g.MoveHero(ctx, 0, 1)
	assert.Equal(t, "Killed by Troll", g.Status())
	assert.LessOrEqual(t, hero.HP, 0)
	assert.True(t, g.GameOver())
	assert.Equal(t, StateOver, g.State())
	assert.Equal(t, "Killed by Troll. Game over", g.View().Status)

	turns := g.Turns()
	move := g.MoveHero(ctx, 0, 1)
	assert.Equal(t, world.MoveBlocked, move.Outcome)
	assert.Equal(t, turns, g.Turns())
}

func TestView(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))

	v := g.View()
	assert.Equal(t, "start", v.Room)
	assert.Equal(t, "Hero\nHP:10 STR: 3 RAD: 1", v.HUD)
	assert.Empty(t, v.Status)
	assert.Equal(t, g.Snapshot(), v.Grid)
}

func TestRunScript(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))
	var out bytes.Buffer

	err := g.RunScript(context.Background(), strings.NewReader("d\n\nbogus\nq\nd\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), "[start]"))
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.Equal(t, 1, g.Turns())
}

func TestRunScriptStopsOnGameOver(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, []string{"Troll,30,6,5,11"}))
	var out bytes.Buffer

	err := g.RunScript(context.Background(), strings.NewReader("d\nd\nd\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Turns())
	assert.True(t, strings.HasSuffix(out.String(), "Game over\n"))
}

func TestRun(t *testing.T) {
	g, _ := newGame(t, twoRooms(nil, nil))
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.Wrap(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(40, 20)

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run(context.Background(), screen))
	assert.Equal(t, world.Point{Row: 5, Col: 12}, heroAt(t, g))
	assert.Equal(t, 2, g.Turns())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "explore", StateExplore.String())
	assert.Equal(t, "over", StateOver.String())
	assert.Equal(t, "unknown", State(9).String())
}
