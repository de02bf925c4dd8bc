package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHero is a test implementation of Adventurer.
type fakeHero struct {
	hp, strength, radius int
	taken                []string
	fought               []string
	outcome              string
}

func newFakeHero(radius int) *fakeHero {
	return &fakeHero{hp: 10, strength: 3, radius: radius, outcome: "Defeated"}
}

func (h *fakeHero) Take(item *Item) {
	h.taken = append(h.taken, item.Name)
	h.hp += item.HP
	h.strength += item.Strength
	h.radius += item.Radius
}

func (h *fakeHero) Fight(m *Monster) string {
	h.fought = append(h.fought, m.Name)
	m.TakeDamage(h.strength)
	return h.outcome
}

func (h *fakeHero) VisionRadius() int { return h.radius }

// putHero places the hero directly on p, bypassing entry locations.
func putHero(r *Room, p Point, hero Adventurer) {
	if r.hasHero {
		r.vacate()
	}
	r.enter(p, hero)
}

func countKind(r *Room, kind Kind) int {
	n := 0
	grid := r.Snapshot()
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col].Kind == kind {
				n++
			}
		}
	}
	return n
}

func TestEntryPoints(t *testing.T) {
	tests := []struct {
		where Direction
		want  Point
	}{
		{North, Point{9, 10}},
		{South, Point{1, 10}},
		{East, Point{5, 1}},
		{West, Point{5, 19}},
		{Center, Point{5, 10}},
	}

	for _, tt := range tests {
		r := NewRoom("test")
		r.AddHero(newFakeHero(1), tt.where)

		got, ok := r.Hero()
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "AddHero(%s)", tt.where)
		assert.Equal(t, KindPlayer, r.At(tt.want).Kind)
		assert.Equal(t, 1, countKind(r, KindPlayer))
	}
}

func TestAddHeroReplacesOccupant(t *testing.T) {
	r := NewRoom("test")
	require.NoError(t, r.AddItem(&Item{Name: "Coin", Origin: EntryPoint(Center)}))

	r.AddHero(newFakeHero(1), Center)

	assert.Equal(t, KindPlayer, r.At(EntryPoint(Center)).Kind)
	assert.Empty(t, r.Items(), "overwritten item should leave the room's list")
}

func TestMoveIntoWallIsNoop(t *testing.T) {
	r := NewRoom("test")
	require.NoError(t, r.AddWall(Point{2, 2}))
	hero := newFakeHero(1)
	putHero(r, Point{2, 1}, hero)
	r.status = "previous"

	move := r.MoveBy(hero, 0, 1)

	assert.Equal(t, MoveBlocked, move.Outcome)
	got, _ := r.Hero()
	assert.Equal(t, Point{2, 1}, got)
	assert.Equal(t, "previous", r.Status())
	assert.Equal(t, KindWall, r.At(Point{2, 2}).Kind)
}

func TestMoveOffGridIsNoop(t *testing.T) {
	tests := []struct {
		name   string
		start  Point
		dx, dy int
	}{
		{"north edge", Point{0, 5}, -1, 0},
		{"south edge", Point{Rows - 1, 5}, 1, 0},
		{"west edge", Point{3, 0}, 0, -1},
		{"east edge", Point{3, Cols - 1}, 0, 1},
		{"far jump", Point{5, 10}, 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRoom("test")
			hero := newFakeHero(1)
			putHero(r, tt.start, hero)
			r.status = "unchanged"

			move := r.MoveBy(hero, tt.dx, tt.dy)

			assert.Equal(t, MoveBlocked, move.Outcome)
			got, _ := r.Hero()
			assert.Equal(t, tt.start, got)
			assert.Equal(t, "unchanged", r.Status())
		})
	}
}

func TestMoveOntoItem(t *testing.T) {
	r := NewRoom("test")
	potion := &Item{Name: "Potion", HP: 5, Origin: Point{3, 3}}
	require.NoError(t, r.AddItem(potion))
	hero := newFakeHero(1)
	putHero(r, Point{3, 2}, hero)

	move := r.MoveBy(hero, 0, 1)

	assert.Equal(t, MovePickedUp, move.Outcome)
	assert.Equal(t, 15, hero.hp)
	assert.Equal(t, "Picked up Potion", r.Status())
	assert.Empty(t, r.Items())
	assert.Equal(t, KindEmpty, r.At(Point{3, 2}).Kind, "vacated cell becomes empty")

	// Step off and back on: the cell now resolves as empty floor.
	r.MoveBy(hero, 0, 1)
	move = r.MoveBy(hero, 0, -1)

	assert.Equal(t, MoveStepped, move.Outcome)
	assert.Equal(t, []string{"Potion"}, hero.taken)
	assert.Equal(t, "", r.Status())
}

func TestMoveOntoMonsterMovesRegardless(t *testing.T) {
	r := NewRoom("test")
	goblin := &Monster{Name: "Goblin", HP: 4, Strength: 2, Origin: Point{6, 6}}
	require.NoError(t, r.AddMonster(goblin))
	hero := newFakeHero(1)
	hero.outcome = "Killed by Goblin"
	putHero(r, Point{5, 5}, hero)

	move := r.MoveBy(hero, 1, 1)

	assert.Equal(t, MoveFought, move.Outcome)
	assert.Equal(t, "Killed by Goblin", r.Status())
	got, _ := r.Hero()
	assert.Equal(t, Point{6, 6}, got)
	assert.Equal(t, []string{"Goblin"}, hero.fought)
	assert.Equal(t, 1, goblin.HP)
	assert.Equal(t, 1, countKind(r, KindPlayer))
}

func TestMoveOntoMonsterAfterStalemate(t *testing.T) {
	r := NewRoom("test")
	troll := &Monster{Name: "Troll", HP: 50, Strength: 0, Origin: Point{5, 6}}
	require.NoError(t, r.AddMonster(troll))
	hero := newFakeHero(1)
	hero.outcome = "Stalemate with Troll"
	putHero(r, Point{5, 5}, hero)

	move := r.MoveBy(hero, 0, 1)

	assert.Equal(t, MoveFought, move.Outcome)
	assert.Equal(t, "Stalemate with Troll", r.Status())
	got, _ := r.Hero()
	assert.Equal(t, Point{5, 6}, got)
	assert.Greater(t, troll.HP, 0)
	assert.Empty(t, r.Monsters(), "a monster whose cell the hero took leaves the room")
	assert.Equal(t, 0, countKind(r, KindMonster))
}

func TestMoveOntoEmptyClearsStatus(t *testing.T) {
	r := NewRoom("test")
	hero := newFakeHero(1)
	putHero(r, Point{5, 5}, hero)
	r.status = "Picked up Coin"

	move := r.MoveBy(hero, -1, 0)

	assert.Equal(t, MoveStepped, move.Outcome)
	assert.Equal(t, "", r.Status())
	assert.Equal(t, KindEmpty, r.At(Point{5, 5}).Kind)
	assert.True(t, r.At(Point{5, 5}).Visible)
}

func TestMoveThroughDoor(t *testing.T) {
	r := NewRoom("test")
	r.AddDoor(North)
	r.setNeighbor(North, RoomID(7))
	hero := newFakeHero(1)
	putHero(r, Point{1, 10}, hero)

	move := r.MoveBy(hero, -1, 0)

	assert.Equal(t, MoveExited, move.Outcome)
	assert.Equal(t, North, move.Exit)
	assert.Equal(t, RoomID(7), move.Next)
	_, inRoom := r.Hero()
	assert.False(t, inRoom)
	assert.Equal(t, 0, countKind(r, KindPlayer))
}

func TestMoveThroughUnlinkedDoorIsNoop(t *testing.T) {
	r := NewRoom("test")
	r.AddDoor(East)
	hero := newFakeHero(1)
	putHero(r, Point{5, 19}, hero)

	move := r.MoveBy(hero, 0, 1)

	assert.Equal(t, MoveBlocked, move.Outcome)
	got, _ := r.Hero()
	assert.Equal(t, Point{5, 19}, got)
}

func TestMoveWithoutHeroIsNoop(t *testing.T) {
	r := NewRoom("test")
	move := r.MoveBy(newFakeHero(1), 1, 0)
	assert.Equal(t, MoveBlocked, move.Outcome)
}

func TestMoveOutcomeString(t *testing.T) {
	assert.Equal(t, "blocked", MoveBlocked.String())
	assert.Equal(t, "exited", MoveExited.String())
	assert.Equal(t, "unknown", MoveOutcome(42).String())
}
