package world

import "slices"

const (
	// Rows is the fixed height of every room grid.
	Rows = 11
	// Cols is the fixed width of every room grid.
	Cols = 21
)

// RoomID indexes a room in its World.
type RoomID int

// NoRoom marks an unset neighbor reference.
const NoRoom RoomID = -1

// Grid is a snapshot of a room's cells, indexed [row][col].
type Grid [Rows][Cols]Tile

// Adventurer is what a room needs from the hero to resolve a move.
type Adventurer interface {
	// Take applies an item's bonuses.
	Take(item *Item)
	// Fight resolves combat against monster and returns the outcome text.
	Fight(monster *Monster) string
	// VisionRadius is the current reveal radius.
	VisionRadius() int
}

// MoveOutcome describes how a movement attempt was resolved.
type MoveOutcome int

const (
	// MoveBlocked means nothing changed: off-grid, wall, or unusable door.
	MoveBlocked MoveOutcome = iota
	// MoveStepped means the hero walked onto empty floor.
	MoveStepped
	// MovePickedUp means the hero took an item.
	MovePickedUp
	// MoveFought means the hero fought a monster and moved onto its cell.
	MoveFought
	// MoveExited means the hero left through a door.
	MoveExited
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case MoveBlocked:
		return "blocked"
	case MoveStepped:
		return "stepped"
	case MovePickedUp:
		return "picked_up"
	case MoveFought:
		return "fought"
	case MoveExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Move is the result of Room.MoveBy.
type Move struct {
	Outcome MoveOutcome
	Target  Point
	Exit    Direction // Door side, only for MoveExited
	Next    RoomID    // Neighbor behind the door, only for MoveExited
}

var doorCells = [...]Point{
	North: {Row: 0, Col: Cols / 2},
	South: {Row: Rows - 1, Col: Cols / 2},
	East:  {Row: Rows / 2, Col: Cols - 1},
	West:  {Row: Rows / 2, Col: 0},
}

// Entry locations keyed by the direction the hero was travelling.
// Going north puts the hero just inside the new room's south door.
var entryPoints = [...]Point{
	North:  {Row: Rows - 2, Col: Cols / 2},
	South:  {Row: 1, Col: Cols / 2},
	East:   {Row: Rows / 2, Col: 1},
	West:   {Row: Rows / 2, Col: Cols - 2},
	Center: {Row: Rows / 2, Col: Cols / 2},
}

// DoorCell returns the fixed door position for a cardinal direction.
func DoorCell(d Direction) Point {
	return doorCells[d]
}

// EntryPoint returns where the hero is placed when arriving by travelling d.
func EntryPoint(d Direction) Point {
	return entryPoints[d]
}

// doorDirection returns the side whose door sits at p.
func doorDirection(p Point) (Direction, bool) {
	for _, d := range Cardinals() {
		if doorCells[d] == p {
			return d, true
		}
	}
	return Center, false
}

// InBounds returns true if p lies within the room grid.
func InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Room is one rectangular area of the dungeon.
type Room struct {
	id        string
	grid      Grid
	items     []*Item
	monsters  []*Monster
	hero      Point
	hasHero   bool
	neighbors [4]RoomID
	status    string
}

// NewRoom creates an empty room with no neighbors.
func NewRoom(id string) *Room {
	r := &Room{id: id}
	for i := range r.neighbors {
		r.neighbors[i] = NoRoom
	}
	return r
}

// ID returns the map identifier the room was loaded from.
func (r *Room) ID() string { return r.id }

// Status returns the text describing the last action in this room.
func (r *Room) Status() string { return r.status }

// Hero returns the hero's cell and whether the hero is in this room.
func (r *Room) Hero() (Point, bool) { return r.hero, r.hasHero }

// At returns the tile at p. Cells outside the grid read as walls.
func (r *Room) At(p Point) Tile {
	if !InBounds(p) {
		return WallTile()
	}
	return r.grid[p.Row][p.Col]
}

// Items returns the items still lying in the room, in placement order.
func (r *Room) Items() []*Item { return slices.Clone(r.items) }

// Monsters returns the monsters placed in the room, in placement order.
func (r *Room) Monsters() []*Monster { return slices.Clone(r.monsters) }

// Neighbor returns the room linked on side d, or NoRoom.
func (r *Room) Neighbor(d Direction) RoomID {
	if !d.IsCardinal() {
		return NoRoom
	}
	return r.neighbors[d]
}

// HasDoor reports whether the door cell for d holds a door tile.
func (r *Room) HasDoor(d Direction) bool {
	return d.IsCardinal() && r.At(doorCells[d]).Kind == KindDoor
}

// Snapshot returns a copy of the grid for rendering.
func (r *Room) Snapshot() Grid { return r.grid }

// VisibleCount returns how many cells have been uncovered.
func (r *Room) VisibleCount() int {
	n := 0
	for row := range r.grid {
		for col := range r.grid[row] {
			if r.grid[row][col].Visible {
				n++
			}
		}
	}
	return n
}

// AddWall places a wall at p.
func (r *Room) AddWall(p Point) error {
	if !InBounds(p) {
		return ErrOutOfBounds
	}
	r.place(p, WallTile())
	return nil
}

// AddItem places item at its origin and records it in the item list.
func (r *Room) AddItem(item *Item) error {
	if !InBounds(item.Origin) {
		return ErrOutOfBounds
	}
	r.place(item.Origin, ItemTile(item))
	r.items = append(r.items, item)
	return nil
}

// AddMonster places monster at its origin and records it in the monster list.
func (r *Room) AddMonster(monster *Monster) error {
	if !InBounds(monster.Origin) {
		return ErrOutOfBounds
	}
	r.place(monster.Origin, MonsterTile(monster))
	r.monsters = append(r.monsters, monster)
	return nil
}

// AddDoor places a door at the fixed door cell for d.
func (r *Room) AddDoor(d Direction) {
	r.place(doorCells[d], DoorTile())
}

// AddHero places the hero at the entry location for where and reveals
// around it.
func (r *Room) AddHero(hero Adventurer, where Direction) {
	if r.hasHero {
		r.vacate()
	}
	r.enter(entryPoints[where], hero)
}

// MoveBy attempts to move the hero dx rows and dy columns.
func (r *Room) MoveBy(hero Adventurer, dx, dy int) Move {
	target := r.hero.Add(dx, dy)
	blocked := Move{Outcome: MoveBlocked, Target: target}
	if !r.hasHero || !InBounds(target) {
		return blocked
	}

	tile := r.grid[target.Row][target.Col]
	if !tile.IsPassable() {
		return blocked
	}

	switch tile.Kind {
	case KindDoor:
		d, ok := doorDirection(target)
		if !ok || r.neighbors[d] == NoRoom {
			return blocked
		}
		r.vacate()
		return Move{Outcome: MoveExited, Target: target, Exit: d, Next: r.neighbors[d]}

	case KindItem:
		r.vacate()
		hero.Take(tile.Item)
		r.status = "Picked up " + tile.Item.Name
		r.enter(target, hero)
		return Move{Outcome: MovePickedUp, Target: target}

	case KindMonster:
		// The hero takes the cell whatever the outcome, so a monster
		// left standing after a stalemate is gone from the room.
		r.vacate()
		r.status = hero.Fight(tile.Monster)
		r.enter(target, hero)
		return Move{Outcome: MoveFought, Target: target}

	default:
		r.vacate()
		r.status = ""
		r.enter(target, hero)
		return Move{Outcome: MoveStepped, Target: target}
	}
}

// vacate leaves uncovered floor where the hero stood.
func (r *Room) vacate() {
	r.grid[r.hero.Row][r.hero.Col] = EmptyTile(true)
	r.hasHero = false
}

// enter puts the hero on p and reveals around it.
func (r *Room) enter(p Point, hero Adventurer) {
	r.place(p, PlayerTile())
	r.hero = p
	r.hasHero = true
	r.Reveal(p, hero.VisionRadius())
}

// place overwrites the tile at p. An item or monster it held is dropped
// from the room's lists.
func (r *Room) place(p Point, t Tile) {
	old := r.grid[p.Row][p.Col]
	switch old.Kind {
	case KindItem:
		r.items = slices.DeleteFunc(r.items, func(i *Item) bool { return i == old.Item })
	case KindMonster:
		r.monsters = slices.DeleteFunc(r.monsters, func(m *Monster) bool { return m == old.Monster })
	}
	r.grid[p.Row][p.Col] = t
}

func (r *Room) setNeighbor(d Direction, id RoomID) {
	r.neighbors[d] = id
}
