// Package world provides the room model, room graph and map loading.
package world

// Kind identifies what occupies a single grid cell.
type Kind int

const (
	// KindEmpty is open floor.
	KindEmpty Kind = iota
	// KindWall is impassable.
	KindWall
	// KindItem is a collectible item.
	KindItem
	// KindMonster is a hostile occupant.
	KindMonster
	// KindDoor marks a transition to a neighboring room.
	KindDoor
	// KindPlayer is the hero.
	KindPlayer
)

// Symbol returns the map glyph for the kind.
func (k Kind) Symbol() rune {
	switch k {
	case KindWall:
		return 'X'
	case KindItem:
		return 'I'
	case KindMonster:
		return 'M'
	case KindDoor:
		return '/'
	case KindPlayer:
		return 'O'
	default:
		return ' '
	}
}

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindItem:
		return "item"
	case KindMonster:
		return "monster"
	case KindDoor:
		return "door"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Point is a (row, col) position in a room grid.
type Point struct {
	Row, Col int
}

// Add returns p offset by the given row and column deltas.
func (p Point) Add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Item is a collectible that grants stat bonuses when picked up.
type Item struct {
	Name     string
	HP       int   // Hit point bonus
	Strength int   // Strength bonus
	Radius   int   // Vision radius bonus
	Origin   Point // Cell the item was placed on at load time
}

// Monster is a hostile room occupant.
type Monster struct {
	Name     string
	HP       int
	Strength int
	Origin   Point
}

// GetName returns the monster's name.
func (m *Monster) GetName() string { return m.Name }

// GetHP returns current hit points. May be negative after a fight.
func (m *Monster) GetHP() int { return m.HP }

// GetStrength returns the damage the monster deals per strike.
func (m *Monster) GetStrength() int { return m.Strength }

// TakeDamage subtracts amount from the monster's hit points.
func (m *Monster) TakeDamage(amount int) { m.HP -= amount }

// Tile is the occupant of one grid cell. Tiles are values: changing what
// occupies a cell replaces the whole tile.
type Tile struct {
	Kind    Kind
	Visible bool     // Set once the hero has uncovered the cell
	Item    *Item    // Non-nil only for KindItem
	Monster *Monster // Non-nil only for KindMonster
}

// EmptyTile returns open floor.
func EmptyTile(visible bool) Tile { return Tile{Kind: KindEmpty, Visible: visible} }

// WallTile returns an impassable wall.
func WallTile() Tile { return Tile{Kind: KindWall} }

// ItemTile returns a tile holding item.
func ItemTile(item *Item) Tile { return Tile{Kind: KindItem, Item: item} }

// MonsterTile returns a tile holding monster.
func MonsterTile(monster *Monster) Tile { return Tile{Kind: KindMonster, Monster: monster} }

// DoorTile returns a door.
func DoorTile() Tile { return Tile{Kind: KindDoor} }

// PlayerTile returns the hero tile. The hero always sees its own cell.
func PlayerTile() Tile { return Tile{Kind: KindPlayer, Visible: true} }

// Symbol returns the tile's map glyph.
func (t Tile) Symbol() rune {
	return t.Kind.Symbol()
}

// IsPassable returns true if the hero may attempt to enter the tile.
func (t Tile) IsPassable() bool {
	return t.Kind != KindWall && t.Kind != KindPlayer
}
