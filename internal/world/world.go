package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// World owns every loaded room. Rooms refer to each other by RoomID so
// the graph may contain cycles.
type World struct {
	rooms  []*Room
	byName map[string]RoomID
	entry  RoomID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		byName: make(map[string]RoomID),
		entry:  NoRoom,
	}
}

// Add registers a room and returns its id. The first room added becomes
// the entry room.
func (w *World) Add(room *Room) RoomID {
	id := RoomID(len(w.rooms))
	w.rooms = append(w.rooms, room)
	w.byName[room.ID()] = id
	if w.entry == NoRoom {
		w.entry = id
	}
	return id
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id RoomID) *Room {
	if id < 0 || int(id) >= len(w.rooms) {
		return nil
	}
	return w.rooms[id]
}

// Lookup returns the id of the room loaded from name.
func (w *World) Lookup(name string) (RoomID, bool) {
	id, ok := w.byName[name]
	return id, ok
}

// EntryID returns the id of the starting room.
func (w *World) EntryID() RoomID { return w.entry }

// Entry returns the starting room.
func (w *World) Entry() *Room { return w.Room(w.entry) }

// Len returns the number of rooms.
func (w *World) Len() int { return len(w.rooms) }

// Link sets from's neighbor on side d to to, and to's reciprocal
// neighbor back to from. Relinking an identical pair is a no-op.
func (w *World) Link(from RoomID, d Direction, to RoomID) error {
	a, b := w.Room(from), w.Room(to)
	if a == nil || b == nil {
		return fmt.Errorf("link %s: unknown room id: %w", d, ErrLinkConflict)
	}
	if !d.IsCardinal() {
		return fmt.Errorf("link %s from %q: %w", d, a.ID(), ErrLinkConflict)
	}
	back := d.Opposite()
	if cur := a.neighbors[d]; cur != NoRoom && cur != to {
		return fmt.Errorf("%q already links %s to %q, not %q: %w",
			a.ID(), d, w.rooms[cur].ID(), b.ID(), ErrLinkConflict)
	}
	if cur := b.neighbors[back]; cur != NoRoom && cur != from {
		return fmt.Errorf("%q already links %s to %q, not %q: %w",
			b.ID(), back, w.rooms[cur].ID(), a.ID(), ErrLinkConflict)
	}
	a.setNeighbor(d, to)
	b.setNeighbor(back, from)
	return nil
}

// Validate checks that every link between rooms reachable from the entry
// is reciprocal. A linked side without a door is a dead end: the link
// exists but MoveBy cannot use it.
func (w *World) Validate() error {
	if w.entry == NoRoom {
		return fmt.Errorf("world has no rooms: %w", ErrMalformedMap)
	}
	visited := mapset.New[RoomID]()
	queue := []RoomID{w.entry}
	visited.Put(w.entry)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		room := w.rooms[id]

		for _, d := range Cardinals() {
			next := room.neighbors[d]
			if next == NoRoom {
				continue
			}
			other := w.Room(next)
			if other == nil || other.neighbors[d.Opposite()] != id {
				return fmt.Errorf("%q links %s but the neighbor does not link back: %w",
					room.ID(), d, ErrLinkConflict)
			}
			if !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return nil
}
