package world

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonfighters/internal/telemetry"
)

const (
	// MapExt is appended to a map identifier to find its layout file.
	MapExt = ".map"
	// LinksExt is appended to a map identifier to find its links file.
	LinksExt = ".links"

	// NoLink in a links file means no neighbor on that side.
	NoLink = "None"
	// ExistingLink in a links file means the neighbor on that side was
	// already built and linked from the other side; only a door is placed.
	ExistingLink = "Done"

	// WallGlyph marks a wall in a map layout.
	WallGlyph = 'X'

	markerMapStart  = "MAPSTART"
	markerMapFinish = "MAPFINISH"
	markerItems     = "ITEMS"
	markerMonsters  = "MONSTERS"
	markerEnd       = "ENDFILE"
)

var (
	// ErrMapNotFound means a map or links file could not be opened.
	ErrMapNotFound = errors.New("map not found")
	// ErrMalformedMap means a section marker was missing or out of place.
	ErrMalformedMap = errors.New("malformed map")
	// ErrBadRecord means an item or monster record could not be parsed.
	ErrBadRecord = errors.New("bad record")
	// ErrOutOfBounds means a coordinate lies outside the room grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrMalformedLinks means a links file did not hold four entries.
	ErrMalformedLinks = errors.New("malformed links")
	// ErrLinkConflict means two rooms disagree about how they are linked.
	ErrLinkConflict = errors.New("link conflict")
)

// LoadError reports where loading a map failed.
type LoadError struct {
	Map  string // Map identifier being loaded
	File string // File within the map filesystem
	Line int    // 1-based line number, 0 when not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: %s:%d: %v", e.Map, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Map, e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader builds a World from map and links files.
type Loader struct {
	fsys   fs.FS
	tracer trace.Tracer
	world  *World
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTracer sets the tracer used for load spans.
func WithTracer(tracer trace.Tracer) LoaderOption {
	return func(l *Loader) { l.tracer = tracer }
}

// NewLoader creates a loader reading map files from fsys.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:   fsys,
		tracer: telemetry.Tracer("world"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds the room named name and, recursively, every room linked
// from it. The returned World's entry room is name.
func (l *Loader) Load(ctx context.Context, name string) (*World, error) {
	ctx, span := l.tracer.Start(ctx, "world.load")
	defer span.End()

	l.world = NewWorld()
	defer func() { l.world = nil }()

	id, err := l.load(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}
	if id == NoRoom {
		err := &LoadError{Map: name, File: name + MapExt, Err: ErrMapNotFound}
		span.RecordError(err)
		return nil, err
	}
	w := l.world
	if err := w.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return nil, &LoadError{Map: name, File: name + LinksExt, Err: err}
	}

	span.SetAttributes(
		attribute.String("world.entry", name),
		attribute.Int("world.room_count", w.Len()),
	)
	return w, nil
}

// load returns the id of the room for name, building it if needed.
func (l *Loader) load(ctx context.Context, name string) (RoomID, error) {
	if name == NoLink {
		return NoRoom, nil
	}
	if id, ok := l.world.Lookup(name); ok {
		return id, nil
	}

	ctx, span := l.tracer.Start(ctx, "world.load_map")
	defer span.End()
	span.SetAttributes(attribute.String("map.name", name))

	room, err := l.parseMap(name)
	if err != nil {
		span.RecordError(err)
		return NoRoom, err
	}
	// Register before following links so a cycle finds this room.
	id := l.world.Add(room)

	links, err := l.readLinks(name)
	if err != nil {
		span.RecordError(err)
		return NoRoom, err
	}

	for i, d := range Cardinals() {
		target := links[i]
		switch target {
		case NoLink:
			continue
		case ExistingLink:
			room.AddDoor(d)
			continue
		}

		next, err := l.load(ctx, target)
		if err != nil {
			return NoRoom, err
		}
		if next == NoRoom {
			continue
		}
		if err := l.world.Link(id, d, next); err != nil {
			return NoRoom, &LoadError{Map: name, File: name + LinksExt, Line: i + 1, Err: err}
		}
		// The neighbor's back door comes from its own links file.
		room.AddDoor(d)
	}

	span.SetAttributes(
		attribute.Int("map.items", len(room.items)),
		attribute.Int("map.monsters", len(room.monsters)),
	)
	return id, nil
}

// lineReader yields lines with their 1-based numbers.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *lineReader) next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimRight(r.scanner.Text(), "\r"), true
}

// parseMap reads the layout and population sections of name.map.
func (l *Loader) parseMap(name string) (*Room, error) {
	file := name + MapExt
	fail := func(line int, err error) error {
		return &LoadError{Map: name, File: file, Line: line, Err: err}
	}

	f, err := l.fsys.Open(file)
	if err != nil {
		return nil, &LoadError{Map: name, File: file, Err: fmt.Errorf("%w: %v", ErrMapNotFound, err)}
	}
	defer f.Close()

	lr := &lineReader{scanner: bufio.NewScanner(f)}
	room := NewRoom(name)

	// Layout
	if line, ok := lr.next(); !ok || line != markerMapStart {
		return nil, fail(lr.line, fmt.Errorf("%w: expected %s", ErrMalformedMap, markerMapStart))
	}
	row := 0
	for {
		line, ok := lr.next()
		if !ok {
			return nil, fail(lr.line, fmt.Errorf("%w: missing %s", ErrMalformedMap, markerMapFinish))
		}
		if line == markerMapFinish {
			break
		}
		for col, ch := range []rune(line) {
			if ch != WallGlyph {
				continue
			}
			if err := room.AddWall(Point{Row: row, Col: col}); err != nil {
				return nil, fail(lr.line, fmt.Errorf("wall at (%d,%d): %w", row, col, err))
			}
		}
		row++
	}

	// Items
	if line, ok := lr.next(); !ok || line != markerItems {
		return nil, fail(lr.line, fmt.Errorf("%w: expected %s", ErrMalformedMap, markerItems))
	}
	for {
		line, ok := lr.next()
		if !ok {
			return nil, fail(lr.line, fmt.Errorf("%w: missing %s", ErrMalformedMap, markerMonsters))
		}
		if line == markerMonsters {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parseItem(line)
		if err != nil {
			return nil, fail(lr.line, err)
		}
		if err := room.AddItem(item); err != nil {
			return nil, fail(lr.line, fmt.Errorf("item %s at (%d,%d): %w",
				item.Name, item.Origin.Row, item.Origin.Col, err))
		}
	}

	// Monsters
	for {
		line, ok := lr.next()
		if !ok {
			return nil, fail(lr.line, fmt.Errorf("%w: missing %s", ErrMalformedMap, markerEnd))
		}
		if line == markerEnd {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		monster, err := parseMonster(line)
		if err != nil {
			return nil, fail(lr.line, err)
		}
		if err := room.AddMonster(monster); err != nil {
			return nil, fail(lr.line, fmt.Errorf("monster %s at (%d,%d): %w",
				monster.Name, monster.Origin.Row, monster.Origin.Col, err))
		}
	}

	if err := lr.scanner.Err(); err != nil {
		return nil, fail(lr.line, err)
	}
	return room, nil
}

// readLinks reads the four north/south/east/west entries of name.links.
func (l *Loader) readLinks(name string) ([]string, error) {
	file := name + LinksExt
	f, err := l.fsys.Open(file)
	if err != nil {
		return nil, &LoadError{Map: name, File: file, Err: fmt.Errorf("%w: %v", ErrMapNotFound, err)}
	}
	defer f.Close()

	lr := &lineReader{scanner: bufio.NewScanner(f)}
	links := make([]string, 0, len(Cardinals()))
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		if len(links) == len(Cardinals()) {
			return nil, &LoadError{Map: name, File: file, Line: lr.line,
				Err: fmt.Errorf("%w: more than %d entries", ErrMalformedLinks, len(Cardinals()))}
		}
		links = append(links, entry)
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, &LoadError{Map: name, File: file, Line: lr.line, Err: err}
	}
	if len(links) != len(Cardinals()) {
		return nil, &LoadError{Map: name, File: file,
			Err: fmt.Errorf("%w: got %d entries, want %d", ErrMalformedLinks, len(links), len(Cardinals()))}
	}
	return links, nil
}

// parseItem parses "name,hp,strength,radius,row,col".
func parseItem(line string) (*Item, error) {
	fields, err := splitRecord(line, 6)
	if err != nil {
		return nil, err
	}
	nums, err := parseInts(fields[1:])
	if err != nil {
		return nil, err
	}
	return &Item{
		Name:     fields[0],
		HP:       nums[0],
		Strength: nums[1],
		Radius:   nums[2],
		Origin:   Point{Row: nums[3], Col: nums[4]},
	}, nil
}

// parseMonster parses "name,hp,strength,row,col".
func parseMonster(line string) (*Monster, error) {
	fields, err := splitRecord(line, 5)
	if err != nil {
		return nil, err
	}
	nums, err := parseInts(fields[1:])
	if err != nil {
		return nil, err
	}
	return &Monster{
		Name:     fields[0],
		HP:       nums[0],
		Strength: nums[1],
		Origin:   Point{Row: nums[2], Col: nums[3]},
	}, nil
}

func splitRecord(line string, want int) ([]string, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != want {
		return nil, fmt.Errorf("%w: %q has %d fields, want %d", ErrBadRecord, line, len(fields), want)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] == "" {
		return nil, fmt.Errorf("%w: %q has an empty name", ErrBadRecord, line)
	}
	return fields, nil
}

func parseInts(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q is not a number", ErrBadRecord, f)
		}
		nums[i] = n
	}
	return nums, nil
}
