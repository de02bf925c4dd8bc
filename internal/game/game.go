package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/telemetry"
	"github.com/samdwyer/dungeonfighters/internal/ui"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

// Player is the hero as seen by the game.
type Player interface {
	world.Adventurer
	fmt.Stringer
	HitPoints() int
}

// Game holds the entire game state.
type Game struct {
	world   *world.World
	hero    Player
	current world.RoomID
	state   State
	turns   int

	session string
	tracer  trace.Tracer
	palette *gamedata.Palette
}

// Option configures a Game.
type Option func(*Game)

// WithTracer overrides the tracer used for move spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Game) { g.tracer = tracer }
}

// WithSessionID sets the id attached to every span.
func WithSessionID(id string) Option {
	return func(g *Game) { g.session = id }
}

// WithPalette colors the plain-text output of RunScript.
func WithPalette(p *gamedata.Palette) Option {
	return func(g *Game) { g.palette = p }
}

// New creates a game on w and places hero in the middle of the entry room.
func New(w *world.World, hero Player, opts ...Option) *Game {
	g := &Game{
		world:   w,
		hero:    hero,
		current: w.EntryID(),
		state:   StateExplore,
		session: uuid.NewString(),
		tracer:  telemetry.Tracer("game"),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.CurrentRoom().AddHero(hero, world.Center)
	g.checkOver()
	return g
}

// MoveHero moves the hero dx rows and dy columns in the current room and
// follows a door into the neighboring room.
func (g *Game) MoveHero(ctx context.Context, dx, dy int) world.Move {
	if g.state == StateOver {
		return world.Move{Outcome: world.MoveBlocked}
	}
	room := g.CurrentRoom()

	_, span := g.tracer.Start(ctx, "game.move",
		trace.WithAttributes(
			attribute.String("session.id", g.session),
			attribute.String("room", room.ID()),
			attribute.Int("move.dx", dx),
			attribute.Int("move.dy", dy),
		),
	)
	defer span.End()

	move := room.MoveBy(g.hero, dx, dy)
	if move.Outcome != world.MoveBlocked {
		g.turns++
	}
	if move.Outcome == world.MoveExited {
		g.current = move.Next
		next := g.CurrentRoom()
		next.AddHero(g.hero, move.Exit)
		span.SetAttributes(
			attribute.String("move.exit", move.Exit.String()),
			attribute.String("room.next", next.ID()),
		)
	}
	g.checkOver()

	span.SetAttributes(
		attribute.String("move.outcome", move.Outcome.String()),
		attribute.Int("hero.hp", g.hero.HitPoints()),
		attribute.String("game.state", g.state.String()),
	)
	return move
}

func (g *Game) checkOver() {
	if g.hero.HitPoints() <= 0 {
		g.state = StateOver
	}
}

// CurrentRoom returns the room the hero is in.
func (g *Game) CurrentRoom() *world.Room { return g.world.Room(g.current) }

// Status returns the outcome of the last action in the current room.
func (g *Game) Status() string { return g.CurrentRoom().Status() }

// GameOver reports whether the hero has no hit points left.
func (g *Game) GameOver() bool { return g.state == StateOver }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Snapshot returns the current room's grid.
func (g *Game) Snapshot() world.Grid { return g.CurrentRoom().Snapshot() }

// Turns returns the number of moves that changed something.
func (g *Game) Turns() int { return g.turns }

// SessionID returns the id attached to this game's spans.
func (g *Game) SessionID() string { return g.session }

// View returns what a frame should show.
func (g *Game) View() ui.View {
	status := g.Status()
	if g.GameOver() {
		if status != "" {
			status += ". "
		}
		status += "Game over"
	}
	return ui.View{
		Room:   g.CurrentRoom().ID(),
		Grid:   g.Snapshot(),
		HUD:    g.hero.String(),
		Status: status,
	}
}
