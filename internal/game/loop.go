package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/ui"
)

// Run executes the interactive loop on screen until the player quits.
// After game over the final frame stays up until a quit key.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	palette := g.palette
	if palette == nil {
		palette = gamedata.MustLoadPalette()
	}
	renderer := ui.NewRenderer(screen, palette)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderer.Render(g.View())

		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd, ok := KeyCommand(ev)
			if !ok {
				continue
			}
			if cmd.Action == ActionQuit {
				return nil
			}
			g.MoveHero(ctx, cmd.DX, cmd.DY)
		}
	}
}

// RunScript reads one command per line from in and writes a plain dump of
// the room to out after each one. It stops at end of input, on quit, or
// when the game is over.
func (g *Game) RunScript(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ui.Dump(out, g.View(), g.palette); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for !g.GameOver() && scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, ok := ParseCommand(line)
		if !ok {
			if _, err := fmt.Fprintf(out, "unknown command %q\n", line); err != nil {
				return err
			}
			continue
		}
		if cmd.Action == ActionQuit {
			return nil
		}
		g.MoveHero(ctx, cmd.DX, cmd.DY)
		if err := ui.Dump(out, g.View(), g.palette); err != nil {
			return err
		}
	}
	return scanner.Err()
}
