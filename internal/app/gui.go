//go:build ebiten

package app

import (
	"visnake/internal/core"
	"visnake/internal/render"
	"visnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width in pixels of the status panel right of the board.
const hudWidth = 180

var guiKeys = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyQ, CmdQuit},
	{ebiten.KeyR, CmdRestart},
	{ebiten.KeyEscape, CmdPause},
	{ebiten.KeySpace, CmdPause},
	{ebiten.KeyK, CmdUp},
	{ebiten.KeyArrowUp, CmdUp},
	{ebiten.KeyJ, CmdDown},
	{ebiten.KeyArrowDown, CmdDown},
	{ebiten.KeyH, CmdLeft},
	{ebiten.KeyArrowLeft, CmdLeft},
	{ebiten.KeyL, CmdRight},
	{ebiten.KeyArrowRight, CmdRight},
}

// Game adapts a Session to the ebiten.Game interface. Ebiten calls Update at
// its own TPS; the snake moves only when the fixed step fires.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep
	pending Command
	scale   int
}

// New constructs a Game for the provided session.
func New(session *Session, scale, tps int) *Game {
	size := session.Engine().Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(session.Engine(), hudWidth),
		step:    core.NewFixedStep(tps),
		scale:   scale,
	}
}

// Update collects key presses and advances the session on each fixed step.
func (g *Game) Update() error {
	for _, k := range guiKeys {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		switch k.cmd {
		case CmdQuit:
			return ebiten.Termination
		case CmdRestart, CmdPause:
			g.session.Tick(k.cmd)
			g.step.Reset()
		default:
			g.pending = k.cmd
		}
	}
	if g.session.Paused() || !g.step.ShouldStep() {
		return nil
	}
	g.session.Tick(g.pending)
	g.pending = CmdNone
	return nil
}

// Draw renders the board and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Engine().Cells(), render.SnakePalette, g.scale)
	size := g.session.Engine().Size()
	g.hud.Draw(screen, size.W*g.scale, g.scale, g.session.Paused())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Engine().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
