package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"visnake/internal/app"
	"visnake/internal/snake"
)

const (
	glyphHead = '@'
	glyphBody = '#'
	glyphFood = '*'
)

var (
	styleFrame  = tcell.StyleDefault
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Draw renders the session centered on s: a framed board with a status line
// under it. It reports false, after printing a notice instead of the board,
// when the terminal is too small to hold the frame.
func Draw(s tcell.Screen, sess *app.Session) bool {
	s.Clear()
	eng := sess.Engine()
	size := eng.Size()
	w, h := s.Size()

	if w < size.W+2 {
		drawText(s, 0, 0, "window is not wide enough...", styleAlert)
		return false
	}
	if h < size.H+3 {
		drawText(s, 0, 0, "window is not tall enough...", styleAlert)
		return false
	}

	x0 := (w - size.W) / 2
	y0 := (h - size.H - 1) / 2
	drawFrame(s, x0, y0, size.W, size.H)

	if eng.HasFood() {
		f := eng.Food()
		s.SetContent(x0+f.X, y0+f.Y, glyphFood, nil, styleFood)
	}
	for i := eng.Len() - 1; i > 0; i-- {
		c := eng.BodyAt(i)
		s.SetContent(x0+c.X, y0+c.Y, glyphBody, nil, styleBody)
	}
	head := eng.Head()
	s.SetContent(x0+head.X, y0+head.Y, glyphHead, nil, styleHead)

	drawText(s, x0-1, y0+size.H+1, statusLine(sess), styleStatus)
	return true
}

func statusLine(sess *app.Session) string {
	eng := sess.Engine()
	line := fmt.Sprintf("score %d  length %d", eng.Score(), eng.Len())
	switch {
	case eng.Status() == snake.Dead:
		return line + "  dead, r restarts"
	case eng.Status() == snake.Won:
		return line + "  board full, you win"
	case sess.Paused():
		return line + "  paused"
	}
	return line
}

func drawFrame(s tcell.Screen, x0, y0, w, h int) {
	for x := x0 - 1; x <= x0+w; x++ {
		s.SetContent(x, y0-1, '-', nil, styleFrame)
		s.SetContent(x, y0+h, '-', nil, styleFrame)
	}
	for y := y0; y < y0+h; y++ {
		s.SetContent(x0-1, y, '|', nil, styleFrame)
		s.SetContent(x0+w, y, '|', nil, styleFrame)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
