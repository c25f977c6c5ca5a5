package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"visnake/internal/app"
	"visnake/internal/snake"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func newSession(t *testing.T, seed int64) *app.Session {
	t.Helper()
	eng, err := snake.New(snake.Config{Width: 12, Height: 8, StartLength: 3}, seed)
	if err != nil {
		t.Fatalf("snake.New: %v", err)
	}
	return app.NewSession(eng, func() int64 { return seed + 1 })
}

func rowText(s tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCommandForKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want app.Command
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), app.CmdUp},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), app.CmdDown},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), app.CmdLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), app.CmdRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), app.CmdUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), app.CmdLeft},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.CmdPause},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.CmdPause},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), app.CmdRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), app.CmdQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.CmdQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), app.CmdNone},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), app.CmdNone},
	}
	for _, tc := range cases {
		if got := CommandForKey(tc.ev); got != tc.want {
			t.Fatalf("CommandForKey(%s) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestDrawPlacesSnakeAndFoodInsideFrame(t *testing.T) {
	s := newScreen(t, 20, 12)
	sess := newSession(t, 7)
	eng := sess.Engine()

	if !Draw(s, sess) {
		t.Fatal("board should fit a 20x12 screen")
	}

	// 12x8 board on 20x12: origin (4, 1), frame from (3, 0) to (16, 9).
	x0, y0 := 4, 1
	if r, _, _, _ := s.GetContent(x0-1, y0-1); r != '-' {
		t.Fatalf("top-left frame = %q, want '-'", r)
	}
	if r, _, _, _ := s.GetContent(x0+12, y0+3); r != '|' {
		t.Fatalf("right frame = %q, want '|'", r)
	}
	if r, _, _, _ := s.GetContent(x0+5, y0+8); r != '-' {
		t.Fatalf("bottom frame = %q, want '-'", r)
	}

	head := eng.Head()
	if r, _, _, _ := s.GetContent(x0+head.X, y0+head.Y); r != glyphHead {
		t.Fatalf("head cell = %q, want %q", r, glyphHead)
	}
	for i := 1; i < eng.Len(); i++ {
		c := eng.BodyAt(i)
		if r, _, _, _ := s.GetContent(x0+c.X, y0+c.Y); r != glyphBody {
			t.Fatalf("body cell %d = %q, want %q", i, r, glyphBody)
		}
	}
	f := eng.Food()
	if r, _, _, _ := s.GetContent(x0+f.X, y0+f.Y); r != glyphFood {
		t.Fatalf("food cell = %q, want %q", r, glyphFood)
	}
	if got := rowText(s, y0+9, 20); !strings.Contains(got, "score 0  length 3") {
		t.Fatalf("status line = %q", got)
	}
}

func TestDrawReportsSmallWindow(t *testing.T) {
	sess := newSession(t, 7)

	s := newScreen(t, 13, 20)
	if Draw(s, sess) {
		t.Fatal("13 columns cannot hold a framed 12-wide board")
	}
	if got := rowText(s, 0, 13); !strings.HasPrefix(got, "window is no") {
		t.Fatalf("notice = %q", got)
	}

	s = newScreen(t, 30, 10)
	if Draw(s, sess) {
		t.Fatal("10 rows cannot hold a framed 8-high board and status line")
	}
	if got := rowText(s, 0, 30); !strings.Contains(got, "tall") {
		t.Fatalf("notice = %q", got)
	}
}

func TestDrawShowsPause(t *testing.T) {
	s := newScreen(t, 40, 12)
	sess := newSession(t, 7)
	sess.Tick(app.CmdPause)
	Draw(s, sess)
	if got := rowText(s, 10, 40); !strings.Contains(got, "paused") {
		t.Fatalf("status line = %q, want pause notice", got)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newScreen(t, 20, 12)
	sess := newSession(t, 7)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(s, sess, 5*time.Millisecond) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunAdvancesGame(t *testing.T) {
	s := newScreen(t, 20, 12)
	sess := newSession(t, 7)

	done := make(chan error, 1)
	go func() { done <- Run(s, sess, 5*time.Millisecond) }()
	time.Sleep(50 * time.Millisecond)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Ctrl-C")
	}
	if sess.Ticks() == 0 {
		t.Fatal("session never ticked while Run was running")
	}
}
