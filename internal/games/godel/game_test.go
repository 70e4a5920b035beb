package godel

import (
	"strings"
	"testing"

	"github.com/vovakirdan/getgodel/internal/board"
	"github.com/vovakirdan/getgodel/internal/config"
	"github.com/vovakirdan/getgodel/internal/core"
	"github.com/vovakirdan/getgodel/internal/registry"
)

func testSettings() config.GameSettings {
	return config.GameSettings{
		ID:           "test",
		Title:        "Test",
		Height:       4,
		Width:        4,
		Target:       2048,
		InitialTiles: 2,
		LossRule:     board.LossSpawnFailed,
		Theme:        config.ThemeLogicians,
	}
}

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed}
}

// newLoaded returns a game whose board holds exactly the given rows.
func newLoaded(t *testing.T, s config.GameSettings, rows [][]int) *Game {
	t.Helper()

	s.InitialTiles = 0
	g := New(s)
	g.Reset(testConfig(1))
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	for r, row := range rows {
		for c, v := range row {
			if v == board.Empty {
				continue
			}
			if err := g.board.InsertTile(v, r, c); err != nil {
				t.Fatalf("InsertTile(%d, %d, %d) error = %v", v, r, c, err)
			}
		}
	}
	return g
}

func TestResetPlacesInitialTiles(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		s := testSettings()
		s.InitialTiles = n

		g := New(s)
		g.Reset(testConfig(42))

		if got := g.board.Grid().TileCount(); got != n {
			t.Errorf("InitialTiles=%d: TileCount() = %d", n, got)
		}
		if g.moves != 0 {
			t.Errorf("InitialTiles=%d: moves = %d, want 0", n, g.moves)
		}
	}
}

func TestDeterministicSpawn(t *testing.T) {
	cfg := testConfig(12345)

	g1 := New(testSettings())
	g1.Reset(cfg)

	g2 := New(testSettings())
	g2.Reset(cfg)

	inputs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
	for _, a := range inputs {
		g1.Step(core.FrameOf(a))
		g2.Step(core.FrameOf(a))
	}

	if !g1.board.Equal(g2.board) {
		t.Errorf("same seed produced different boards:\n%v\n%v", g1.board.Cells(), g2.board.Cells())
	}
	if g1.moves != g2.moves {
		t.Errorf("moves = %d and %d, want equal", g1.moves, g2.moves)
	}
}

func TestResetInvalidSettings(t *testing.T) {
	s := testSettings()
	s.Height = 1

	g := New(s)
	g.Reset(testConfig(1))

	if g.Err() == nil {
		t.Fatal("Reset() with height 1 should fail")
	}
	if !g.State().GameOver {
		t.Error("broken game should report GameOver")
	}
	if got := g.Snapshot().State; got != StateBroken {
		t.Errorf("Snapshot().State = %s, want %s", got, StateBroken)
	}

	res := g.Step(core.FrameOf(core.ActionLeft))
	if res.Changed {
		t.Error("Step on broken game should not change anything")
	}
}

func TestStepMoveSpawns(t *testing.T) {
	g := newLoaded(t, testSettings(), [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.Changed {
		t.Fatal("Step(Left) Changed = false, want true")
	}
	if v, _ := g.board.At(0, 0); v != 2 {
		t.Errorf("At(0, 0) = %d, want 2", v)
	}
	if got := g.board.Grid().TileCount(); got != 2 {
		t.Errorf("TileCount() = %d, want 2 after spawn", got)
	}
	if g.lastSpawn == nil {
		t.Error("lastSpawn = nil after changing move")
	}
	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, want 1", res.State.Moves)
	}
}

func TestStepNoChangeNoSpawn(t *testing.T) {
	g := newLoaded(t, testSettings(), [][]int{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.board.Cells()

	res := g.Step(core.FrameOf(core.ActionLeft))
	if res.Changed {
		t.Error("Step(Left) Changed = true, want false")
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, want 0", g.moves)
	}

	after := g.board.Cells()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Fatalf("board changed at (%d, %d): %d -> %d", r, c, before[r][c], after[r][c])
			}
		}
	}
}

func TestStepWithoutDirection(t *testing.T) {
	g := New(testSettings())
	g.Reset(testConfig(7))

	res := g.Step(core.NewInputFrame())
	if res.Changed {
		t.Error("empty frame should not change the board")
	}
	res = g.Step(core.FrameOf(core.ActionConfirm))
	if res.Changed {
		t.Error("Confirm should not change the board")
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newLoaded(t, testSettings(), [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Pause did not pause the game")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StatePaused)
	}

	res := g.Step(core.FrameOf(core.ActionLeft))
	if res.Changed {
		t.Error("move while paused changed the board")
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second Pause did not resume the game")
	}

	res = g.Step(core.FrameOf(core.ActionLeft))
	if !res.Changed {
		t.Error("move after resume did not change the board")
	}
}

func TestStepWin(t *testing.T) {
	s := testSettings()
	s.Target = 16
	g := newLoaded(t, s, [][]int{
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.State.Won || !res.State.GameOver {
		t.Fatalf("State = %+v, want won and over", res.State)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StateWon)
	}

	before := g.board.Cells()
	res = g.Step(core.FrameOf(core.ActionRight))
	if res.Changed {
		t.Error("move after win changed the board")
	}
	if g.board.Cells()[0][0] != before[0][0] {
		t.Error("board changed after win")
	}
}

func TestStepLossOnFullBoard(t *testing.T) {
	g := newLoaded(t, testSettings(), [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	if g.board.SpawnRandomTile() {
		t.Fatal("SpawnRandomTile() on full board = true")
	}
	if !g.State().Lost {
		t.Fatal("failed spawn did not mark the game lost")
	}
	if g.Snapshot().State != StateLost {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StateLost)
	}
}

func TestStepLockedBoard(t *testing.T) {
	g := newLoaded(t, testSettings(), [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	for _, a := range []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp} {
		res := g.Step(core.FrameOf(a))
		if res.Changed {
			t.Errorf("Step(%v) changed a locked board", a)
		}
		if !res.State.Stuck || !res.State.GameOver {
			t.Errorf("Step(%v) State = %+v, want stuck and over", a, res.State)
		}
		if res.State.Lost {
			t.Errorf("Step(%v) marked the board lost", a)
		}
	}

	if got := g.Snapshot().State; got != StateStuck {
		t.Errorf("Snapshot().State = %s, want %s", got, StateStuck)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.paused {
		t.Error("a stuck game should not pause")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "NO MOVES LEFT") {
		t.Errorf("render missing stuck overlay:\n%s", screen.String())
	}
}

func TestStepNotStuckWithMerge(t *testing.T) {
	g := newLoaded(t, testSettings(), [][]int{
		{2, 2, 4, 8},
		{4, 8, 16, 32},
		{8, 16, 32, 64},
		{16, 32, 64, 128},
	})

	if st := g.State(); st.Stuck || st.GameOver {
		t.Fatalf("State = %+v, want playing", st)
	}

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.Changed {
		t.Error("Step(Left) did not merge the pair")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New(testSettings())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 5, Seed: 1})

	if !g.tooSmall {
		t.Fatal("40x5 screen should be too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	res := g.Step(core.FrameOf(core.ActionLeft))
	if res.Changed {
		t.Error("move on too-small screen changed the board")
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("Resize(80, 24) did not clear tooSmall")
	}

	screen := core.NewScreen(40, 5)
	g.Resize(40, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("render did not show too-small message:\n%s", screen.String())
	}
}

func TestRenderShowsTiles(t *testing.T) {
	s := testSettings()
	s.Target = 4096
	g := newLoaded(t, s, [][]int{
		{2, 0, 0, 0},
		{0, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Test", "Church", "Godel", "Goal: 4096", "Moves: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		theme config.Theme
		value int
		want  string
	}{
		{config.ThemeLogicians, 2, "Church"},
		{config.ThemeLogicians, 1024, "Montague"},
		{config.ThemeLogicians, 2048, "Godel"},
		{config.ThemeLogicians, 4096, "4096"},
		{config.ThemeNumbers, 2, "2"},
		{config.ThemeNumbers, 2048, "2048"},
		{config.ThemeNumbers, 1 << 30, "10737418"},
	}

	for _, tt := range tests {
		if got := Label(tt.theme, tt.value); got != tt.want {
			t.Errorf("Label(%s, %d) = %q, want %q", tt.theme, tt.value, got, tt.want)
		}
	}
}

func TestTargetName(t *testing.T) {
	if got := TargetName(config.ThemeLogicians, 2048); got != "Godel" {
		t.Errorf("TargetName(logicians, 2048) = %q, want Godel", got)
	}
	if got := TargetName(config.ThemeLogicians, 8192); got != "8192" {
		t.Errorf("TargetName(logicians, 8192) = %q, want 8192", got)
	}
	if got := TargetName(config.ThemeNumbers, 2048); got != "2048" {
		t.Errorf("TargetName(numbers, 2048) = %q, want 2048", got)
	}
}

func TestSnapshot(t *testing.T) {
	s := testSettings()
	s.Height = 3
	s.Width = 5

	g := New(s)
	g.Reset(testConfig(9))

	snap := g.Snapshot()
	if snap.Variant != "test" {
		t.Errorf("Variant = %s, want test", snap.Variant)
	}
	if snap.Height != 3 || snap.Width != 5 {
		t.Errorf("dimensions = %dx%d, want 3x5", snap.Height, snap.Width)
	}
	if len(snap.Cells) != 3 || len(snap.Cells[0]) != 5 {
		t.Errorf("Cells shape = %dx%d, want 3x5", len(snap.Cells), len(snap.Cells[0]))
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s, want %s", snap.State, StatePlaying)
	}
	if snap.MaxTile != 2 && snap.MaxTile != 4 {
		t.Errorf("MaxTile = %d, want 2 or 4", snap.MaxTile)
	}
}

func TestRegisterVariants(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	settings, err := config.Default().Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if err := RegisterVariants(settings); err != nil {
		t.Fatalf("RegisterVariants() error = %v", err)
	}

	for _, s := range settings {
		g, err := registry.Create(s.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", s.ID, err)
		}
		if g.ID() != s.ID {
			t.Errorf("ID() = %s, want %s", g.ID(), s.ID)
		}
	}

	if err := RegisterVariants(settings); err == nil {
		t.Error("registering the same variants twice should fail")
	}
}
