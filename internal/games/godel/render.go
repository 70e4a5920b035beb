package godel

import (
	"fmt"

	"github.com/vovakirdan/getgodel/internal/board"
	"github.com/vovakirdan/getgodel/internal/config"
	"github.com/vovakirdan/getgodel/internal/core"
)

const (
	cellWidth  = 9 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// minSize returns the smallest screen that fits the board, HUD and footer.
func (g *Game) minSize() (int, int) {
	boardW := g.settings.Width*cellWidth + 1
	boardH := g.settings.Height*cellHeight + 1
	return boardW + 2, hudHeight + boardH + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		dst.DrawTextCentered(g.screenH/2, "Cannot start game")
		if g.err != nil {
			dst.DrawTextCentered(g.screenH/2+1, g.err.Error())
		}
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.board.Width()*cellWidth + 1
	boardH := g.board.Height()*cellHeight + 1
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := g.minSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title and progress line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.settings.Title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	goal := fmt.Sprintf("Goal: %s", TargetName(g.settings.Theme, g.settings.Target))
	dst.DrawText(boardX, 1, goal)

	info := fmt.Sprintf("Max: %d  Moves: %d", g.board.MaxTile(), g.moves)
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)

	size := fmt.Sprintf("%dx%d", g.board.Height(), g.board.Width())
	dst.DrawTextColored(boardX+(boardW-len(size))/2, 2, size, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	h, w := g.board.Height(), g.board.Width()

	for y := range h + 1 {
		for x := range w + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == w:
				corner = '┐'
			case y == h && x == 0:
				corner = '└'
			case y == h && x == w:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == h:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == w:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < w {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < h {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y, row := range g.board.Cells() {
		for x, val := range row {
			if val == board.Empty {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			label := Label(g.settings.Theme, val)
			padLeft := max((cellWidth-1-len(label))/2, 0)

			color := core.TileColor(val)
			if g.lastSpawn != nil && g.lastSpawn.Row == y && g.lastSpawn.Col == x {
				dst.SetColored(cellX, cellY, '*', core.ColorGray)
			}
			dst.DrawTextColored(cellX+padLeft, cellY, label, color)
		}
	}
}

// renderOverlays draws pause and end-of-game boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, area, "PAUSED", "Press P to resume")
	case g.board.IsWon():
		headline := fmt.Sprintf("%d REACHED!", g.settings.Target)
		if g.settings.Theme == config.ThemeLogicians {
			headline = fmt.Sprintf("YOU GOT %s!", TargetName(g.settings.Theme, g.settings.Target))
		}
		g.drawOverlay(dst, area, headline, fmt.Sprintf("in %d moves", g.moves), "R: restart  Esc: menu")
	case g.board.IsLost():
		g.drawOverlay(dst, area, "NO ROOM LEFT", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "R: restart  Esc: menu")
	case g.stuck():
		g.drawOverlay(dst, area, "NO MOVES LEFT", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "R: restart  Esc: menu")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, core.ColorBrightYellow)
	}
}

