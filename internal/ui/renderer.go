package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/boing/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	WallChar   = '\u2500' // ─

	MinWidth  = 40
	MinHeight = 20

	batHeight = 2 * game.BatHitRange
)

// impactChars are the five impact animation frames
var impactChars = []rune{'✺', '✹', '*', '+', '·'}

// Renderer draws game images onto the terminal, scaling the court to
// whatever size the terminal currently is. It implements game.Surface.
type Renderer struct {
	screen   *Screen
	width    int
	height   int
	tooSmall bool
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// BeginFrame clears the screen and picks up terminal resizes
func (r *Renderer) BeginFrame() {
	r.screen.Clear()
	r.width, r.height = r.screen.Size()
	r.tooSmall = r.width < MinWidth || r.height < MinHeight
}

// EndFrame shows everything drawn since BeginFrame
func (r *Renderer) EndFrame() {
	if r.tooSmall {
		r.renderTooSmall()
	}
	r.screen.Show()
}

// Blit draws the image identified by name. Entity images are centred on
// (x, y); full screen layers ignore the position.
func (r *Renderer) Blit(image string, x, y float64) {
	if r.tooSmall {
		return
	}

	switch {
	case image == "table":
		r.renderTable()
	case image == "ball":
		col, row := r.toScreen(x, y)
		r.screen.SetCell(col, row, tcell.StyleDefault.Foreground(tcell.ColorWhite), BallChar)
	case image == "over":
		r.renderGameOver()
	case strings.HasPrefix(image, "effect"):
		if player, ok := suffixDigit(image, "effect"); ok {
			r.renderEffect(player)
		}
	case strings.HasPrefix(image, "bat") && len(image) == 5:
		player, err1 := strconv.Atoi(image[3:4])
		frame, err2 := strconv.Atoi(image[4:5])
		if err1 == nil && err2 == nil {
			r.renderBat(player, frame, x, y)
		}
	case strings.HasPrefix(image, "impact"):
		if frame, ok := suffixDigit(image, "impact"); ok && frame < len(impactChars) {
			col, row := r.toScreen(x, y)
			r.screen.SetCell(col, row, tcell.StyleDefault.Foreground(tcell.ColorYellow), impactChars[frame])
		}
	case strings.HasPrefix(image, "digit0"):
		if digit, ok := suffixDigit(image, "digit0"); ok {
			col, row := r.toScreen(x, y)
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			r.screen.SetCell(col, row, style, rune('0'+digit))
		}
	case strings.HasPrefix(image, "menu"):
		if option, ok := suffixDigit(image, "menu"); ok {
			r.renderMenu(option)
		}
	}
	// "blank" and anything unknown draw nothing
}

// toScreen maps court coordinates to a terminal cell
func (r *Renderer) toScreen(x, y float64) (int, int) {
	col := int(x * float64(r.width) / game.Width)
	row := int(y * float64(r.height) / game.Height)
	return col, row
}

// renderTable draws the court: black background, walls and a dashed net
func (r *Renderer) renderTable() {
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 0, r.width, r.height, courtStyle, ' ')

	_, top := r.toScreen(0, game.HalfHeight-game.WallY)
	_, bottom := r.toScreen(0, game.HalfHeight+game.WallY)
	wallStyle := courtStyle.Foreground(tcell.ColorGray)
	for x := 0; x < r.width; x++ {
		r.screen.SetCell(x, max(0, top-1), wallStyle, WallChar)
		r.screen.SetCell(x, min(r.height-1, bottom+1), wallStyle, WallChar)
	}

	centerX, _ := r.toScreen(game.HalfWidth, 0)
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := top; y <= bottom; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}
}

// renderEffect flashes the half of the court belonging to player
func (r *Renderer) renderEffect(player int) {
	half := r.width / 2
	if player == 0 {
		r.screen.Tint(0, 0, half, r.height, tcell.ColorMaroon)
	} else {
		r.screen.Tint(half, 0, r.width-half, r.height, tcell.ColorMaroon)
	}
}

func (r *Renderer) renderBat(player, frame int, x, y float64) {
	style := GetPlayerStyle(player)
	switch frame {
	case 1:
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	case 2:
		style = style.Foreground(tcell.ColorDarkGray)
	}

	col, _ := r.toScreen(x, 0)
	_, top := r.toScreen(0, y-batHeight/2)
	_, bottom := r.toScreen(0, y+batHeight/2)
	r.screen.DrawVerticalLine(col, top, bottom-1, style, PaddleChar)
}

// renderMenu shows the title and the player count choice, option being
// 0 for one player and 1 for two
func (r *Renderer) renderMenu(option int) {
	boxW, boxH := 32, 11
	boxX, boxY := r.drawPanel(boxW, boxH)

	titleStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorTeal).Bold(true)
	r.screen.DrawCenteredText(boxY+2, "B O I N G !", titleStyle)

	labels := []string{"1 PLAYER", "2 PLAYERS"}
	for i, label := range labels {
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
		text := "  " + label + "  "
		if i == option {
			style = GetPlayerBgStyle(0).Foreground(tcell.ColorWhite).Bold(true)
			text = "> " + label + " <"
		}
		r.screen.DrawCenteredText(boxY+4+i, text, style)
	}

	hintStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	r.screen.DrawCenteredText(boxY+7, "SPACE to start", hintStyle)
	r.screen.DrawText(boxX+2, boxY+boxH-2, "q to quit", hintStyle.Foreground(tcell.ColorGray))
}

func (r *Renderer) renderGameOver() {
	boxW, boxH := 30, 7
	_, boxY := r.drawPanel(boxW, boxH)

	titleStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawCenteredText(boxY+2, "GAME OVER", titleStyle)

	hintStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	r.screen.DrawCenteredText(boxY+4, "Press SPACE to continue", hintStyle)
}

// drawPanel draws an empty framed box in the middle of the screen
func (r *Renderer) drawPanel(w, h int) (int, int) {
	x := (r.width - w) / 2
	y := (r.height - h) / 2
	fill := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(x, y, w, h, fill, ' ')
	r.screen.DrawBox(x, y, w, h, fill.Foreground(tcell.ColorWhite))
	return x, y
}

func (r *Renderer) renderTooSmall() {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	r.screen.DrawCenteredText(r.height/2, "Terminal too small", style)
	r.screen.DrawCenteredText(r.height/2+1, "need "+strconv.Itoa(MinWidth)+"x"+strconv.Itoa(MinHeight), style)
}

// suffixDigit parses the single digit after prefix, e.g. "impact3" -> 3
func suffixDigit(image, prefix string) (int, bool) {
	rest := strings.TrimPrefix(image, prefix)
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, false
	}
	return int(rest[0] - '0'), true
}
