package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
)

// TerminalRenderer draws derived transforms onto a terminal screen
// The arena occupies cellCols x cellRows characters per grid cell inside a one-character border
// It reads transforms and colors only, grid positions are used for the status line
type TerminalRenderer struct {
	screen     tcell.Screen
	cellCols   int
	cellRows   int
	background tcell.Color
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, cellCols, cellRows int, background components.ColorComponent) *TerminalRenderer {
	if cellCols <= 0 || cellRows <= 0 {
		panic(fmt.Sprintf("cell footprint must be positive, got %dx%d", cellCols, cellRows))
	}
	return &TerminalRenderer{
		screen:     screen,
		cellCols:   cellCols,
		cellRows:   cellRows,
		background: ToTcell(background),
	}
}

// Viewport returns the arena size in terminal characters, excluding the border
func (r *TerminalRenderer) Viewport(ctx *engine.GameContext) (cols, rows int) {
	return ctx.Arena.Width * r.cellCols, ctx.Arena.Height * r.cellRows
}

// RequiredSize returns the terminal size needed to show the arena, border and status line
func (r *TerminalRenderer) RequiredSize(ctx *engine.GameContext) (width, height int) {
	cols, rows := r.Viewport(ctx)
	return cols + 2, rows + 3
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.screen.Clear()
	cols, rows := r.Viewport(ctx)
	bgStyle := tcell.StyleDefault.Background(r.background)

	r.drawBorder(cols, rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x+1, y+1, ' ', nil, bgStyle)
		}
	}

	world := ctx.World

	// Food, free movers, body, head
	for _, e := range world.Foods.All() {
		r.drawTile(ctx, e, cols, rows)
	}
	for _, e := range world.Velocities.All() {
		r.drawTile(ctx, e, cols, rows)
	}
	for _, e := range world.Segments.All() {
		if !world.Heads.Has(e) {
			r.drawTile(ctx, e, cols, rows)
		}
	}
	for _, e := range world.Heads.All() {
		r.drawTile(ctx, e, cols, rows)
	}

	r.drawStatusBar(ctx, rows+2)

	r.screen.Show()
}

// drawTile fills every terminal character whose center lies inside the entity's transform rectangle
func (r *TerminalRenderer) drawTile(ctx *engine.GameContext, e core.Entity, cols, rows int) {
	transform, ok := ctx.World.Transforms.Get(e)
	if !ok {
		return
	}
	color, ok := ctx.World.Colors.Get(e)
	if !ok {
		return
	}

	sw, sh := ctx.Surface.Width, ctx.Surface.Height
	colPx, rowPx := sw/float32(cols), sh/float32(rows)

	left := transform.Translation.X() - transform.Scale.X()/2
	right := transform.Translation.X() + transform.Scale.X()/2
	bottom := transform.Translation.Y() - transform.Scale.Y()/2
	top := transform.Translation.Y() + transform.Scale.Y()/2

	// Surface x grows right from -sw/2, terminal rows grow down from +sh/2
	c0 := clamp(int((left+sw/2)/colPx), 0, cols-1)
	c1 := clamp(int((right+sw/2)/colPx), 0, cols-1)
	r0 := clamp(int((sh/2-top)/rowPx), 0, rows-1)
	r1 := clamp(int((sh/2-bottom)/rowPx), 0, rows-1)

	style := tcell.StyleDefault.Foreground(ToTcell(color)).Background(r.background)

	for row := r0; row <= r1; row++ {
		cy := sh/2 - (float32(row)+0.5)*rowPx
		if cy < bottom || cy > top {
			continue
		}
		for col := c0; col <= c1; col++ {
			cx := (float32(col)+0.5)*colPx - sw/2
			if cx < left || cx > right {
				continue
			}
			r.screen.SetContent(col+1, row+1, constants.GlyphFill, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBorder(cols, rows int) {
	style := tcell.StyleDefault.Foreground(RgbBorder)
	right, bottom := cols+1, rows+1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawStatusBar draws the title, heading, head cell and tick count
func (r *TerminalRenderer) drawStatusBar(ctx *engine.GameContext, y int) {
	status := constants.WindowTitle
	if ctx.HeadEntity != core.NoEntity && ctx.World.Exists(ctx.HeadEntity) {
		head := ctx.World.Position(ctx.HeadEntity)
		where := ""
		if !ctx.Arena.Contains(head.X, head.Y) {
			where = " outside"
		}
		status = fmt.Sprintf("%s  heading: %s  head: (%d,%d)%s  ticks: %d  r: restart  q: quit",
			constants.WindowTitle,
			ctx.World.Heading(ctx.HeadEntity),
			head.X, head.Y, where,
			ctx.Scheduler.TickCount(),
		)
	}
	drawText(r.screen, 0, y, status, tcell.StyleDefault.Foreground(RgbStatusText))
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
