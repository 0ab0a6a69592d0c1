package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/components"
)

// Fixed UI colors
var (
	RgbBorder     = tcell.NewRGBColor(90, 90, 90)
	RgbStatusText = tcell.NewRGBColor(200, 200, 200)
)

// ToTcell converts a 0..1 RGB component to a terminal color
func ToTcell(c components.ColorComponent) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(r, g, b)
}
