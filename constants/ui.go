package constants

// Terminal layout
const (
	// CellCols is the number of terminal columns per grid cell
	CellCols = 4

	// CellRows is the number of terminal rows per grid cell
	CellRows = 2

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 64
)

// Glyphs drawn by the terminal renderer
const (
	GlyphFill   = '█'
	GlyphBorder = '·'
)
