package constants

// Initial snake layout
const (
	InitialHeadX = 3
	InitialHeadY = 3

	InitialSegmentX = 3
	InitialSegmentY = 2

	// InitialHeading is parsed with core.ParseHeading
	InitialHeading = "up"
)

// Tile sizes as a fraction of one grid cell
const (
	HeadSize    = 0.8
	SegmentSize = 0.65
	FoodSize    = 0.8
)

// RGB triples in the 0..1 range
var (
	HeadColor    = [3]float32{0.7, 0.7, 0.7}
	SegmentColor = [3]float32{0.3, 0.3, 0.3}
	FoodColor    = [3]float32{1.0, 0.0, 1.0}
	ClearColor   = [3]float32{0.04, 0.04, 0.04}
)

// Free motion demo mover
var (
	DemoSize     float32 = 0.5
	DemoColor            = [3]float32{0.2, 0.6, 0.9}
	DemoVelocity         = [2]float32{60, 40} // surface pixels per second
)
