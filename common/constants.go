package common

const (
	// TileSize is the pixel size of one map tile. Simulation units are tiles.
	TileSize = 16

	// GlobalScale is the pixel upscale applied when drawing.
	GlobalScale = 2

	BaseWidth  = 800
	BaseHeight = 600
)

// PixelsToTiles converts level pixel coordinates into simulation units.
func PixelsToTiles(px float64) float64 {
	return px / TileSize
}
