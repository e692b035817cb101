package proj

// Window pixels have their origin in the top-left corner with y growing
// downwards. Component coordinates and render regions have their origin in the
// bottom-left corner with y growing upwards.

// WindowToLocal converts the window pixel (px, py) to root-local coordinates
// of a width x height window. The center of the pixel is used, so every pixel
// of the window maps inside the unit square.
func WindowToLocal(px, py float64, width, height int) (x, y float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x = (px + 0.5) / float64(width)
	y = 1 - (py+0.5)/float64(height)
	return x, y
}

// LocalToWindow converts the point (x, y) of a render region to window
// pixels. The region starts at (minX, minY) pixels from the bottom-left corner
// of a window that is windowHeight pixels high.
func LocalToWindow(x, y float64, minX, minY, width, height, windowHeight int) (px, py float64) {
	px = float64(minX) + x*float64(width)
	py = float64(windowHeight) - (float64(minY) + y*float64(height))
	return px, py
}

// FlipRegion returns the top edge, in window pixels, of a region whose bottom
// edge is minY pixels above the bottom of the window.
func FlipRegion(minY, height, windowHeight int) (top int) {
	return windowHeight - minY - height
}
