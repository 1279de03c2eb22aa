package drawutil

import "github.com/wesen/edgetrack/pkg/cellbuf"

// DrawGrid dots every world cell whose coordinates are multiples of the
// spacing. cam is the world position of buffer cell (0,0), so the grid
// scrolls as the camera pans.
func DrawGrid(buf *cellbuf.Buffer, camX, camY, spacingX, spacingY int, style cellbuf.StyleKey) {
	if spacingX <= 0 || spacingY <= 0 {
		return
	}
	for y := 0; y < buf.H; y++ {
		if mod(y+camY, spacingY) != 0 {
			continue
		}
		for x := 0; x < buf.W; x++ {
			if mod(x+camX, spacingX) == 0 {
				buf.Set(x, y, '·', style)
			}
		}
	}
}

// mod is a modulus that stays non-negative for negative a.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
