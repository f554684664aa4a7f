package viz

// PhasePortrait draws a prey-vs-predator orbit onto a braille canvas.
// Prey runs along the x axis, predator along y, both scaled to fill the
// canvas; consecutive samples are connected so sparse orbits stay
// readable.
func PhasePortrait(prey, predator []float64, width, height int) *Canvas {
	c := NewCanvas(width, height)
	n := len(prey)
	if n == 0 || n != len(predator) {
		return c
	}

	minP, maxP := prey[0], prey[0]
	minQ, maxQ := predator[0], predator[0]
	for i := 1; i < n; i++ {
		if prey[i] < minP {
			minP = prey[i]
		}
		if prey[i] > maxP {
			maxP = prey[i]
		}
		if predator[i] < minQ {
			minQ = predator[i]
		}
		if predator[i] > maxQ {
			maxQ = predator[i]
		}
	}
	rangeP := maxP - minP
	rangeQ := maxQ - minQ
	if rangeP == 0 {
		rangeP = 1
	}
	if rangeQ == 0 {
		rangeQ = 1
	}

	subW := float64(width*2 - 1)
	subH := float64(height*4 - 1)

	px := func(i int) (int, int) {
		x := int((prey[i] - minP) / rangeP * subW)
		y := int(subH - (predator[i]-minQ)/rangeQ*subH)
		return x, y
	}

	x0, y0 := px(0)
	c.Set(x0, y0)
	for i := 1; i < n; i++ {
		x1, y1 := px(i)
		line(c, x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
	return c
}

// line draws with Bresenham in sub-pixel coordinates.
func line(c *Canvas, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
