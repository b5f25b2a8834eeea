package ascii

// xterm 256-color palette math.
//
// Color cube: index = 16 + 36*r + 6*g + b with r,g,b in [0,5], channel
// levels {0, 95, 135, 175, 215, 255}.
// Grayscale ramp: indices 232-255, levels 8 + 10*(index-232).

var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// cube256 returns the palette index for a color-cube coordinate. Out of
// range coordinates are clamped.
func cube256(r, g, b int) int {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 5 {
			return 5
		}
		return v
	}
	return 16 + 36*clamp(r) + 6*clamp(g) + clamp(b)
}

// gray256 returns the palette index for a grayscale step in [0,23].
func gray256(step int) int {
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	return 232 + step
}

// cubeLevel maps one 8-bit channel to its nearest cube coordinate.
func cubeLevel(v int) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

// RGBTo256 returns the xterm 256-color code closest to an RGB triple,
// considering both the 6x6x6 cube and the grayscale ramp.
func RGBTo256(r, g, b uint8) int {
	cr, cg, cb := cubeLevel(int(r)), cubeLevel(int(g)), cubeLevel(int(b))
	cubeDist := sqDist(int(r), cubeLevels[cr]) + sqDist(int(g), cubeLevels[cg]) + sqDist(int(b), cubeLevels[cb])

	// Nearest gray level: steps are 8, 18, ..., 238.
	avg := (int(r) + int(g) + int(b)) / 3
	step := (avg - 3) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	grayLevel := 8 + 10*step
	grayDist := sqDist(int(r), grayLevel) + sqDist(int(g), grayLevel) + sqDist(int(b), grayLevel)

	if grayDist < cubeDist {
		return gray256(step)
	}
	return cube256(cr, cg, cb)
}

func sqDist(a, b int) int {
	d := a - b
	return d * d
}
