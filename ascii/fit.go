package ascii

// MinScale is the floor applied to any adjusted scale so the output never
// degenerates to zero size.
const MinScale = 0.01

// rowAspect compensates for terminal cells being roughly twice as tall as
// they are wide.
const rowAspect = 0.55

// OutputSize returns the frame dimensions for a source image at a given
// scale. The height is compressed by rowAspect, both dimensions truncate
// and are clamped to at least 1.
func OutputSize(srcW, srcH int, scale float64) (int, int) {
	outW := int(float64(srcW) * scale)
	outH := int(float64(srcH) * scale * rowAspect)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// Viewport describes the terminal area available for a frame. Reserved
// rows (the status header) are subtracted from Rows before fitting.
type Viewport struct {
	Cols     int
	Rows     int
	Reserved int
}

// FitScale shrinks scale until the frame produced by OutputSize fits the
// viewport. The more restrictive of the width and height constraints wins.
// The scale is never increased, and never drops below MinScale.
func FitScale(srcW, srcH int, scale float64, vp Viewport) float64 {
	outW, outH := OutputSize(srcW, srcH, scale)

	availRows := vp.Rows - vp.Reserved
	if availRows < 1 {
		availRows = 1
	}

	factorW, factorH := 1.0, 1.0
	if outW > vp.Cols {
		factorW = float64(vp.Cols) / float64(outW)
	}
	if outH > availRows {
		factorH = float64(availRows) / float64(outH)
	}

	factor := factorW
	if factorH < factor {
		factor = factorH
	}
	if factor < 1.0 {
		scale *= factor
	}
	if scale < MinScale {
		scale = MinScale
	}
	return scale
}
