package ascii

import (
	"strings"

	"github.com/nfnt/resize"
)

// DefaultFilter is used when no filter (or an unknown one) is requested.
const DefaultFilter = resize.Lanczos3

// ParseFilter maps a filter name to a resampling function. ok is false for
// an unrecognized name, in which case the default is returned and the
// caller decides whether to warn.
func ParseFilter(name string) (f resize.InterpolationFunction, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lanczos":
		return resize.Lanczos3, true
	case "nearest":
		return resize.NearestNeighbor, true
	case "bilinear":
		return resize.Bilinear, true
	case "bicubic":
		return resize.Bicubic, true
	}
	return DefaultFilter, false
}
