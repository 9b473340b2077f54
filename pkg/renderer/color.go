package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
)

// maxChannel keeps 256*c strictly below 256 so truncation stays within a byte
const maxChannel = 0.999

// ToRGB converts an averaged linear color to an 8-bit pixel: square root for
// gamma 2, clamp to [0, 0.999], scale by 256 and truncate. A NaN
// channel quantizes to 0.
func ToRGB(c core.Color) output.RGB {
	g := c.Sqrt()
	return output.RGB{
		R: quantize(g.X),
		G: quantize(g.Y),
		B: quantize(g.Z),
	}
}

func quantize(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(256 * core.Clamp(x, 0.0, maxChannel))
}
