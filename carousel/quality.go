package carousel

import (
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/sekz/ODR-PadEnc/model"
)

// computeQuality derives the three normalized [0,1] metrics spec.md §4.2
// feeds into the composite selection score. Grounded on
// temcen-pirex's use of gonum/stat for descriptive statistics — no
// repository in the example pack computes image quality metrics
// directly, so the statistical primitives (mean, variance) are reused
// here for a new purpose rather than invented from scratch.
func computeQuality(img *image.RGBA) model.QualityMetrics {
	lum := luminanceSamples(img)
	if len(lum) == 0 {
		return model.QualityMetrics{}
	}

	mean := stat.Mean(lum, nil)
	sd := stat.StdDev(lum, nil)

	return model.QualityMetrics{
		Sharpness:  normalizeSharpness(edgeVariance(img)),
		Contrast:   normalizeContrast(sd),
		Brightness: normalizeBrightness(mean),
	}
}

// luminanceSamples flattens the image to a slice of [0,255] luminance
// values, the input stat.Mean/stat.StdDev expect.
func luminanceSamples(img *image.RGBA) []float64 {
	b := img.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, float64(luminance(img.RGBAAt(x, y))))
		}
	}
	return out
}

// edgeVariance is the variance of the horizontal luminance gradient, a
// standard low-cost sharpness proxy: a blurred image has a small,
// tightly clustered gradient distribution, a sharp one a wide one.
func edgeVariance(img *image.RGBA) float64 {
	b := img.Bounds()
	if b.Dx() < 2 {
		return 0
	}
	grads := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		prev := luminance(img.RGBAAt(b.Min.X, y))
		for x := b.Min.X + 1; x < b.Max.X; x++ {
			cur := luminance(img.RGBAAt(x, y))
			grads = append(grads, float64(cur-prev))
			prev = cur
		}
	}
	if len(grads) == 0 {
		return 0
	}
	return stat.Variance(grads, nil)
}

// normalizeSharpness maps an unbounded edge-variance reading to [0,1]
// using a fixed reference ceiling tuned against typical broadcast
// photography (busy scenes rarely exceed this before clipping washes
// out further gain).
func normalizeSharpness(v float64) float64 {
	const ceiling = 4000.0
	return clampUnit(v / ceiling)
}

// normalizeContrast maps luminance standard deviation to [0,1]. The
// theoretical maximum stddev for 8-bit luminance is 127.5 (half-black,
// half-white).
func normalizeContrast(sd float64) float64 {
	return clampUnit(sd / 127.5)
}

// normalizeBrightness maps mean luminance to [0,1] where 0.5 is a
// midtone-balanced image and both extremes represent clipping.
func normalizeBrightness(mean float64) float64 {
	return clampUnit(mean / 255.0)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
