package carousel

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // decode format registration

	"github.com/sekz/ODR-PadEnc/model"
)

// Decoder decodes raw bytes of a detected format into an image.Image.
// The standard library covers JPEG and PNG; no repository in the
// example pack imports a third-party image codec (see SPEC_FULL.md §3),
// so WebP/HEIF sources are decoded only if a caller injects a Decoder
// for them via WithDecoder — otherwise ingest reports DecodeFailed.
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

type stdlibDecoder struct{}

func (stdlibDecoder) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// downscalePreserveAspect resizes img so max(w,h) <= maxW,maxH while
// preserving aspect ratio, per spec.md §4.2 step 4. Uses simple
// nearest-neighbor sampling: no third-party resize library appears
// anywhere in the example pack (see SPEC_FULL.md §3), and DAB slideshow
// budgets are small enough that resample quality is dominated by JPEG
// quantization, not the interpolation kernel.
func downscalePreserveAspect(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scale := float64(maxW) / float64(w)
	if hs := float64(maxH) / float64(h); hs < scale {
		scale = hs
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, newW, newH))
	for y := 0; y < newH; y++ {
		srcY := b.Min.Y + y*h/newH
		for x := 0; x < newW; x++ {
			srcX := b.Min.X + x*w/newW
			out.Set(x, y, img.At(srcX, srcY))
		}
	}
	return out
}

// applyBroadcastProfile applies the mild sharpen + histogram normalize
// step of spec.md §4.2 step 4. sRGB/8-bit depth is already the implicit
// color model of image.RGBA, so this function's job is the sharpen and
// normalize passes only.
func applyBroadcastProfile(img image.Image) *image.RGBA {
	rgba := toRGBA(img)
	normalizeHistogram(rgba)
	return sharpen(rgba)
}

func toRGBA(img image.Image) *image.RGBA {
	if r, ok := img.(*image.RGBA); ok {
		return r
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// normalizeHistogram stretches the luminance histogram so the darkest
// pixel maps near 0 and the brightest near 255, a coarse stand-in for
// the reference implementation's histogram-equalization pass.
func normalizeHistogram(img *image.RGBA) {
	b := img.Bounds()
	minL, maxL := 255, 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			l := luminance(img.RGBAAt(x, y))
			if l < minL {
				minL = l
			}
			if l > maxL {
				maxL = l
			}
		}
	}
	spread := maxL - minL
	if spread <= 0 {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: stretch(c.R, minL, spread),
				G: stretch(c.G, minL, spread),
				B: stretch(c.B, minL, spread),
				A: c.A,
			})
		}
	}
}

func stretch(v uint8, min, spread int) uint8 {
	nv := (int(v) - min) * 255 / spread
	if nv < 0 {
		nv = 0
	}
	if nv > 255 {
		nv = 255
	}
	return uint8(nv)
}

func luminance(c color.RGBA) int {
	return (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
}

// sharpen applies a mild unsharp-mask style 3x3 convolution.
func sharpen(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	kernel := [3][3]int{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x == b.Min.X || y == b.Min.Y || x == b.Max.X-1 || y == b.Max.Y-1 {
				out.Set(x, y, img.At(x, y))
				continue
			}
			var r, g, bl int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					c := img.RGBAAt(x+kx, y+ky)
					wgt := kernel[ky+1][kx+1]
					r += int(c.R) * wgt
					g += int(c.G) * wgt
					bl += int(c.B) * wgt
				}
			}
			orig := img.RGBAAt(x, y)
			out.SetRGBA(x, y, color.RGBA{R: clamp8(r), G: clamp8(g), B: clamp8(bl), A: orig.A})
		}
	}
	return out
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// qualityLevels are the JPEG quality steps tried in order by
// encodeAtQuality, per spec.md §4.2 step 4.
var qualityLevels = []int{95, 85, 75, 65, 55, 50}

// encodeAtQuality tries each level in qualityLevels and returns the
// first encoding that fits within maxBytes. If none fit, it reports
// model.TooLarge — the slide is rejected rather than exceeding the
// carousel's byte budget.
func encodeAtQuality(img image.Image, maxBytes int) ([]byte, int, *model.Error) {
	for _, q := range qualityLevels {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			continue
		}
		if buf.Len() <= maxBytes {
			return buf.Bytes(), q, nil
		}
	}
	return nil, 0, model.NewError(model.KindTooLarge, "no quality level fits carousel byte budget")
}
