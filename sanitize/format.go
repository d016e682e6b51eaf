package sanitize

import (
	"bytes"

	"github.com/sekz/ODR-PadEnc/model"
)

// DetectFormat implements the magic-byte format detection of spec.md
// §4.2 step 2. Extension is deliberately not consulted here: it is
// advisory only, per the spec.
func DetectFormat(data []byte) model.ImageFormat {
	switch {
	case isJPEG(data):
		return model.FormatJPEG
	case isPNG(data):
		return model.FormatPNG
	case isWebP(data):
		return model.FormatWebP
	case isHEIF(data):
		return model.FormatHEIF
	default:
		return model.FormatUnknown
	}
}

func isJPEG(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) &&
		bytes.HasSuffix(data, []byte{0xFF, 0xD9})
}

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngMagic)
}

func isWebP(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	return bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

var heifBrands = map[string]bool{
	"heic": true, "heix": true, "hevc": true, "hevx": true, "mif1": true,
}

func isHEIF(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	if string(data[4:8]) != "ftyp" {
		return false
	}
	return heifBrands[string(data[8:12])]
}
