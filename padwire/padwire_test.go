package padwire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sekz/ODR-PadEnc/model"
)

func TestImageSubTypeForJPEGAndPNG(t *testing.T) {
	sub, ok := ImageSubTypeFor(model.FormatJPEG)
	assert.True(t, ok)
	assert.Equal(t, MOTImageJPEG, sub)

	sub, ok = ImageSubTypeFor(model.FormatPNG)
	assert.True(t, ok)
	assert.Equal(t, MOTImagePNG, sub)
}

func TestImageSubTypeForUnsupportedFormats(t *testing.T) {
	for _, f := range []model.ImageFormat{model.FormatWebP, model.FormatHEIF, model.FormatUnknown} {
		_, ok := ImageSubTypeFor(f)
		assert.False(t, ok)
	}
}

func TestChecksumIsDeterministic(t *testing.T) {
	data := []byte("hello dab")
	assert.Equal(t, Checksum(data), Checksum(append([]byte(nil), data...)))
}

func TestChecksumDiffersForDifferentPayloads(t *testing.T) {
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
