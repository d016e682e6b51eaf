package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlideValidateRejectsEmptyBytes(t *testing.T) {
	s := Slide{}
	err := s.Validate(1000, 320, 240)
	assert.NotNil(t, err)
	assert.Equal(t, KindInvalidInput, err.Kind)
}

func TestSlideValidateRejectsOversizedBytes(t *testing.T) {
	s := Slide{TranscodedBytes: make([]byte, 2000)}
	err := s.Validate(1000, 0, 0)
	assert.NotNil(t, err)
	assert.Equal(t, KindTooLarge, err.Kind)
}

func TestSlideValidateRejectsOversizedDimensions(t *testing.T) {
	s := Slide{TranscodedBytes: []byte{1}, Width: 640, Height: 100}
	err := s.Validate(0, 320, 240)
	assert.NotNil(t, err)
}

func TestSlideValidateAcceptsWithinBudget(t *testing.T) {
	s := Slide{TranscodedBytes: []byte{1, 2, 3}, Width: 320, Height: 240}
	assert.Nil(t, s.Validate(1000, 320, 240))
}

func TestSlideCloneCopiesBytesIndependently(t *testing.T) {
	s := Slide{TranscodedBytes: []byte{1, 2, 3}}
	cp := s.Clone()
	cp.TranscodedBytes[0] = 99
	assert.Equal(t, byte(1), s.TranscodedBytes[0])
}

func TestImageFormatStringAndMime(t *testing.T) {
	assert.Equal(t, "JPEG", FormatJPEG.String())
	assert.Equal(t, "image/jpeg", FormatJPEG.MimeType())
	assert.Equal(t, "Unknown", FormatUnknown.String())
	assert.Equal(t, "application/octet-stream", FormatUnknown.MimeType())
}
