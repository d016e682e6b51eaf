// Package padwire supplies the small set of wire-level constants and
// checksums the core must get right per spec.md §6 ("Wire-level
// contracts the core must produce correctly"), without performing the
// PAD bit-packing or ensemble multiplexing that spec.md §1 places out of
// scope. Adapted from the teacher's MotContentType/MotContentSubTypeImage
// enums (edisplitter.go) — there used to classify incoming MOT objects
// while splitting an EDI stream, here used to tag outgoing Slide objects
// with the content-type/subtype values the emitter needs to build a
// correct ETSI TS 101 499 MOT header — and its crc16 usage, which
// verified frame checksums on the receive side and here computes them on
// the send side for the same wire format.
package padwire

import (
	"github.com/howeyc/crc16"

	"github.com/sekz/ODR-PadEnc/model"
)

// MOTContentType mirrors MotContentType in edisplitter.go: the ETSI TS
// 101 756 top-level content classification a MOT object carries.
type MOTContentType uint8

const (
	MOTContentGeneralData MOTContentType = 0
	MOTContentText        MOTContentType = 1
	MOTContentImage       MOTContentType = 2
	MOTContentAudio       MOTContentType = 3
	MOTContentVideo       MOTContentType = 4
	MOTContentTransport   MOTContentType = 5
	MOTContentSystem      MOTContentType = 6
	MOTContentApplication MOTContentType = 7
	MOTContentProprietary MOTContentType = 8
)

// MOTImageSubType mirrors MotContentSubTypeImage: the subtype byte used
// when MOTContentType == MOTContentImage.
type MOTImageSubType uint16

const (
	MOTImageGIF  MOTImageSubType = 0
	MOTImageJPEG MOTImageSubType = 1
	MOTImageBMP  MOTImageSubType = 2
	MOTImagePNG  MOTImageSubType = 3
)

// ImageSubTypeFor maps a detected model.ImageFormat to the MOT subtype
// byte the emitter needs. WebP/HEIF have no ETSI TS 101 499 subtype
// assignment, so for them (and for FormatUnknown) this function returns
// ok=false.
func ImageSubTypeFor(format model.ImageFormat) (sub MOTImageSubType, ok bool) {
	switch format {
	case model.FormatJPEG:
		return MOTImageJPEG, true
	case model.FormatPNG:
		return MOTImagePNG, true
	default:
		return 0, false
	}
}

// Checksum computes the CRC16-CCITT-FALSE checksum spec.md's underlying
// wire formats use for frame integrity — the same algorithm and library
// the teacher uses to validate every AF, FIB, and data-group frame it
// receives, applied here on the send side so an emitter assembling a
// DAB frame around the core's bytes can verify nothing was corrupted in
// between.
func Checksum(data []byte) uint16 {
	return crc16.ChecksumCCITTFalse(data)
}
