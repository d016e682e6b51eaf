package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesSameKindIgnoringDetail(t *testing.T) {
	a := NewError(KindNotFound, "slide xyz missing")
	assert.True(t, errors.Is(a, NotFound))
	assert.False(t, errors.Is(a, Duplicate))
}

func TestErrorUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("boom")
	e := WrapError(KindDecodeFailed, "jpeg decode failed", cause)
	assert.Equal(t, cause, errors.Unwrap(e))
}

func TestErrorStringIncludesCauseWhenPresent(t *testing.T) {
	cause := errors.New("boom")
	e := WrapError(KindDecodeFailed, "decode failed", cause)
	assert.Contains(t, e.Error(), "boom")
	assert.Contains(t, e.Error(), "decode failed")
}

func TestErrorStringOmitsCauseWhenAbsent(t *testing.T) {
	e := NewError(KindInvalidInput, "bad text")
	assert.NotContains(t, e.Error(), "<nil>")
}

func TestKindStringCoversAllValues(t *testing.T) {
	kinds := []Kind{
		KindNone, KindInvalidInput, KindDuplicate, KindTooLarge, KindBadFormat,
		KindUnsafeContent, KindPathUnsafe, KindExpired, KindDecodeFailed, KindNotFound,
	}
	for _, k := range kinds {
		assert.NotEmpty(t, k.String())
	}
}
