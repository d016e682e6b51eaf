package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCaptionValidateRejectsBlankText(t *testing.T) {
	c := Caption{Text: "   ", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
	err := c.Validate()
	assert.NotNil(t, err)
	assert.Equal(t, KindInvalidInput, err.Kind)
}

func TestCaptionValidateRejectsExpiryBeforeCreation(t *testing.T) {
	now := time.Now()
	c := Caption{Text: "hi", CreatedAt: now, ExpiresAt: now.Add(-time.Minute)}
	err := c.Validate()
	assert.NotNil(t, err)
	assert.Equal(t, KindExpired, err.Kind)
}

func TestCaptionValidateRejectsNegativeSendCount(t *testing.T) {
	now := time.Now()
	c := Caption{Text: "hi", CreatedAt: now, ExpiresAt: now.Add(time.Hour), SendCount: -1}
	err := c.Validate()
	assert.NotNil(t, err)
}

func TestCaptionValidateRejectsImportanceOutOfRange(t *testing.T) {
	now := time.Now()
	c := Caption{Text: "hi", CreatedAt: now, ExpiresAt: now.Add(time.Hour), Importance: 1.5}
	err := c.Validate()
	assert.NotNil(t, err)
}

func TestCaptionValidateAcceptsWellFormed(t *testing.T) {
	now := time.Now()
	c := Caption{Text: "hi", CreatedAt: now, ExpiresAt: now.Add(time.Hour), Importance: 0.5}
	assert.Nil(t, c.Validate())
}

func TestCaptionCloneCopiesMetadataIndependently(t *testing.T) {
	c := Caption{Text: "hi", Metadata: map[string]string{"k": "v"}}
	cp := c.Clone()
	cp.Metadata["k"] = "changed"
	assert.Equal(t, "v", c.Metadata["k"])
	assert.Equal(t, "changed", cp.Metadata["k"])
}

func TestCaptionCloneWithNilMetadata(t *testing.T) {
	c := Caption{Text: "hi"}
	cp := c.Clone()
	assert.Nil(t, cp.Metadata)
}
