package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathValidatorRejectsTraversal(t *testing.T) {
	v := NewPathValidator([]string{"/srv/media"}, true)
	assert.False(t, v.IsSafe("/srv/media/../../etc/passwd"))
	assert.False(t, v.IsSafe("../secret"))
	assert.False(t, v.IsSafe("~/private"))
	assert.False(t, v.IsSafe("/srv/media//double"))
}

func TestPathValidatorRejectsPercentEncodedTraversal(t *testing.T) {
	v := NewPathValidator([]string{"/srv/media"}, true)
	assert.False(t, v.IsSafe("/srv/media/%2e%2e/passwd"))
	assert.False(t, v.IsSafe("/srv/media/%2fescape"))
}

func TestPathValidatorRejectsNulByte(t *testing.T) {
	v := NewPathValidator([]string{"/srv/media"}, true)
	assert.False(t, v.IsSafe("/srv/media/file\x00.jpg"))
}

func TestPathValidatorAcceptsWithinAllowRoot(t *testing.T) {
	v := NewPathValidator([]string{"/srv/media"}, true)
	assert.True(t, v.IsSafe("/srv/media/slides/a.jpg"))
}

func TestPathValidatorRejectsPrefixCollisionOnPartialComponent(t *testing.T) {
	v := NewPathValidator([]string{"/srv/media"}, true)
	assert.False(t, v.IsSafe("/srv/media-evil/a.jpg"))
}

func TestPathValidatorStrictModeRejectsWithoutRoots(t *testing.T) {
	v := NewPathValidator(nil, true)
	assert.False(t, v.IsSafe("/anything"))
}

func TestPathValidatorNonStrictModeAllowsWithoutRoots(t *testing.T) {
	v := NewPathValidator(nil, false)
	assert.True(t, v.IsSafe("/anything"))
}

func TestPathValidatorAddAllowedDirectory(t *testing.T) {
	v := NewPathValidator([]string{"/srv/media"}, true)
	assert.False(t, v.IsSafe("/opt/slides/a.jpg"))
	v.AddAllowedDirectory("/opt/slides")
	assert.True(t, v.IsSafe("/opt/slides/a.jpg"))
}
