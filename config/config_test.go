package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsZeroCapacity(t *testing.T) {
	cfg := Default()
	cfg.CarouselCapacity = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingFormat(t *testing.T) {
	cfg := Default()
	cfg.CarouselFormat = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUndersizedByteBudget(t *testing.T) {
	cfg := Default()
	cfg.CarouselMaxBytes = 100
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyStringInAllowRoots(t *testing.T) {
	cfg := Default()
	cfg.PathsAllowRoots = []string{""}
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsPopulatedAllowRoots(t *testing.T) {
	cfg := Default()
	cfg.PathsAllowRoots = []string{"/srv/slides"}
	assert.NoError(t, cfg.Validate())
}

func TestFromViperWithNilViperReturnsDefaults(t *testing.T) {
	cfg, err := FromViper(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromViperOverlaysConfiguredKeys(t *testing.T) {
	v := viper.New()
	v.Set("carousel.capacity", 99)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.CarouselCapacity)
}
