package thai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCulturalValidateClean(t *testing.T) {
	a := NewCulturalAnalyzer()
	v := a.Validate("สวัสดีตอนเช้าครับ วันนี้อากาศดี")
	assert.True(t, v.IsAppropriate)
	assert.Equal(t, 1.0, v.SensitivityScore)
	assert.False(t, v.ContainsRoyal)
	assert.False(t, v.ContainsReligious)
}

func TestCulturalValidateInappropriateLowersScore(t *testing.T) {
	a := NewCulturalAnalyzer()
	v := a.Validate("this is shit")
	assert.False(t, v.IsAppropriate)
	assert.InDelta(t, 0.8, v.SensitivityScore, 0.001)
}

func TestCulturalValidateScoreFloorsAtZero(t *testing.T) {
	a := NewCulturalAnalyzer()
	a.AddInappropriate("badword1", "badword2", "badword3", "badword4", "badword5", "badword6")
	v := a.Validate("badword1 badword2 badword3 badword4 badword5 badword6")
	assert.Equal(t, 0.0, v.SensitivityScore)
}

func TestCulturalValidateRoyalReferenceDoesNotBlock(t *testing.T) {
	a := NewCulturalAnalyzer()
	v := a.Validate("ขอเชิญร่วมงานเฉลิมพระเกียรติ พระบาทสมเด็จ")
	assert.True(t, v.IsAppropriate)
	assert.True(t, v.ContainsRoyal)
	assert.NotEmpty(t, v.Suggestions)
}

func TestCulturalValidateNeverMutatesInput(t *testing.T) {
	a := NewCulturalAnalyzer()
	original := "this is shit and more text"
	_ = a.Validate(original)
	assert.Equal(t, "this is shit and more text", original)
}
