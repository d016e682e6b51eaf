package thai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDLPlusContentTypeStringCoversAllValues(t *testing.T) {
	for i, name := range dlPlusContentTypeNames {
		assert.Equal(t, name, DLPlusContentType(i).String())
	}
}

func TestDLPlusContentTypeStringUnknownForOutOfRange(t *testing.T) {
	assert.Equal(t, "UNKNOWN", DLPlusContentType(255).String())
}

func TestParseDLPlusContentTypeRoundTrips(t *testing.T) {
	for i, name := range dlPlusContentTypeNames {
		got, ok := ParseDLPlusContentType(name)
		assert.True(t, ok)
		assert.Equal(t, DLPlusContentType(i), got)
	}
}

func TestParseDLPlusContentTypeRejectsUnknownName(t *testing.T) {
	_, ok := ParseDLPlusContentType("NOT_A_REAL_TYPE")
	assert.False(t, ok)

	_, ok = ParseDLPlusContentType("")
	assert.False(t, ok)
}

func TestIsUrgentOnlyForAlarmAndTraffic(t *testing.T) {
	assert.True(t, DLPlusInfoAlarm.IsUrgent())
	assert.True(t, DLPlusInfoTraffic.IsUrgent())

	nonUrgent := []DLPlusContentType{
		DLPlusDummy, DLPlusItemTitle, DLPlusItemArtist, DLPlusItemAlbum,
		DLPlusInfoNews, DLPlusInfoNewsLocal, DLPlusInfoWeather, DLPlusInfoSport,
		DLPlusStationNameShort, DLPlusStationNameLong, DLPlusProgrammeNow, DLPlusProgrammeNext,
	}
	for _, t2 := range nonUrgent {
		assert.False(t, t2.IsUrgent(), "%s should not be urgent", t2)
	}
}
