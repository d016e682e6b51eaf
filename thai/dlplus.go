package thai

// DLPlusContentType classifies caption metadata the way DAB's DL Plus
// standard does, adapted from the teacher's own DlPlusContentType enum
// (edisplitter.go) — which itself mirrors enhanced_mot.cpp's content
// categorization. Wired per SPEC_FULL.md §4: a caption may carry
// Metadata["dlplus_type"] set to one of these names; the queue's default
// score adds a fixed boost for urgent types (see IsUrgent), in every
// context, so an InfoAlarm-tagged caption beats an otherwise equal
// untagged or ItemTitle one.
type DLPlusContentType uint8

const (
	DLPlusDummy DLPlusContentType = iota
	DLPlusItemTitle
	DLPlusItemArtist
	DLPlusItemAlbum
	DLPlusInfoNews
	DLPlusInfoNewsLocal
	DLPlusInfoWeather
	DLPlusInfoTraffic
	DLPlusInfoAlarm
	DLPlusInfoSport
	DLPlusStationNameShort
	DLPlusStationNameLong
	DLPlusProgrammeNow
	DLPlusProgrammeNext
)

var dlPlusContentTypeNames = []string{
	"DUMMY", "ITEM_TITLE", "ITEM_ARTIST", "ITEM_ALBUM",
	"INFO_NEWS", "INFO_NEWS_LOCAL", "INFO_WEATHER", "INFO_TRAFFIC",
	"INFO_ALARM", "INFO_SPORT", "STATIONNAME_SHORT", "STATIONNAME_LONG",
	"PROGRAMME_NOW", "PROGRAMME_NEXT",
}

func (t DLPlusContentType) String() string {
	if int(t) < len(dlPlusContentTypeNames) {
		return dlPlusContentTypeNames[t]
	}
	return "UNKNOWN"
}

// ParseDLPlusContentType reverses String, for reading back
// Caption.Metadata[MetadataKey]. ok is false for an unrecognized name.
func ParseDLPlusContentType(name string) (t DLPlusContentType, ok bool) {
	for i, n := range dlPlusContentTypeNames {
		if n == name {
			return DLPlusContentType(i), true
		}
	}
	return DLPlusDummy, false
}

// MetadataKey is the Caption.Metadata key the queue's scoring looks for.
const MetadataKey = "dlplus_type"

// IsUrgent reports whether a DL Plus content type should be treated as
// deserving priority ahead of equally-scored ordinary content — alarms
// and traffic incidents, mirroring how the original firmware's slideshow
// categorizer flagged MOT_SLS_HEADER_PARAM_ALERT.
func (t DLPlusContentType) IsUrgent() bool {
	return t == DLPlusInfoAlarm || t == DLPlusInfoTraffic
}
