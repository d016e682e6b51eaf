package thai

import "time"

// HolyDayStatus is a tri-state answer to "is this a Buddhist holy day".
// spec.md §9 (Open Questions) is explicit that Unknown is a legitimate
// third state, not a synonym for false: the fixed-table implementation
// here has no lunar calculation, so any date it cannot resolve from the
// table returns Unknown rather than a false negative.
type HolyDayStatus uint8

const (
	HolyDayUnknown HolyDayStatus = iota
	HolyDayYes
	HolyDayNo
)

// CEtoBE and BEtoCE implement the fixed BE = CE + 543 relationship.
func CEtoBE(ceYear int) int { return ceYear + 543 }
func BEtoCE(beYear int) int { return beYear - 543 }

// BuddhistDate mirrors BuddhistDate in thai_rendering.h.
type BuddhistDate struct {
	YearBE            int
	YearCE            int
	Month             int
	Day               int
	ThaiMonthName     string
	ThaiDayName       string
	IsHolyDay         HolyDayStatus
	IsNationalHoliday bool
	EventThai         string
	EventEnglish      string
}

var thaiMonthNames = []string{
	"", "มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiDayNames = []string{
	"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์",
}

// MonthName returns the Thai name for a 1-12 month index.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return thaiMonthNames[month]
}

// DayName returns the Thai name for t's weekday.
func DayName(t time.Time) string {
	return thaiDayNames[int(t.Weekday())]
}

type fixedHoliday struct {
	month, day int
	nameThai   string
	nameEn     string
}

// nationalHolidays is the static table spec.md §4.3 calls for: fixed
// Thai national holidays keyed by (month, day). Grounded on
// BuddhistCalendar::GetNationalHolidays.
var nationalHolidays = []fixedHoliday{
	{1, 1, "วันขึ้นปีใหม่", "New Year's Day"},
	{4, 6, "วันจักรี", "Chakri Memorial Day"},
	{4, 13, "วันสงกรานต์", "Songkran Festival"},
	{5, 1, "วันแรงงานแห่งชาติ", "National Labour Day"},
	{7, 28, "วันเฉลิมพระชนมพรรษา ร.10", "King's Birthday"},
	{8, 12, "วันแม่แห่งชาติ", "Mother's Day"},
	{10, 13, "วันคล้ายวันสวรรคต ร.9", "Memorial Day of King Bhumibol"},
	{12, 5, "วันพ่อแห่งชาติ", "Father's Day"},
	{12, 10, "วันรัฐธรรมนูญ", "Constitution Day"},
	{12, 31, "วันสิ้นปี", "New Year's Eve"},
}

// GetBuddhistDate resolves the fixed-table metadata for t.
func GetBuddhistDate(t time.Time) BuddhistDate {
	bd := BuddhistDate{
		YearCE:        t.Year(),
		YearBE:        CEtoBE(t.Year()),
		Month:         int(t.Month()),
		Day:           t.Day(),
		ThaiMonthName: MonthName(int(t.Month())),
		ThaiDayName:   DayName(t),
		IsHolyDay:     IsHolyDayFixedTable(int(t.Month()), t.Day()),
	}
	for _, h := range nationalHolidays {
		if h.month == bd.Month && h.day == bd.Day {
			bd.IsNationalHoliday = true
			bd.EventThai = h.nameThai
			bd.EventEnglish = h.nameEn
			break
		}
	}
	return bd
}

// GetNationalHolidays returns every fixed holiday in yearBE.
func GetNationalHolidays(yearBE int) []BuddhistDate {
	out := make([]BuddhistDate, 0, len(nationalHolidays))
	yearCE := BEtoCE(yearBE)
	for _, h := range nationalHolidays {
		out = append(out, BuddhistDate{
			YearBE: yearBE, YearCE: yearCE, Month: h.month, Day: h.day,
			ThaiMonthName: MonthName(h.month), IsNationalHoliday: true,
			EventThai: h.nameThai, EventEnglish: h.nameEn,
		})
	}
	return out
}

// IsHolyDayFixedTable returns HolyDayUnknown for every date: the fixed
// table this implementation carries has no lunar Buddhist holy-day
// entries (true lunar computation is out of scope per spec.md §9's open
// question), so callers must not treat this as "not a holy day" — treat
// it as "cannot determine." A production deployment that adds a lunar
// calculation would replace this function; the tri-state boundary is
// preserved so it can do so without a silent behavior change for dates
// it still can't resolve.
func IsHolyDayFixedTable(month, day int) HolyDayStatus {
	return HolyDayUnknown
}

// animalYears is the 12-year cycle used by AnimalYear, recovered from
// BuddhistCalendar::GetAnimalYear (SPEC_FULL.md §4 supplemented feature).
var animalYears = []string{
	"ชวด (หนู)", "ฉลู (วัว)", "ขาล (เสือ)", "เถาะ (กระต่าย)",
	"มะโรง (งูใหญ่)", "มะเส็ง (งูเล็ก)", "มะเมีย (ม้า)", "มะแม (แพะ)",
	"วอก (ลิง)", "ระกา (ไก่)", "จอ (หมา)", "กุน (หมู)",
}

// AnimalYear returns the Thai zodiac animal name for a Buddhist Era year.
// Purely cosmetic metadata; never consulted by any selection decision.
func AnimalYear(yearBE int) string {
	idx := (((yearBE + 5) % 12) + 12) % 12 // BE 2563 (CE 2020) is a Rat year
	return animalYears[idx]
}
