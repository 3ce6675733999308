// Package labels maps coded catalog values to display strings per locale.
// Pure lookup tables: unknown codes resolve to "" rather than an error, and
// the reserved "other" id substitutes the registrant's own free text.
package labels

import (
	"strings"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
)

const (
	LocaleTH = "th"
	LocaleEN = "en"
)

// Normalize collapses anything unknown onto the default locale.
func Normalize(locale string) string {
	if strings.ToLower(locale) == LocaleEN {
		return LocaleEN
	}

	return LocaleTH
}

var genericOther = map[string]string{
	LocaleTH: "อื่นๆ",
	LocaleEN: "Other",
}

var transportLabels = map[string]map[string]string{
	LocaleTH: {
		"public":  "ขนส่งสาธารณะ",
		"private": "พาหนะส่วนตัว",
		"walking": "เดินเท้า",
	},
	LocaleEN: {
		"public":  "Public transport",
		"private": "Private vehicle",
		"walking": "Walking",
	},
}

var publicSubTypeLabels = map[string]map[string]string{
	LocaleTH: {
		"bts":   "รถไฟฟ้า BTS",
		"mrt":   "รถไฟฟ้าใต้ดิน MRT",
		"bus":   "รถโดยสารประจำทาง",
		"train": "รถไฟ",
		"boat":  "เรือโดยสาร",
	},
	LocaleEN: {
		"bts":   "BTS Skytrain",
		"mrt":   "MRT Subway",
		"bus":   "Bus",
		"train": "Train",
		"boat":  "Boat",
	},
}

var privateVehicleLabels = map[string]map[string]string{
	LocaleTH: {
		"car":        "รถยนต์",
		"motorcycle": "รถจักรยานยนต์",
		"van":        "รถตู้",
	},
	LocaleEN: {
		"car":        "Car",
		"motorcycle": "Motorcycle",
		"van":        "Van",
	},
}

var fuelTypeLabels = map[string]map[string]string{
	LocaleTH: {
		"gasoline": "น้ำมันเบนซิน",
		"diesel":   "น้ำมันดีเซล",
		"hybrid":   "ไฮบริด",
		"electric": "ไฟฟ้า",
	},
	LocaleEN: {
		"gasoline": "Gasoline",
		"diesel":   "Diesel",
		"hybrid":   "Hybrid",
		"electric": "Electric",
	},
}

var passengerTypeLabels = map[string]map[string]string{
	LocaleTH: {
		"driver":    "ผู้ขับขี่",
		"passenger": "ผู้โดยสาร",
	},
	LocaleEN: {
		"driver":    "Driver",
		"passenger": "Passenger",
	},
}

var locationTypeLabels = map[string]map[string]string{
	LocaleTH: {
		"bangkok":  "กรุงเทพมหานคร",
		"province": "ต่างจังหวัด",
	},
	LocaleEN: {
		"bangkok":  "Bangkok",
		"province": "Other province",
	},
}

var orgTypeLabels = map[string]map[string]string{
	LocaleTH: {
		"government":      "หน่วยงานราชการ",
		"private_company": "บริษัทเอกชน",
		"education":       "สถาบันการศึกษา",
		"ngo":             "องค์กรไม่แสวงหากำไร",
	},
	LocaleEN: {
		"government":      "Government agency",
		"private_company": "Private company",
		"education":       "Educational institution",
		"ngo":             "Non-profit organization",
	},
}

var attendanceLabels = map[string]map[string]string{
	LocaleTH: {
		"morning":   "ช่วงเช้า",
		"afternoon": "ช่วงบ่าย",
		"full_day":  "เต็มวัน",
	},
	LocaleEN: {
		"morning":   "Morning session",
		"afternoon": "Afternoon session",
		"full_day":  "Full day",
	},
}

func lookup(table map[string]map[string]string, locale, code string) string {
	return table[Normalize(locale)][code]
}

// resolveChoice applies the other-sentinel rule shared by every catalog:
// free text when present, the generic localized Other when empty, the table
// label for a known id, and "" for an unknown one.
func resolveChoice(table map[string]map[string]string, locale string, c registration.Choice) string {
	if c.IsOther() {
		if strings.TrimSpace(c.Other) != "" {
			return strings.TrimSpace(c.Other)
		}

		return genericOther[Normalize(locale)]
	}

	return lookup(table, locale, c.ID)
}

func Transport(locale string, t registration.TransportType) string {
	return lookup(transportLabels, locale, string(t))
}

func PublicSubType(locale string, c registration.Choice) string {
	return resolveChoice(publicSubTypeLabels, locale, c)
}

func PrivateVehicle(locale string, c registration.Choice) string {
	return resolveChoice(privateVehicleLabels, locale, c)
}

func FuelType(locale string, c registration.Choice) string {
	return resolveChoice(fuelTypeLabels, locale, c)
}

func PassengerType(locale string, t registration.PassengerType) string {
	return lookup(passengerTypeLabels, locale, string(t))
}

func LocationType(locale string, t registration.LocationType) string {
	return lookup(locationTypeLabels, locale, string(t))
}

func OrgType(locale string, c registration.Choice) string {
	return resolveChoice(orgTypeLabels, locale, c)
}

func Attendance(locale string, t registration.AttendanceType) string {
	return lookup(attendanceLabels, locale, string(t))
}

func GenericOther(locale string) string {
	return genericOther[Normalize(locale)]
}
