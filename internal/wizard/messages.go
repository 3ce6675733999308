package wizard

import "github.com/chaiwat/seminarhub/internal/labels"

const (
	msgRequired      = "required"
	msgInvalidEmail  = "invalid_email"
	msgInvalidPhone  = "invalid_phone"
	msgDuplicateName = "duplicate_name"
	msgConsent       = "consent"
)

var fieldMessages = map[string]map[string]map[string]string{
	labels.LocaleTH: {
		msgRequired: {
			FieldFirstName:           "กรุณากรอกชื่อ",
			FieldLastName:            "กรุณากรอกนามสกุล",
			FieldEmail:               "กรุณากรอกอีเมล",
			FieldPhone:               "กรุณากรอกหมายเลขโทรศัพท์",
			FieldOrgName:             "กรุณากรอกชื่อหน่วยงาน",
			FieldOrgType:             "กรุณาเลือกประเภทหน่วยงาน",
			FieldOrgTypeOther:        "กรุณาระบุประเภทหน่วยงาน",
			FieldLocationType:        "กรุณาเลือกพื้นที่",
			FieldDistrictID:          "กรุณาเลือกเขต",
			FieldProvinceID:          "กรุณาเลือกจังหวัด",
			FieldTransport:           "กรุณาเลือกวิธีการเดินทาง",
			FieldPublicSubType:       "กรุณาเลือกประเภทขนส่งสาธารณะ",
			FieldPublicSubTypeOther:  "กรุณาระบุประเภทขนส่งสาธารณะ",
			FieldPrivateVehicle:      "กรุณาเลือกประเภทพาหนะ",
			FieldPrivateVehicleOther: "กรุณาระบุประเภทพาหนะ",
			FieldFuelType:            "กรุณาเลือกประเภทเชื้อเพลิง",
			FieldFuelTypeOther:       "กรุณาระบุประเภทเชื้อเพลิง",
			FieldPassengerType:       "กรุณาเลือกสถานะผู้เดินทาง",
			FieldAttendance:          "กรุณาเลือกช่วงเวลาเข้าร่วม",
			FieldSelectedRoomID:      "กรุณาเลือกห้องสัมมนา",
		},
	},
	labels.LocaleEN: {
		msgRequired: {
			FieldFirstName:           "First name is required",
			FieldLastName:            "Last name is required",
			FieldEmail:               "Email is required",
			FieldPhone:               "Phone number is required",
			FieldOrgName:             "Organization name is required",
			FieldOrgType:             "Organization type is required",
			FieldOrgTypeOther:        "Please specify the organization type",
			FieldLocationType:        "Location is required",
			FieldDistrictID:          "District is required",
			FieldProvinceID:          "Province is required",
			FieldTransport:           "Transportation is required",
			FieldPublicSubType:       "Public transport type is required",
			FieldPublicSubTypeOther:  "Please specify the public transport type",
			FieldPrivateVehicle:      "Vehicle type is required",
			FieldPrivateVehicleOther: "Please specify the vehicle type",
			FieldFuelType:            "Fuel type is required",
			FieldFuelTypeOther:       "Please specify the fuel type",
			FieldPassengerType:       "Traveler role is required",
			FieldAttendance:          "Attendance period is required",
			FieldSelectedRoomID:      "Please select a seminar room",
		},
	},
}

var specialMessages = map[string]map[string]string{
	labels.LocaleTH: {
		msgInvalidEmail:  "รูปแบบอีเมลไม่ถูกต้อง",
		msgInvalidPhone:  "หมายเลขโทรศัพท์ไม่ถูกต้อง",
		msgDuplicateName: "ชื่อ-นามสกุลนี้ได้ลงทะเบียนแล้ว",
		msgConsent:       "กรุณายอมรับเงื่อนไขก่อนยืนยันการลงทะเบียน",
	},
	labels.LocaleEN: {
		msgInvalidEmail:  "Email address is not valid",
		msgInvalidPhone:  "Phone number is not valid",
		msgDuplicateName: "This name has already been registered",
		msgConsent:       "Please accept the terms before confirming",
	},
}

func requiredMsg(locale, field string) string {
	return fieldMessages[labels.Normalize(locale)][msgRequired][field]
}

func specialMsg(locale, key string) string {
	return specialMessages[labels.Normalize(locale)][key]
}
