package wizard

// ErrorMap maps field name to a human-readable message. An empty map means the
// step is valid. The map backs inline display; First gives the toast message.
type ErrorMap map[string]string

func (m ErrorMap) IsValid() bool { return len(m) == 0 }

// First returns the first error following the step's canonical field order,
// so the toast is stable regardless of map iteration.
func (m ErrorMap) First(step Step) (field, message string, ok bool) {
	for _, f := range stepFieldOrder[step] {
		if msg, found := m[f]; found {
			return f, msg, true
		}
	}

	// fields outside the canonical order still surface
	for f, msg := range m {
		return f, msg, true
	}

	return "", "", false
}

type Step int

const (
	StepPersonal Step = iota
	StepOrganization
	StepAttendance
	StepConfirmation

	stepCount
)

var stepFieldOrder = map[Step][]string{
	StepPersonal: {
		FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
	},
	StepOrganization: {
		FieldOrgName, FieldOrgType, FieldOrgTypeOther,
		FieldLocationType, FieldDistrictID, FieldProvinceID,
		FieldTransport,
		FieldPublicSubType, FieldPublicSubTypeOther,
		FieldPrivateVehicle, FieldPrivateVehicleOther,
		FieldFuelType, FieldFuelTypeOther,
		FieldPassengerType,
	},
	StepAttendance: {
		FieldAttendance, FieldSelectedRoomID,
	},
	StepConfirmation: {
		FieldConsent,
	},
}

const (
	FieldFirstName           = "firstName"
	FieldLastName            = "lastName"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldOrgName             = "orgName"
	FieldOrgType             = "orgType"
	FieldOrgTypeOther        = "orgTypeOther"
	FieldLocationType        = "locationType"
	FieldDistrictID          = "districtId"
	FieldProvinceID          = "provinceId"
	FieldTransport           = "transport"
	FieldPublicSubType       = "publicSubType"
	FieldPublicSubTypeOther  = "publicSubTypeOther"
	FieldPrivateVehicle      = "privateVehicle"
	FieldPrivateVehicleOther = "privateVehicleOther"
	FieldFuelType            = "fuelType"
	FieldFuelTypeOther       = "fuelTypeOther"
	FieldPassengerType       = "passengerType"
	FieldAttendance          = "attendanceType"
	FieldSelectedRoomID      = "selectedRoomId"
	FieldConsent             = "consent"
)
