package wizard

import "github.com/chaiwat/seminarhub/internal/domain/registration"

// DraftStore is the mutable wizard state for a single session. Not safe for
// concurrent use: one session owns it exclusively.
type DraftStore struct {
	step      Step
	draft     registration.Draft
	errors    ErrorMap
	submitted bool
	locale    string
}

func NewDraftStore(locale string) *DraftStore {
	return &DraftStore{
		step:   StepPersonal,
		errors: ErrorMap{},
		locale: locale,
	}
}

func (s *DraftStore) Step() Step                    { return s.step }
func (s *DraftStore) Draft() registration.Draft     { return s.draft }
func (s *DraftStore) Errors() ErrorMap              { return s.errors }
func (s *DraftStore) Submitted() bool               { return s.submitted }
func (s *DraftStore) MarkSubmitted()                { s.submitted = true }

// clearError drops just the edited field's error; the rest of the map keeps
// showing inline until the next full validation.
func (s *DraftStore) clearError(fields ...string) {
	for _, f := range fields {
		delete(s.errors, f)
	}
}

func (s *DraftStore) SetFirstName(v string) { s.draft.FirstName = v; s.clearError(FieldFirstName) }
func (s *DraftStore) SetLastName(v string)  { s.draft.LastName = v; s.clearError(FieldLastName) }
func (s *DraftStore) SetEmail(v string)     { s.draft.Email = v; s.clearError(FieldEmail) }
func (s *DraftStore) SetPhone(v string)     { s.draft.Phone = v; s.clearError(FieldPhone) }
func (s *DraftStore) SetOrgName(v string)   { s.draft.OrgName = v; s.clearError(FieldOrgName) }

func (s *DraftStore) SetOrgType(c registration.Choice) {
	s.draft.SetOrgType(c)
	s.clearError(FieldOrgType, FieldOrgTypeOther)
}

func (s *DraftStore) SetLocationType(t registration.LocationType) {
	s.draft.SetLocationType(t)
	s.clearError(FieldLocationType, FieldDistrictID, FieldProvinceID)
}

func (s *DraftStore) SetDistrictID(id int) {
	s.draft.DistrictID = id
	s.clearError(FieldDistrictID)
}

func (s *DraftStore) SetProvinceID(id int) {
	s.draft.ProvinceID = id
	s.clearError(FieldProvinceID)
}

func (s *DraftStore) SetTransport(t registration.TransportType) {
	s.draft.SetTransport(t)
	s.clearError(
		FieldTransport,
		FieldPublicSubType, FieldPublicSubTypeOther,
		FieldPrivateVehicle, FieldPrivateVehicleOther,
		FieldFuelType, FieldFuelTypeOther,
		FieldPassengerType,
	)
}

func (s *DraftStore) SetPublicSubType(c registration.Choice) {
	s.draft.PublicSubType = c
	s.clearError(FieldPublicSubType, FieldPublicSubTypeOther)
}

func (s *DraftStore) SetPrivateVehicle(c registration.Choice) {
	s.draft.PrivateVehicle = c
	s.clearError(FieldPrivateVehicle, FieldPrivateVehicleOther)
}

func (s *DraftStore) SetFuelType(c registration.Choice) {
	s.draft.FuelType = c
	s.clearError(FieldFuelType, FieldFuelTypeOther)
}

func (s *DraftStore) SetPassengerType(t registration.PassengerType) {
	s.draft.PassengerType = t
	s.clearError(FieldPassengerType)
}

func (s *DraftStore) SetAttendance(t registration.AttendanceType) {
	s.draft.SetAttendance(t)
	s.clearError(FieldAttendance, FieldSelectedRoomID)
}

func (s *DraftStore) SetSelectedRoomID(id int) {
	s.draft.SelectedRoomID = id
	s.clearError(FieldSelectedRoomID)
}

func (s *DraftStore) SetConsent(v bool) {
	s.draft.Consent = v
	s.clearError(FieldConsent)
}

// Next revalidates the current step and advances when clean. The full map is
// replaced either way, so stale inline errors never outlive a step change.
func (s *DraftStore) Next(opts Options) bool {
	errs := ValidateStep(s.step, s.draft, s.locale, opts)
	s.errors = errs

	if !errs.IsValid() {
		return false
	}

	if s.step < StepConfirmation {
		s.step++
	}

	return true
}

func (s *DraftStore) Back() {
	if s.step > StepPersonal {
		s.step--
	}
}
