package wizard_test

import (
	"testing"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/wizard"
)

func TestTransportSwitchClearsBranchFields(t *testing.T) {
	s := wizard.NewDraftStore("en")

	s.SetTransport(registration.TransportPrivate)
	s.SetPrivateVehicle(registration.Choice{ID: "car"})
	s.SetFuelType(registration.Choice{ID: "other", Other: "LPG"})
	s.SetPassengerType(registration.PassengerDriver)

	s.SetTransport(registration.TransportPublic)

	d := s.Draft()

	if !d.PrivateVehicle.IsZero() || !d.FuelType.IsZero() || d.PassengerType != "" {
		t.Fatalf("private fields survived the switch: %+v", d)
	}

	// and back: public fields must not leak either
	s.SetPublicSubType(registration.Choice{ID: "bts"})
	s.SetTransport(registration.TransportPrivate)

	if !s.Draft().PublicSubType.IsZero() {
		t.Fatalf("public sub-type survived the switch: %+v", s.Draft())
	}
}

func TestLocationSwitchClearsIDs(t *testing.T) {
	s := wizard.NewDraftStore("en")

	s.SetLocationType(registration.LocationBangkok)
	s.SetDistrictID(7)

	s.SetLocationType(registration.LocationProvince)

	if s.Draft().DistrictID != 0 {
		t.Fatalf("district id survived the switch")
	}

	s.SetProvinceID(30)
	s.SetLocationType(registration.LocationBangkok)

	if s.Draft().ProvinceID != 0 {
		t.Fatalf("province id survived the switch")
	}
}

func TestAttendanceSwitchClearsRoom(t *testing.T) {
	s := wizard.NewDraftStore("en")

	s.SetAttendance(registration.AttendanceAfternoon)
	s.SetSelectedRoomID(5)

	s.SetAttendance(registration.AttendanceMorning)

	if s.Draft().SelectedRoomID != 0 {
		t.Fatalf("room survived switch to morning")
	}

	// full_day keeps an afternoon component so the room stays
	s.SetAttendance(registration.AttendanceAfternoon)
	s.SetSelectedRoomID(5)
	s.SetAttendance(registration.AttendanceFullDay)

	if s.Draft().SelectedRoomID != 5 {
		t.Fatalf("room must survive switch to full_day")
	}
}

func TestEditingFieldClearsOnlyItsError(t *testing.T) {
	s := wizard.NewDraftStore("en")

	// failing Next populates the error map
	if s.Next(wizard.Options{}) {
		t.Fatalf("empty personal step must not advance")
	}

	if _, ok := s.Errors()[wizard.FieldFirstName]; !ok {
		t.Fatalf("expected firstName error, got %v", s.Errors())
	}

	s.SetFirstName("Somchai")

	if _, ok := s.Errors()[wizard.FieldFirstName]; ok {
		t.Fatalf("editing firstName must clear its error")
	}

	if _, ok := s.Errors()[wizard.FieldLastName]; !ok {
		t.Fatalf("other errors must stay until revalidation, got %v", s.Errors())
	}
}

func TestNextAdvancesThroughSteps(t *testing.T) {
	s := wizard.NewDraftStore("en")

	s.SetFirstName("Somchai")
	s.SetLastName("Jaidee")
	s.SetEmail("somchai@example.com")
	s.SetPhone("0812345678")

	if !s.Next(wizard.Options{}) {
		t.Fatalf("personal step should pass: %v", s.Errors())
	}

	if s.Step() != wizard.StepOrganization {
		t.Fatalf("step = %v", s.Step())
	}

	s.Back()

	if s.Step() != wizard.StepPersonal {
		t.Fatalf("step after back = %v", s.Step())
	}
}
