package registration

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OtherID is the reserved catalog id meaning "not in the list; see free text".
const OtherID = "other"

// Choice is one conditional catalog selection: either a catalog id, or the
// other sentinel plus the registrant's free text. Keeping both halves in one
// value makes "text required iff id == other" a rule about a single field.
type Choice struct {
	ID    string `json:"id"`
	Other string `json:"other,omitempty"`
}

func (c Choice) IsOther() bool { return c.ID == OtherID }

func (c Choice) IsZero() bool { return c.ID == "" }

type AttendanceType string

const (
	AttendanceMorning   AttendanceType = "morning"
	AttendanceAfternoon AttendanceType = "afternoon"
	AttendanceFullDay   AttendanceType = "full_day"
)

func (t AttendanceType) IsValid() bool {
	switch t {
	case AttendanceMorning, AttendanceAfternoon, AttendanceFullDay:
		return true
	default:
		return false
	}
}

// HasAfternoon reports whether the attendance includes the afternoon block,
// which is what decides room wording in notifications.
func (t AttendanceType) HasAfternoon() bool {
	return t == AttendanceAfternoon || t == AttendanceFullDay
}

type LocationType string

const (
	LocationBangkok  LocationType = "bangkok"
	LocationProvince LocationType = "province"
)

type TransportType string

const (
	TransportPublic  TransportType = "public"
	TransportPrivate TransportType = "private"
	TransportWalking TransportType = "walking"
)

type PassengerType string

const (
	PassengerDriver    PassengerType = "driver"
	PassengerPassenger PassengerType = "passenger"
)

var (
	ErrDuplicateName = errors.New("registration with this name already exists")
	ErrNotFound      = errors.New("registration not found")
)

// Draft is the in-progress wizard state for one session. The mutators keep the
// branch invariant: switching a parent selector wipes its dependent children so
// no stale sub-field survives the switch.
type Draft struct {
	// personal
	FirstName string
	LastName  string
	Email     string
	Phone     string

	// organization
	OrgName string
	OrgType Choice

	// location
	LocationType LocationType
	DistrictID   int
	ProvinceID   int

	// transportation
	Transport      TransportType
	PublicSubType  Choice
	PrivateVehicle Choice
	FuelType       Choice
	PassengerType  PassengerType

	// attendance
	Attendance     AttendanceType
	SelectedRoomID int

	Consent bool
}

func (d *Draft) SetLocationType(t LocationType) {
	if d.LocationType == t {
		return
	}

	d.LocationType = t
	d.DistrictID = 0
	d.ProvinceID = 0
}

func (d *Draft) SetTransport(t TransportType) {
	if d.Transport == t {
		return
	}

	d.Transport = t

	// every sub-field belongs to exactly one branch
	d.PublicSubType = Choice{}
	d.PrivateVehicle = Choice{}
	d.FuelType = Choice{}
	d.PassengerType = ""
}

func (d *Draft) SetAttendance(t AttendanceType) {
	if d.Attendance == t {
		return
	}

	d.Attendance = t

	if !t.HasAfternoon() {
		d.SelectedRoomID = 0
	}
}

func (d *Draft) SetOrgType(c Choice) {
	if !c.IsOther() {
		c.Other = ""
	}
	d.OrgType = c
}

// CreateRegistrationRequest is the flattened POST /api/register body.
type CreateRegistrationRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=9,max=10"`

	OrgName      string `json:"orgName" binding:"required,max=200"`
	OrgTypeID    string `json:"orgTypeId" binding:"required"`
	OrgTypeOther string `json:"orgTypeOther" binding:"omitempty,max=200"`

	LocationType string `json:"locationType" binding:"required,oneof=bangkok province"`
	DistrictID   int    `json:"districtId" binding:"omitempty,min=1"`
	ProvinceID   int    `json:"provinceId" binding:"omitempty,min=1"`

	Transport           string `json:"transport" binding:"required,oneof=public private walking"`
	PublicSubTypeID     string `json:"publicSubTypeId" binding:"omitempty"`
	PublicSubTypeOther  string `json:"publicSubTypeOther" binding:"omitempty,max=200"`
	PrivateVehicleID    string `json:"privateVehicleId" binding:"omitempty"`
	PrivateVehicleOther string `json:"privateVehicleOther" binding:"omitempty,max=200"`
	FuelTypeID          string `json:"fuelTypeId" binding:"omitempty"`
	FuelTypeOther       string `json:"fuelTypeOther" binding:"omitempty,max=200"`
	PassengerType       string `json:"passengerType" binding:"omitempty,oneof=driver passenger"`

	Attendance     string `json:"attendanceType" binding:"required,oneof=morning afternoon full_day"`
	SelectedRoomID int    `json:"selectedRoomId" binding:"omitempty,min=1"`

	Consent bool `json:"consent"`
}

// Draft rebuilds the tagged draft from the flattened wire form.
func (r CreateRegistrationRequest) Draft() Draft {
	return Draft{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),

		OrgName: strings.TrimSpace(r.OrgName),
		OrgType: Choice{ID: r.OrgTypeID, Other: strings.TrimSpace(r.OrgTypeOther)},

		LocationType: LocationType(r.LocationType),
		DistrictID:   r.DistrictID,
		ProvinceID:   r.ProvinceID,

		Transport:      TransportType(r.Transport),
		PublicSubType:  Choice{ID: r.PublicSubTypeID, Other: strings.TrimSpace(r.PublicSubTypeOther)},
		PrivateVehicle: Choice{ID: r.PrivateVehicleID, Other: strings.TrimSpace(r.PrivateVehicleOther)},
		FuelType:       Choice{ID: r.FuelTypeID, Other: strings.TrimSpace(r.FuelTypeOther)},
		PassengerType:  PassengerType(r.PassengerType),

		Attendance:     AttendanceType(r.Attendance),
		SelectedRoomID: r.SelectedRoomID,

		Consent: r.Consent,
	}
}

type Registration struct {
	ID             string         `json:"uuid"`
	RefCode        string         `json:"refCode"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	OrgName        string         `json:"orgName"`
	OrgType        Choice         `json:"orgType"`
	LocationType   LocationType   `json:"locationType"`
	DistrictID     int            `json:"districtId,omitempty"`
	ProvinceID     int            `json:"provinceId,omitempty"`
	Transport      TransportType  `json:"transport"`
	PublicSubType  Choice         `json:"publicSubType"`
	PrivateVehicle Choice         `json:"privateVehicle"`
	FuelType       Choice         `json:"fuelType"`
	PassengerType  PassengerType  `json:"passengerType,omitempty"`
	Attendance     AttendanceType `json:"attendanceType"`
	SelectedRoomID int            `json:"selectedRoomId,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// NewFromDraft builds a Registration from a validated draft.

func NewFromDraft(d Draft) Registration {
	now := time.Now()
	id := uuid.NewString()

	return Registration{
		ID:             id,
		RefCode:        ShortCode(id),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		OrgName:        d.OrgName,
		OrgType:        d.OrgType,
		LocationType:   d.LocationType,
		DistrictID:     d.DistrictID,
		ProvinceID:     d.ProvinceID,
		Transport:      d.Transport,
		PublicSubType:  d.PublicSubType,
		PrivateVehicle: d.PrivateVehicle,
		FuelType:       d.FuelType,
		PassengerType:  d.PassengerType,
		Attendance:     d.Attendance,
		SelectedRoomID: d.SelectedRoomID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ShortCode derives the human-facing reference code shown in messages. The
// uuid stays the correlation key on the wire.
func ShortCode(id string) string {
	s := strings.ToUpper(strings.ReplaceAll(id, "-", ""))

	if len(s) > 8 {
		s = s[:8]
	}

	return s
}
