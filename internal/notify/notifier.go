package notify

import (
	"context"
	"time"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/domain/schedule"
)

const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// ComposeInput is everything a message needs. The window is resolved fresh by
// the caller for the draft's attendance type; composers never fetch anything.
type ComposeInput struct {
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	RegistrationID string
	Attendance     registration.AttendanceType
	Window         schedule.TimeRange
	Room           *schedule.Room
	EventDate      time.Time
}

type SMSMessage struct {
	To     string // international form
	Body   string
	Locale string // locale the body was composed in; drives transport encoding
}

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

type SMSDispatcher interface {
	SendSMS(ctx context.Context, msg SMSMessage) error
}

type EmailDispatcher interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
}

// Delivery is one dispatch attempt, recorded win or lose.
type Delivery struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registrationId"`
	Channel        string    `json:"channel"`
	Recipient      string    `json:"recipient"`
	Status         string    `json:"status"` // sent | failed
	Error          *string   `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
