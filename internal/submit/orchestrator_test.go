package submit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/submit"
)

type fakeRegistrar struct {
	registerFn func(ctx context.Context, d registration.Draft) (registration.Registration, error)
	calls      int
}

func (f *fakeRegistrar) Register(ctx context.Context, d registration.Draft) (registration.Registration, error) {
	f.calls++

	if f.registerFn != nil {
		return f.registerFn(ctx, d)
	}

	return registration.Registration{ID: "a1b2c3d4-0000-0000-0000-000000000000", RefCode: "A1B2C3D4"}, nil
}

type fakeSMSSender struct {
	sendFn func(ctx context.Context, req submit.SMSRequest) error
	calls  int
}

func (f *fakeSMSSender) SendSMS(ctx context.Context, req submit.SMSRequest) error {
	f.calls++

	if f.sendFn != nil {
		return f.sendFn(ctx, req)
	}

	return nil
}

type fakeEmailSender struct {
	sendFn func(ctx context.Context, req submit.EmailRequest) error
	calls  int
}

func (f *fakeEmailSender) SendEmail(ctx context.Context, req submit.EmailRequest) error {
	f.calls++

	if f.sendFn != nil {
		return f.sendFn(ctx, req)
	}

	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validDraft() registration.Draft {
	return registration.Draft{
		FirstName:    "Somchai",
		LastName:     "Jaidee",
		Email:        "somchai@example.com",
		Phone:        "0812345678",
		OrgName:      "Acme Co",
		OrgType:      registration.Choice{ID: "government"},
		LocationType: registration.LocationBangkok,
		DistrictID:   12,
		Transport:    registration.TransportWalking,
		Attendance:   registration.AttendanceMorning,
		Consent:      true,
	}
}

func newOrchestrator(reg *fakeRegistrar, sms *fakeSMSSender, email *fakeEmailSender) *submit.Orchestrator {
	return submit.NewOrchestrator(reg, sms, email, "th", quietLogger())
}

func TestSubmitHappyPath(t *testing.T) {
	reg := &fakeRegistrar{}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{}

	o := newOrchestrator(reg, sms, email)

	var states []submit.State

	o.OnState = func(s submit.State) { states = append(states, s) }

	res := o.Submit(context.Background(), validDraft())

	if res.State != submit.StateDone {
		t.Fatalf("state = %s, message = %s", res.State, res.Message)
	}

	want := []submit.State{
		submit.StateValidating,
		submit.StateRegistering,
		submit.StateNotifyingSMS,
		submit.StateNotifyingEmail,
		submit.StateDone,
	}

	if len(states) != len(want) {
		t.Fatalf("transitions = %v", states)
	}

	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("transition %d = %s, want %s", i, states[i], want[i])
		}
	}

	if res.Registration.ID == "" || res.Registration.RefCode == "" {
		t.Fatalf("registration not captured: %+v", res.Registration)
	}

	if !res.SMS.OK || !res.Email.OK {
		t.Fatalf("stages = sms %+v, email %+v", res.SMS, res.Email)
	}
}

func TestSubmitInvalidDraftNeverTouchesNetwork(t *testing.T) {
	reg := &fakeRegistrar{}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{}

	o := newOrchestrator(reg, sms, email)

	d := validDraft()
	d.Consent = false

	res := o.Submit(context.Background(), d)

	if res.State != submit.StateFailed {
		t.Fatalf("state = %s", res.State)
	}

	if reg.calls != 0 || sms.calls != 0 || email.calls != 0 {
		t.Fatalf("collaborators called: reg %d, sms %d, email %d", reg.calls, sms.calls, email.calls)
	}

	if res.Message == "" || res.Errors.IsValid() {
		t.Fatalf("expected errors, got message %q, errors %v", res.Message, res.Errors)
	}
}

func TestSubmitDuplicateNameFailsBeforeNotifications(t *testing.T) {
	reg := &fakeRegistrar{
		registerFn: func(ctx context.Context, d registration.Draft) (registration.Registration, error) {
			return registration.Registration{}, registration.ErrDuplicateName
		},
	}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{}

	o := newOrchestrator(reg, sms, email)

	res := o.Submit(context.Background(), validDraft())

	if res.State != submit.StateFailed {
		t.Fatalf("state = %s", res.State)
	}

	if sms.calls != 0 || email.calls != 0 {
		t.Fatal("notifications must not run for a failed registration")
	}

	if res.Message == "" {
		t.Fatal("expected the duplicate-name message")
	}

	if _, ok := res.Errors["firstName"]; !ok {
		t.Fatalf("errors = %v", res.Errors)
	}
}

func TestSubmitSMSFailureIsAdvisory(t *testing.T) {
	reg := &fakeRegistrar{}
	sms := &fakeSMSSender{
		sendFn: func(ctx context.Context, req submit.SMSRequest) error {
			return errors.New("gateway down")
		},
	}
	email := &fakeEmailSender{}

	o := newOrchestrator(reg, sms, email)

	res := o.Submit(context.Background(), validDraft())

	if res.State != submit.StateDone {
		t.Fatalf("state = %s", res.State)
	}

	if res.SMS.OK || !res.SMS.Attempted {
		t.Fatalf("sms stage = %+v", res.SMS)
	}

	// email still runs after the sms failure
	if email.calls != 1 || !res.Email.OK {
		t.Fatalf("email stage = %+v, calls %d", res.Email, email.calls)
	}
}

func TestSubmitEmailFailureIsAdvisory(t *testing.T) {
	reg := &fakeRegistrar{}
	sms := &fakeSMSSender{}
	email := &fakeEmailSender{
		sendFn: func(ctx context.Context, req submit.EmailRequest) error {
			return errors.New("smtp down")
		},
	}

	o := newOrchestrator(reg, sms, email)

	res := o.Submit(context.Background(), validDraft())

	if res.State != submit.StateDone {
		t.Fatalf("state = %s", res.State)
	}

	if res.Email.OK || res.Email.Err == "" {
		t.Fatalf("email stage = %+v", res.Email)
	}
}

func TestSubmitForwardsDraftFields(t *testing.T) {
	var gotSMS submit.SMSRequest
	var gotEmail submit.EmailRequest

	reg := &fakeRegistrar{}
	sms := &fakeSMSSender{
		sendFn: func(ctx context.Context, req submit.SMSRequest) error {
			gotSMS = req
			return nil
		},
	}
	email := &fakeEmailSender{
		sendFn: func(ctx context.Context, req submit.EmailRequest) error {
			gotEmail = req
			return nil
		},
	}

	o := newOrchestrator(reg, sms, email)

	d := validDraft()
	d.Attendance = registration.AttendanceFullDay
	d.SelectedRoomID = 5

	res := o.Submit(context.Background(), d)

	if res.State != submit.StateDone {
		t.Fatalf("state = %s", res.State)
	}

	if gotSMS.Phone != d.Phone || gotSMS.AttendanceType != "full_day" || gotSMS.SelectedRoomID != 5 {
		t.Fatalf("sms request = %+v", gotSMS)
	}

	if gotSMS.RegistrationID == "" || gotSMS.RegistrationID != gotEmail.RegistrationID {
		t.Fatalf("registration ids: sms %q, email %q", gotSMS.RegistrationID, gotEmail.RegistrationID)
	}

	if gotEmail.Email != d.Email || gotEmail.SelectedRoom != 5 {
		t.Fatalf("email request = %+v", gotEmail)
	}
}
