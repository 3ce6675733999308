package submit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/wizard"
)

// State tracks where a submission currently is. Transitions only ever move
// forward; Failed is reachable from Validating and Registering alone, the
// notification stages always end in Done.
type State string

const (
	StateIdle           State = "idle"
	StateValidating     State = "validating"
	StateRegistering    State = "registering"
	StateNotifyingSMS   State = "notifying_sms"
	StateNotifyingEmail State = "notifying_email"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

type Registrar interface {
	Register(ctx context.Context, d registration.Draft) (registration.Registration, error)
}

type SMSSender interface {
	SendSMS(ctx context.Context, req SMSRequest) error
}

type EmailSender interface {
	SendEmail(ctx context.Context, req EmailRequest) error
}

type SMSRequest struct {
	Phone          string `json:"phone"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	RegistrationID string `json:"registrationId"`
	AttendanceType string `json:"attendanceType"`
	SelectedRoomID int    `json:"selectedRoomId,omitempty"`
	Locale         string `json:"locale,omitempty"`
}

type EmailRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	RegistrationID string `json:"registrationId"`
	AttendanceType string `json:"attendanceType"`
	SelectedRoom   int    `json:"selectedRoom,omitempty"`
	Locale         string `json:"locale,omitempty"`
}

// StageResult records one advisory stage. Attempted stays false when an
// earlier failure made the stage unreachable.
type StageResult struct {
	Attempted bool
	OK        bool
	Err       string
}

type Result struct {
	State        State
	Errors       wizard.ErrorMap
	Message      string
	Registration registration.Registration
	SMS          StageResult
	Email        StageResult
}

// Orchestrator walks a finished draft through validation, registration and
// the two confirmation sends. The sends are best effort: the registration is
// already durable by the time they run, so their failures are reported but
// never undo anything.
type Orchestrator struct {
	registrar Registrar
	sms       SMSSender
	email     EmailSender
	locale    string
	log       *slog.Logger

	// OnState, when set, observes every transition in order.
	OnState func(State)
}

func NewOrchestrator(registrar Registrar, sms SMSSender, email EmailSender, locale string, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		registrar: registrar,
		sms:       sms,
		email:     email,
		locale:    locale,
		log:       log,
	}
}

func (o *Orchestrator) transition(s State) {
	if o.OnState != nil {
		o.OnState(s)
	}
}

func (o *Orchestrator) Submit(ctx context.Context, d registration.Draft) Result {
	res := Result{State: StateIdle}

	o.transition(StateValidating)
	res.State = StateValidating

	errs := wizard.ValidateAll(d, o.locale, wizard.Options{})

	if !errs.IsValid() {
		res.State = StateFailed
		res.Errors = errs
		res.Message = firstMessage(errs)
		o.transition(StateFailed)
		return res
	}

	o.transition(StateRegistering)
	res.State = StateRegistering

	reg, err := o.registrar.Register(ctx, d)

	if err != nil {
		res.State = StateFailed
		o.transition(StateFailed)

		if errors.Is(err, registration.ErrDuplicateName) {
			// surface the same message the per-step validator would show
			dup := wizard.ValidateStep(wizard.StepPersonal, d, o.locale, wizard.Options{DuplicateName: true})
			res.Errors = dup
			res.Message = firstMessage(dup)
			return res
		}

		res.Message = err.Error()
		return res
	}

	res.Registration = reg

	o.transition(StateNotifyingSMS)
	res.State = StateNotifyingSMS

	res.SMS = o.trySMS(ctx, d, reg)

	o.transition(StateNotifyingEmail)
	res.State = StateNotifyingEmail

	res.Email = o.tryEmail(ctx, d, reg)

	res.State = StateDone
	o.transition(StateDone)

	return res
}

func (o *Orchestrator) trySMS(ctx context.Context, d registration.Draft, reg registration.Registration) StageResult {
	err := o.sms.SendSMS(ctx, SMSRequest{
		Phone:          d.Phone,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		RegistrationID: reg.ID,
		AttendanceType: string(d.Attendance),
		SelectedRoomID: d.SelectedRoomID,
		Locale:         o.locale,
	})

	if err != nil {
		o.log.Warn("confirmation sms failed", "registration_id", reg.ID, "err", err)
		return StageResult{Attempted: true, Err: err.Error()}
	}

	return StageResult{Attempted: true, OK: true}
}

func (o *Orchestrator) tryEmail(ctx context.Context, d registration.Draft, reg registration.Registration) StageResult {
	err := o.email.SendEmail(ctx, EmailRequest{
		Email:          d.Email,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		RegistrationID: reg.ID,
		AttendanceType: string(d.Attendance),
		SelectedRoom:   d.SelectedRoomID,
		Locale:         o.locale,
	})

	if err != nil {
		o.log.Warn("confirmation email failed", "registration_id", reg.ID, "err", err)
		return StageResult{Attempted: true, Err: err.Error()}
	}

	return StageResult{Attempted: true, OK: true}
}

func firstMessage(errs wizard.ErrorMap) string {
	steps := []wizard.Step{wizard.StepPersonal, wizard.StepOrganization, wizard.StepAttendance, wizard.StepConfirmation}

	for _, step := range steps {
		if _, msg, ok := errs.First(step); ok {
			return msg
		}
	}

	return ""
}
