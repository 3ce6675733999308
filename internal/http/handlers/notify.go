package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/chaiwat/seminarhub/internal/config"
	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/domain/schedule"
	"github.com/chaiwat/seminarhub/internal/notify"
	"github.com/chaiwat/seminarhub/internal/observability"
	"github.com/gin-gonic/gin"
)

type ScheduleReader interface {
	ListEntries(ctx context.Context) ([]schedule.Entry, error)
	GetRoom(ctx context.Context, id int) (schedule.Room, error)
}

type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, d notify.Delivery) error
}

// NotifyHandler serves the two dispatch endpoints. Each call loads the
// timetable fresh and resolves windows on the spot; nothing is reused from
// registration time.
type NotifyHandler struct {
	schedules  ScheduleReader
	sms        notify.SMSDispatcher
	email      notify.EmailDispatcher
	deliveries DeliveryRecorder
	prom       *observability.Prom
	log        *slog.Logger
}

func NewNotifyHandler(
	schedules ScheduleReader,
	sms notify.SMSDispatcher,
	email notify.EmailDispatcher,
	deliveries DeliveryRecorder,
	prom *observability.Prom,
	log *slog.Logger,
) *NotifyHandler {
	return &NotifyHandler{
		schedules:  schedules,
		sms:        sms,
		email:      email,
		deliveries: deliveries,
		prom:       prom,
		log:        log,
	}
}

type SendSMSRequest struct {
	Phone          string `json:"phone" binding:"required,min=9,max=15"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	RegistrationID string `json:"registrationId" binding:"required"`
	AttendanceType string `json:"attendanceType" binding:"required,oneof=morning afternoon full_day"`
	SelectedRoomID int    `json:"selectedRoomId" binding:"omitempty,min=1"`
	Locale         string `json:"locale" binding:"omitempty,oneof=th en"`
}

type SendEmailRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	RegistrationID string `json:"registrationId" binding:"required"`
	AttendanceType string `json:"attendanceType" binding:"required,oneof=morning afternoon full_day"`
	SelectedRoom   int    `json:"selectedRoom" binding:"omitempty,min=1"`
	Locale         string `json:"locale" binding:"omitempty,oneof=th en"`
}

func (h *NotifyHandler) SendSMS(ctx *gin.Context) {
	var req SendSMSRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(10 * time.Second)

	defer cancel()

	in, ok := h.composeInput(ctx, cctx, composeParams{
		firstName:      req.FirstName,
		lastName:       req.LastName,
		phone:          req.Phone,
		registrationID: req.RegistrationID,
		attendance:     registration.AttendanceType(req.AttendanceType),
		roomID:         req.SelectedRoomID,
	})

	if !ok {
		return
	}

	body := notify.ComposeSMS(in, req.Locale)

	msg := notify.SMSMessage{
		To:     notify.NormalizePhone(req.Phone),
		Body:   body,
		Locale: req.Locale,
	}

	err := h.dispatch(notify.ChannelSMS, func() error {
		return h.sms.SendSMS(cctx, msg)
	})

	h.recordDelivery(notify.Delivery{
		RegistrationID: req.RegistrationID,
		Channel:        notify.ChannelSMS,
		Recipient:      msg.To,
		Status:         deliveryStatus(err),
		Error:          errString(err),
		CreatedAt:      time.Now().UTC(),
	})

	if err != nil {
		h.log.Error("sms dispatch failed", "registration_id", req.RegistrationID, "err", err)
		RespondBadGateway(ctx, "dispatch_failed", "Could not deliver the SMS")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"phone":   notify.MaskPhone(msg.To),
	})
}

func (h *NotifyHandler) SendEmail(ctx *gin.Context) {
	var req SendEmailRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(10 * time.Second)

	defer cancel()

	in, ok := h.composeInput(ctx, cctx, composeParams{
		firstName:      req.FirstName,
		lastName:       req.LastName,
		email:          req.Email,
		registrationID: req.RegistrationID,
		attendance:     registration.AttendanceType(req.AttendanceType),
		roomID:         req.SelectedRoom,
	})

	if !ok {
		return
	}

	subject, html, err := notify.ComposeEmail(in, req.Locale)

	if err != nil {
		RespondInternal(ctx, "Could not compose the email")
		return
	}

	msg := notify.EmailMessage{
		To:      req.Email,
		Subject: subject,
		HTML:    html,
	}

	err = h.dispatch(notify.ChannelEmail, func() error {
		return h.email.SendEmail(cctx, msg)
	})

	h.recordDelivery(notify.Delivery{
		RegistrationID: req.RegistrationID,
		Channel:        notify.ChannelEmail,
		Recipient:      req.Email,
		Status:         deliveryStatus(err),
		Error:          errString(err),
		CreatedAt:      time.Now().UTC(),
	})

	if err != nil {
		h.log.Error("email dispatch failed", "registration_id", req.RegistrationID, "err", err)
		RespondBadGateway(ctx, "dispatch_failed", "Could not deliver the email")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

type composeParams struct {
	firstName      string
	lastName       string
	phone          string
	email          string
	registrationID string
	attendance     registration.AttendanceType
	roomID         int
}

// composeInput loads the timetable and resolves the window for the requested
// attendance. Returns ok=false after writing the error response.
func (h *NotifyHandler) composeInput(ctx *gin.Context, cctx context.Context, p composeParams) (notify.ComposeInput, bool) {
	entries, err := h.schedules.ListEntries(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not load the seminar schedule")
		return notify.ComposeInput{}, false
	}

	var room *schedule.Room

	if p.attendance.HasAfternoon() && p.roomID > 0 {
		r, err := h.schedules.GetRoom(cctx, p.roomID)

		if err != nil {
			if errors.Is(err, schedule.ErrRoomNotFound) {
				RespondBadRequest(ctx, "Unknown seminar room", gin.H{"selectedRoomId": p.roomID})
				return notify.ComposeInput{}, false
			}

			RespondInternal(ctx, "Could not load the seminar room")
			return notify.ComposeInput{}, false
		}

		room = &r
	}

	var window schedule.TimeRange

	switch p.attendance {
	case registration.AttendanceMorning:
		window = schedule.ResolveMorningWindow(entries)
	case registration.AttendanceAfternoon:
		window = schedule.ResolveRoomWindow(entries, p.roomID)
	default:
		window = schedule.ResolveFullDayWindow(entries, p.roomID)
	}

	return notify.ComposeInput{
		FirstName:      p.firstName,
		LastName:       p.lastName,
		Phone:          p.phone,
		Email:          p.email,
		RegistrationID: p.registrationID,
		Attendance:     p.attendance,
		Window:         window,
		Room:           room,
	}, true
}

func (h *NotifyHandler) dispatch(channel string, fn func() error) error {
	if h.prom != nil {
		return h.prom.ObserveDispatch(channel, fn)
	}
	return fn()
}

// recordDelivery logs the attempt regardless of outcome. A failing log write
// must not turn a delivered notification into an error.
func (h *NotifyHandler) recordDelivery(d notify.Delivery) {
	if h.deliveries == nil {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	if err := h.deliveries.RecordDelivery(cctx, d); err != nil {
		h.log.Error("delivery log write failed", "registration_id", d.RegistrationID, "channel", d.Channel, "err", err)
	}
}

func deliveryStatus(err error) string {
	if err != nil {
		return "failed"
	}
	return "sent"
}

func errString(err error) *string {
	if err == nil {
		return nil
	}

	s := err.Error()
	return &s
}
