package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/chaiwat/seminarhub/internal/config"
	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/labels"
	"github.com/chaiwat/seminarhub/internal/notify"
	"github.com/chaiwat/seminarhub/internal/wizard"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistrationCreator interface {
	Create(ctx context.Context, d registration.Draft) (registration.Registration, error)
}

type RegisterHandler struct {
	repo          RegistrationCreator
	defaultLocale string
}

func NewRegisterHandler(repo RegistrationCreator, defaultLocale string) *RegisterHandler {
	return &RegisterHandler{repo: repo, defaultLocale: defaultLocale}
}

func (h *RegisterHandler) Register(ctx *gin.Context) {
	var req registration.CreateRegistrationRequest

	if !BindJSON(ctx, &req) {
		return
	}

	locale := h.locale(ctx)

	draft := req.Draft()

	// binding tags catch shape; the engine owns the conditional graph
	errs := wizard.ValidateAll(draft, locale, wizard.Options{})

	if !errs.IsValid() {
		_, first, _ := errs.First(wizard.StepPersonal)

		if first == "" {
			for _, step := range []wizard.Step{wizard.StepOrganization, wizard.StepAttendance, wizard.StepConfirmation} {
				if _, msg, ok := errs.First(step); ok {
					first = msg
					break
				}
			}
		}

		RespondError(ctx, http.StatusUnprocessableEntity, "validation_failed", first, gin.H{"fields": errs})
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	reg, err := h.repo.Create(cctx, draft)

	if err != nil {
		if errors.Is(err, registration.ErrDuplicateName) {
			RespondConflict(ctx, "duplicate_name", "this name is already registered for the seminar.")
			return
		}

		RespondInternal(ctx, "Could not complete registration")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"uuid":    reg.ID,
		"refCode": reg.RefCode,
	})
}

func (h *RegisterHandler) locale(ctx *gin.Context) string {
	if l := ctx.Query("locale"); l != "" {
		return labels.Normalize(l)
	}

	return labels.Normalize(h.defaultLocale)
}

type RegistrationReader interface {
	GetByID(ctx context.Context, id string) (registration.Registration, error)
	ListDeliveries(ctx context.Context, id string) ([]notify.Delivery, error)
}

// RegistrationLookup serves the status view: the stored record plus every
// dispatch attempt made for it.
type RegistrationLookup struct {
	repo RegistrationReader
}

func NewRegistrationLookup(repo RegistrationReader) *RegistrationLookup {
	return &RegistrationLookup{repo: repo}
}

func (h *RegistrationLookup) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		RespondBadRequest(ctx, "Invalid registration id", nil)
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	reg, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, registration.ErrNotFound) {
			RespondNotFound(ctx, "Registration not found")
			return
		}

		RespondInternal(ctx, "Could not load the registration")
		return
	}

	deliveries, err := h.repo.ListDeliveries(cctx, id)

	if err != nil {
		RespondInternal(ctx, "Could not load the delivery history")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"registration": reg,
		"deliveries":   deliveries,
	})
}
