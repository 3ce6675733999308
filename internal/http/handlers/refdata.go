package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/chaiwat/seminarhub/internal/config"
	"github.com/chaiwat/seminarhub/internal/domain/refdata"
	"github.com/chaiwat/seminarhub/internal/domain/schedule"
	"github.com/chaiwat/seminarhub/internal/labels"
	"github.com/gin-gonic/gin"
)

type ScheduleLister interface {
	ListEntries(ctx context.Context) ([]schedule.Entry, error)
	ListRooms(ctx context.Context) ([]schedule.Room, error)
}

type CatalogReader interface {
	Catalog(ctx context.Context) (refdata.Catalog, error)
}

// RefdataHandler serves the read-only data the registration form renders
// from: the timetable, the breakout rooms and the option catalogs.
type RefdataHandler struct {
	schedules ScheduleLister
	catalog   CatalogReader
}

func NewRefdataHandler(schedules ScheduleLister, catalog CatalogReader) *RefdataHandler {
	return &RefdataHandler{schedules: schedules, catalog: catalog}
}

func (h *RefdataHandler) Schedule(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)

	defer cancel()

	entries, err := h.schedules.ListEntries(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not load the seminar schedule")
		return
	}

	if entries == nil {
		entries = []schedule.Entry{}
	}

	ctx.JSON(http.StatusOK, gin.H{"schedule": entries})
}

func (h *RefdataHandler) Rooms(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)

	defer cancel()

	rooms, err := h.schedules.ListRooms(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not load the seminar rooms")
		return
	}

	if rooms == nil {
		rooms = []schedule.Room{}
	}

	ctx.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *RefdataHandler) Reference(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(5 * time.Second)

	defer cancel()

	cat, err := h.catalog.Catalog(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not load the reference data")
		return
	}

	// database-backed catalogs plus the static option tables in one payload
	ctx.JSON(http.StatusOK, gin.H{
		"orgTypes":        cat.OrgTypes,
		"provinces":       cat.Provinces,
		"districts":       cat.Districts,
		"transportTypes":  labels.TransportOptions(),
		"publicSubTypes":  labels.PublicSubTypeOptions(),
		"privateVehicles": labels.PrivateVehicleOptions(),
		"fuelTypes":       labels.FuelTypeOptions(),
		"passengerTypes":  labels.PassengerTypeOptions(),
		"attendanceTypes": labels.AttendanceOptions(),
	})
}
