package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chaiwat/seminarhub/internal/domain/refdata"
	"github.com/chaiwat/seminarhub/internal/domain/schedule"
	"github.com/chaiwat/seminarhub/internal/http/handlers"
	"github.com/chaiwat/seminarhub/internal/labels"
)

type fakeCatalogRepo struct {
	catalogFn func(ctx context.Context) (refdata.Catalog, error)
}

func (f *fakeCatalogRepo) Catalog(ctx context.Context) (refdata.Catalog, error) {
	if f.catalogFn != nil {
		return f.catalogFn(ctx)
	}

	return refdata.Catalog{}, nil
}

func getJSON(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestScheduleHandler(t *testing.T) {
	h := handlers.NewRefdataHandler(afternoonSchedule(), &fakeCatalogRepo{})
	r := setupRouter(http.MethodGet, "/api/schedule", h.Schedule)

	w := getJSON(t, r, "/api/schedule")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Schedule []schedule.Entry `json:"schedule"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Schedule) != 2 {
		t.Fatalf("schedule entries = %d", len(resp.Schedule))
	}
}

func TestScheduleHandlerEmptyIsAnArray(t *testing.T) {
	sched := &fakeScheduleRepo{}

	h := handlers.NewRefdataHandler(sched, &fakeCatalogRepo{})
	r := setupRouter(http.MethodGet, "/api/schedule", h.Schedule)

	w := getJSON(t, r, "/api/schedule")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	if body := w.Body.String(); !json.Valid([]byte(body)) || body == `{"schedule":null}` {
		t.Fatalf("body = %s", body)
	}
}

func TestRoomsHandler(t *testing.T) {
	sched := &fakeScheduleRepo{
		roomsFn: func(ctx context.Context) ([]schedule.Room, error) {
			return []schedule.Room{{ID: 5, NameTH: "ห้องนวัตกรรม", NameEN: "Innovation Room"}}, nil
		},
	}

	h := handlers.NewRefdataHandler(sched, &fakeCatalogRepo{})
	r := setupRouter(http.MethodGet, "/api/rooms", h.Rooms)

	w := getJSON(t, r, "/api/rooms")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var resp struct {
		Rooms []schedule.Room `json:"rooms"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Rooms) != 1 || resp.Rooms[0].NameEN != "Innovation Room" {
		t.Fatalf("rooms = %+v", resp.Rooms)
	}
}

func TestReferenceHandlerMergesStaticCatalogs(t *testing.T) {
	cat := &fakeCatalogRepo{
		catalogFn: func(ctx context.Context) (refdata.Catalog, error) {
			return refdata.Catalog{
				OrgTypes:  []refdata.OrgType{{ID: "government", NameTH: "หน่วยงานราชการ", NameEN: "Government agency"}},
				Provinces: []refdata.Province{{ID: 1, NameTH: "เชียงใหม่", NameEN: "Chiang Mai"}},
				Districts: []refdata.District{{ID: 12, NameTH: "บางรัก", NameEN: "Bang Rak"}},
			}, nil
		},
	}

	h := handlers.NewRefdataHandler(afternoonSchedule(), cat)
	r := setupRouter(http.MethodGet, "/api/reference", h.Reference)

	w := getJSON(t, r, "/api/reference")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		OrgTypes        []refdata.OrgType `json:"orgTypes"`
		TransportTypes  []labels.Option   `json:"transportTypes"`
		PublicSubTypes  []labels.Option   `json:"publicSubTypes"`
		PrivateVehicles []labels.Option   `json:"privateVehicles"`
		FuelTypes       []labels.Option   `json:"fuelTypes"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.OrgTypes) != 1 {
		t.Fatalf("orgTypes = %+v", resp.OrgTypes)
	}

	if len(resp.TransportTypes) != 3 || resp.TransportTypes[0].ID != "public" {
		t.Fatalf("transportTypes = %+v", resp.TransportTypes)
	}

	// the free-text sentinel rides along in every conditional catalog
	last := resp.PublicSubTypes[len(resp.PublicSubTypes)-1]
	if last.ID != "other" || last.NameEN != "Other" {
		t.Fatalf("publicSubTypes tail = %+v", last)
	}

	if resp.FuelTypes[len(resp.FuelTypes)-1].ID != "other" {
		t.Fatalf("fuelTypes = %+v", resp.FuelTypes)
	}
}

func TestReferenceHandlerRepoError(t *testing.T) {
	cat := &fakeCatalogRepo{
		catalogFn: func(ctx context.Context) (refdata.Catalog, error) {
			return refdata.Catalog{}, errors.New("db down")
		},
	}

	h := handlers.NewRefdataHandler(afternoonSchedule(), cat)
	r := setupRouter(http.MethodGet, "/api/reference", h.Reference)

	w := getJSON(t, r, "/api/reference")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d", w.Code)
	}
}
