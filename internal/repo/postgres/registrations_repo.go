package postgres

import (
	"context"
	"errors"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/notify"
	"github.com/chaiwat/seminarhub/internal/observability"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewRegistrationsRepo(pool *pgxpool.Pool, prom *observability.Prom) *RegistrationsRepo {
	return &RegistrationsRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *RegistrationsRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

// Create persists one registration. Name uniqueness is the only duplicate
// rule; the check-then-insert pair plus the constraint mapping keeps it safe
// under concurrent submits.
func (repo *RegistrationsRepo) Create(ctx context.Context, d registration.Draft) (reg registration.Registration, err error) {
	var exists bool

	err = repo.observe("registrations.create.duplicate_check", func() error {
		return repo.pool.QueryRow(ctx, `SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE first_name = $1 AND last_name = $2
		)`, d.FirstName, d.LastName).Scan(&exists)
	})

	if err != nil {
		return
	}

	if exists {
		err = registration.ErrDuplicateName
		return
	}

	reg = registration.NewFromDraft(d)

	err = repo.observe("registrations.create.insert", func() error {
		_, e := repo.pool.Exec(ctx, `
		INSERT INTO registrations (
			id, ref_code, first_name, last_name, email, phone,
			org_name, org_type_id, org_type_other,
			location_type, district_id, province_id,
			transport, public_sub_type_id, public_sub_type_other,
			private_vehicle_id, private_vehicle_other,
			fuel_type_id, fuel_type_other, passenger_type,
			attendance_type, selected_room_id,
			created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
	`,
			reg.ID, reg.RefCode, reg.FirstName, reg.LastName, reg.Email, reg.Phone,
			reg.OrgName, reg.OrgType.ID, nullIfEmpty(reg.OrgType.Other),
			string(reg.LocationType), nullIfZero(reg.DistrictID), nullIfZero(reg.ProvinceID),
			string(reg.Transport), nullIfEmpty(reg.PublicSubType.ID), nullIfEmpty(reg.PublicSubType.Other),
			nullIfEmpty(reg.PrivateVehicle.ID), nullIfEmpty(reg.PrivateVehicle.Other),
			nullIfEmpty(reg.FuelType.ID), nullIfEmpty(reg.FuelType.Other), nullIfEmpty(string(reg.PassengerType)),
			string(reg.Attendance), nullIfZero(reg.SelectedRoomID),
			reg.CreatedAt, reg.UpdatedAt,
		)
		return e
	})

	if err != nil {
		if IsUniqueViolation(err, "registrations_name_uniq") {
			err = registration.ErrDuplicateName
		}
		return
	}

	return
}

func (repo *RegistrationsRepo) GetByID(ctx context.Context, id string) (found registration.Registration, err error) {
	var r registration.Registration
	var (
		districtID, provinceID, roomID              *int
		orgOther, pubID, pubOther, vehID, vehOther  *string
		fuelID, fuelOther, passenger                *string
		locationType, transport, attendance         string
	)

	err = repo.observe("registrations.get_by_id", func() error {
		return repo.pool.QueryRow(ctx, `
		SELECT id, ref_code, first_name, last_name, email, phone,
			org_name, org_type_id, org_type_other,
			location_type, district_id, province_id,
			transport, public_sub_type_id, public_sub_type_other,
			private_vehicle_id, private_vehicle_other,
			fuel_type_id, fuel_type_other, passenger_type,
			attendance_type, selected_room_id,
			created_at, updated_at
		FROM registrations
		WHERE id = $1
		`, id).Scan(
			&r.ID, &r.RefCode, &r.FirstName, &r.LastName, &r.Email, &r.Phone,
			&r.OrgName, &r.OrgType.ID, &orgOther,
			&locationType, &districtID, &provinceID,
			&transport, &pubID, &pubOther,
			&vehID, &vehOther,
			&fuelID, &fuelOther, &passenger,
			&attendance, &roomID,
			&r.CreatedAt, &r.UpdatedAt,
		)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = registration.ErrNotFound
		}
		return
	}

	r.OrgType.Other = deref(orgOther)
	r.LocationType = registration.LocationType(locationType)
	r.DistrictID = derefInt(districtID)
	r.ProvinceID = derefInt(provinceID)
	r.Transport = registration.TransportType(transport)
	r.PublicSubType = registration.Choice{ID: deref(pubID), Other: deref(pubOther)}
	r.PrivateVehicle = registration.Choice{ID: deref(vehID), Other: deref(vehOther)}
	r.FuelType = registration.Choice{ID: deref(fuelID), Other: deref(fuelOther)}
	r.PassengerType = registration.PassengerType(deref(passenger))
	r.Attendance = registration.AttendanceType(attendance)
	r.SelectedRoomID = derefInt(roomID)

	found = r
	return
}

// RecordDelivery appends one dispatch attempt to the delivery log. Failures
// here are reported to the caller but must never fail the dispatch itself.
func (repo *RegistrationsRepo) RecordDelivery(ctx context.Context, d notify.Delivery) (err error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	err = repo.observe("registrations.record_delivery", func() error {
		_, e := repo.pool.Exec(ctx, `
		INSERT INTO notification_deliveries (id, registration_id, channel, recipient, status, error, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, d.ID, d.RegistrationID, d.Channel, d.Recipient, d.Status, d.Error, d.CreatedAt)
		return e
	})

	return
}

func (repo *RegistrationsRepo) ListDeliveries(ctx context.Context, registrationID string) (items []notify.Delivery, err error) {
	var rows pgx.Rows

	err = repo.observe("registrations.list_deliveries", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `
		SELECT id, registration_id, channel, recipient, status, error, created_at
		FROM notification_deliveries
		WHERE registration_id = $1
		ORDER BY created_at ASC
		`, registrationID)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	items = make([]notify.Delivery, 0)

	for rows.Next() {
		var d notify.Delivery

		e := rows.Scan(&d.ID, &d.RegistrationID, &d.Channel, &d.Recipient, &d.Status, &d.Error, &d.CreatedAt)

		if e != nil {
			err = e
			return
		}
		items = append(items, d)
	}

	err = rows.Err()
	return
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
