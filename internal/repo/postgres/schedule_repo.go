package postgres

import (
	"context"
	"errors"

	"github.com/chaiwat/seminarhub/internal/domain/schedule"
	"github.com/chaiwat/seminarhub/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepo reads timetable rows and rooms. Deliberately uncached: the
// resolvers must see current rows at every dispatch.
type ScheduleRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewScheduleRepo(pool *pgxpool.Pool, prom *observability.Prom) *ScheduleRepo {
	return &ScheduleRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *ScheduleRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (repo *ScheduleRepo) ListEntries(ctx context.Context) (entries []schedule.Entry, err error) {
	var rows pgx.Rows

	err = repo.observe("schedule.list_entries", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `
		SELECT id, event_date, time_start::text, time_end::text,
			COALESCE(room_id, 0), is_morning,
			title_th, title_en, COALESCE(speaker, '')
		FROM schedule_entries
		ORDER BY time_start ASC, id ASC
		`)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	entries = make([]schedule.Entry, 0)

	for rows.Next() {
		var e schedule.Entry

		scanErr := rows.Scan(&e.ID, &e.EventDate, &e.TimeStart, &e.TimeEnd, &e.RoomID, &e.IsMorning, &e.TitleTH, &e.TitleEN, &e.Speaker)

		if scanErr != nil {
			err = scanErr
			return
		}
		entries = append(entries, e)
	}

	err = rows.Err()
	return
}

func (repo *ScheduleRepo) GetRoom(ctx context.Context, id int) (room schedule.Room, err error) {
	err = repo.observe("schedule.get_room", func() error {
		return repo.pool.QueryRow(ctx, `
		SELECT id, name_th, name_en, COALESCE(desc_th, ''), COALESCE(desc_en, '')
		FROM rooms
		WHERE id = $1
		`, id).Scan(&room.ID, &room.NameTH, &room.NameEN, &room.DescTH, &room.DescEN)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = schedule.ErrRoomNotFound
		}
		return
	}

	return
}

func (repo *ScheduleRepo) ListRooms(ctx context.Context) (rooms []schedule.Room, err error) {
	var rows pgx.Rows

	err = repo.observe("schedule.list_rooms", func() error {
		var qerr error
		rows, qerr = repo.pool.Query(ctx, `
		SELECT id, name_th, name_en, COALESCE(desc_th, ''), COALESCE(desc_en, '')
		FROM rooms
		ORDER BY id ASC
		`)
		return qerr
	})

	if err != nil {
		return
	}

	defer rows.Close()

	rooms = make([]schedule.Room, 0)

	for rows.Next() {
		var r schedule.Room

		scanErr := rows.Scan(&r.ID, &r.NameTH, &r.NameEN, &r.DescTH, &r.DescEN)

		if scanErr != nil {
			err = scanErr
			return
		}
		rooms = append(rooms, r)
	}

	err = rows.Err()
	return
}
