package schedule

import "sort"

// Documented fallbacks used when the timetable has no matching rows. The
// notification wording must never end up without a window.
var (
	DefaultMorning   = TimeRange{Start: "08:30", End: "12:00"}
	DefaultAfternoon = TimeRange{Start: "13:00", End: "16:30"}
)

// ResolveMorningWindow spans all morning sessions: start of the earliest row
// to end of the latest. The resolvers recompute from the given slice on every
// call; timetable rows may change between registration and dispatch.
func ResolveMorningWindow(entries []Entry) TimeRange {
	morning := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if e.IsMorning {
			morning = append(morning, e)
		}
	}

	if len(morning) == 0 {
		return DefaultMorning
	}

	sort.Slice(morning, func(i, j int) bool {
		return morning[i].TimeStart < morning[j].TimeStart
	})

	return TimeRange{
		Start: clockHHMM(morning[0].TimeStart),
		End:   clockHHMM(morning[len(morning)-1].TimeEnd),
	}
}

// ResolveRoomWindow resolves the afternoon block for one room. Rooms run a
// single contiguous block, so only the first matching row counts.
func ResolveRoomWindow(entries []Entry, roomID int) TimeRange {
	matching := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if e.RoomID == roomID && !e.IsMorning {
			matching = append(matching, e)
		}
	}

	if len(matching) == 0 {
		return DefaultAfternoon
	}

	sort.Slice(matching, func(i, j int) bool {
		return matching[i].TimeStart < matching[j].TimeStart
	})

	return TimeRange{
		Start: clockHHMM(matching[0].TimeStart),
		End:   clockHHMM(matching[0].TimeEnd),
	}
}

// ResolveFullDayWindow spans the morning start to the afternoon end of the
// selected room, or the default afternoon end when no room is selected.
func ResolveFullDayWindow(entries []Entry, roomID int) TimeRange {
	morning := ResolveMorningWindow(entries)

	end := DefaultAfternoon.End

	if roomID > 0 {
		end = ResolveRoomWindow(entries, roomID).End
	}

	return TimeRange{Start: morning.Start, End: end}
}

// clockHHMM drops the seconds from a "HH:MM:SS" timetable value.
func clockHHMM(t string) string {
	if len(t) > 5 {
		return t[:5]
	}

	return t
}
