package schedule

import (
	"errors"
	"time"
)

var ErrRoomNotFound = errors.New("room not found")

// Entry is one timetable row. Reference data, never mutated here.
type Entry struct {
	ID        int       `json:"id"`
	EventDate time.Time `json:"eventDate"`
	TimeStart string    `json:"timeStart"` // "HH:MM:SS"
	TimeEnd   string    `json:"timeEnd"`   // "HH:MM:SS"
	RoomID    int       `json:"roomId,omitempty"`
	IsMorning bool      `json:"isMorning"`
	TitleTH   string    `json:"titleTh"`
	TitleEN   string    `json:"titleEn"`
	Speaker   string    `json:"speaker,omitempty"`
}

func (e Entry) Title(locale string) string {
	if locale == "en" && e.TitleEN != "" {
		return e.TitleEN
	}

	return e.TitleTH
}

type Room struct {
	ID     int    `json:"id"`
	NameTH string `json:"nameTh"`
	NameEN string `json:"nameEn"`
	DescTH string `json:"descTh,omitempty"`
	DescEN string `json:"descEn,omitempty"`
}

func (r Room) Name(locale string) string {
	if locale == "en" && r.NameEN != "" {
		return r.NameEN
	}

	return r.NameTH
}

func (r Room) Description(locale string) string {
	if locale == "en" && r.DescEN != "" {
		return r.DescEN
	}

	return r.DescTH
}

// TimeRange is a resolved start/end pair, already truncated to HH:MM.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (t TimeRange) String() string {
	return t.Start + " - " + t.End
}
