package notify_test

import (
	"strings"
	"testing"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/domain/schedule"
	"github.com/chaiwat/seminarhub/internal/notify"
)

func composeInput(att registration.AttendanceType, window schedule.TimeRange, room *schedule.Room) notify.ComposeInput {
	return notify.ComposeInput{
		FirstName:      "Somchai",
		LastName:       "Jaidee",
		Phone:          "0812345678",
		Email:          "somchai@example.com",
		RegistrationID: "a1b2c3d4-0000-1111-2222-333344445555",
		Attendance:     att,
		Window:         window,
		Room:           room,
	}
}

var testRoom = &schedule.Room{
	ID:     5,
	NameTH: "ห้องประชุมใหญ่",
	NameEN: "Main Hall",
	DescTH: "ชั้น 2 อาคาร A",
	DescEN: "2nd floor, Building A",
}

func TestComposeSMSContainsWindow(t *testing.T) {
	tests := []struct {
		name   string
		att    registration.AttendanceType
		window schedule.TimeRange
		room   *schedule.Room
	}{
		{"morning", registration.AttendanceMorning, schedule.TimeRange{Start: "08:30", End: "12:00"}, nil},
		{"afternoon", registration.AttendanceAfternoon, schedule.TimeRange{Start: "13:30", End: "16:00"}, testRoom},
		{"full day", registration.AttendanceFullDay, schedule.TimeRange{Start: "08:30", End: "16:00"}, testRoom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := notify.ComposeSMS(composeInput(tc.att, tc.window, tc.room), "en")

			if !strings.Contains(msg, tc.window.String()) {
				t.Fatalf("message %q misses window %q", msg, tc.window.String())
			}
		})
	}
}

func TestComposeSMSRoomOnlyWithAfternoonComponent(t *testing.T) {
	morning := notify.ComposeSMS(composeInput(registration.AttendanceMorning, schedule.DefaultMorning, testRoom), "en")

	if strings.Contains(morning, "Main Hall") {
		t.Fatalf("morning message must not mention the room: %q", morning)
	}

	afternoon := notify.ComposeSMS(composeInput(registration.AttendanceAfternoon, schedule.DefaultAfternoon, testRoom), "en")

	if !strings.Contains(afternoon, "Main Hall") || !strings.Contains(afternoon, "2nd floor, Building A") {
		t.Fatalf("afternoon message must carry room name and description: %q", afternoon)
	}
}

func TestComposeSMSMasksPhone(t *testing.T) {
	msg := notify.ComposeSMS(composeInput(registration.AttendanceMorning, schedule.DefaultMorning, nil), "en")

	if strings.Contains(msg, "0812345678") {
		t.Fatalf("full phone leaked into body: %q", msg)
	}

	if !strings.Contains(msg, "081234xxxx") {
		t.Fatalf("masked phone missing: %q", msg)
	}
}

func TestComposeSMSDeterministic(t *testing.T) {
	in := composeInput(registration.AttendanceFullDay, schedule.TimeRange{Start: "08:30", End: "16:00"}, testRoom)

	a := notify.ComposeSMS(in, "th")
	b := notify.ComposeSMS(in, "th")

	if a != b {
		t.Fatalf("composition must be deterministic:\n%q\n%q", a, b)
	}
}

func TestComposeSMSNoLocaleMixing(t *testing.T) {
	en := notify.ComposeSMS(composeInput(registration.AttendanceAfternoon, schedule.DefaultAfternoon, testRoom), "en")

	for _, r := range en {
		if r >= 0x0E00 && r <= 0x0E7F {
			t.Fatalf("thai rune leaked into english message: %q", en)
		}
	}

	th := notify.ComposeSMS(composeInput(registration.AttendanceAfternoon, schedule.DefaultAfternoon, testRoom), "th")

	if !strings.Contains(th, "ห้องประชุมใหญ่") {
		t.Fatalf("thai message must use the thai room name: %q", th)
	}
}

func TestEncodeForTransport(t *testing.T) {
	body := "เรียน คุณ สมชาย"

	encoded := notify.EncodeForTransport(body, "th")

	if strings.Contains(encoded, " ") {
		t.Fatalf("thai encoding must drop spaces: %q", encoded)
	}

	if got := notify.EncodeForTransport("Dear Somchai", "en"); got != "Dear Somchai" {
		t.Fatalf("english passes through, got %q", got)
	}
}

func TestComposeEmail(t *testing.T) {
	in := composeInput(registration.AttendanceAfternoon, schedule.TimeRange{Start: "13:30", End: "16:00"}, testRoom)

	subject, html, err := notify.ComposeEmail(in, "en")

	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if !strings.Contains(subject, registration.ShortCode(in.RegistrationID)) {
		t.Fatalf("subject misses ref code: %q", subject)
	}

	for _, want := range []string{
		"13:30 - 16:00",
		"Main Hall",
		"2nd floor, Building A",
		in.RegistrationID, // the QR reference keys on the raw uuid
		"081234xxxx",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html misses %q", want)
		}
	}

	if strings.Contains(html, "0812345678") {
		t.Fatalf("full phone leaked into html")
	}
}

func TestComposeEmailMorningHasNoRoomBlock(t *testing.T) {
	in := composeInput(registration.AttendanceMorning, schedule.DefaultMorning, testRoom)

	_, html, err := notify.ComposeEmail(in, "th")

	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if strings.Contains(html, "ห้องประชุมใหญ่") {
		t.Fatalf("morning email must not render the room block")
	}

	if !strings.Contains(html, "08:30 - 12:00") {
		t.Fatalf("morning email misses window")
	}
}
