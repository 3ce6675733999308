package labels_test

import (
	"testing"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/labels"
)

func TestResolveChoiceOtherSentinel(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		choice registration.Choice
		want   string
	}{
		{
			name:   "other with free text returns the text",
			locale: "th",
			choice: registration.Choice{ID: "other", Other: "รถมอเตอร์ไซค์รับจ้าง"},
			want:   "รถมอเตอร์ไซค์รับจ้าง",
		},
		{
			name:   "other with blank text falls back to generic other th",
			locale: "th",
			choice: registration.Choice{ID: "other", Other: "   "},
			want:   "อื่นๆ",
		},
		{
			name:   "other with blank text falls back to generic other en",
			locale: "en",
			choice: registration.Choice{ID: "other"},
			want:   "Other",
		},
		{
			name:   "known catalog id",
			locale: "en",
			choice: registration.Choice{ID: "bus"},
			want:   "Bus",
		},
		{
			name:   "unknown id resolves to empty, never panics",
			locale: "en",
			choice: registration.Choice{ID: "hovercraft"},
			want:   "",
		},
		{
			name:   "missing id resolves to empty",
			locale: "th",
			choice: registration.Choice{},
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := labels.PublicSubType(tc.locale, tc.choice)

			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleNormalization(t *testing.T) {
	// anything unknown collapses onto thai
	if got := labels.Transport("fr", registration.TransportWalking); got != "เดินเท้า" {
		t.Fatalf("got %q", got)
	}

	if got := labels.Transport("EN", registration.TransportWalking); got != "Walking" {
		t.Fatalf("got %q", got)
	}
}

func TestCatalogTables(t *testing.T) {
	if got := labels.FuelType("en", registration.Choice{ID: "electric"}); got != "Electric" {
		t.Fatalf("fuel: got %q", got)
	}

	if got := labels.OrgType("th", registration.Choice{ID: "government"}); got != "หน่วยงานราชการ" {
		t.Fatalf("org: got %q", got)
	}

	if got := labels.LocationType("en", registration.LocationBangkok); got != "Bangkok" {
		t.Fatalf("location: got %q", got)
	}

	if got := labels.Attendance("th", registration.AttendanceFullDay); got != "เต็มวัน" {
		t.Fatalf("attendance: got %q", got)
	}

	if got := labels.PassengerType("en", registration.PassengerDriver); got != "Driver" {
		t.Fatalf("passenger: got %q", got)
	}
}
