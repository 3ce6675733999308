package notify

import (
	"fmt"
	"strings"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/labels"
)

// thaiSpaceStandIn replaces spaces in Thai messages; the gateway's Thai
// encoding drops literal spaces in transit.
const thaiSpaceStandIn = "+"

// ComposeSMS builds the confirmation text. Deterministic for identical input:
// no timestamps, no generated ids beyond the reference code. The phone in the
// body is masked; the structured recipient stays complete.
func ComposeSMS(in ComposeInput, locale string) string {
	locale = labels.Normalize(locale)

	code := registration.ShortCode(in.RegistrationID)
	window := in.Window.String()
	masked := MaskPhone(in.Phone)

	var b strings.Builder

	if locale == labels.LocaleEN {
		fmt.Fprintf(&b, "Dear %s %s, your seminar registration is confirmed. Ref %s.", in.FirstName, in.LastName, code)
		fmt.Fprintf(&b, " %s %s.", labels.Attendance(locale, in.Attendance), window)

		if in.Attendance.HasAfternoon() && in.Room != nil {
			fmt.Fprintf(&b, " Room: %s", in.Room.Name(locale))

			if desc := in.Room.Description(locale); desc != "" {
				fmt.Fprintf(&b, " (%s)", desc)
			}
			b.WriteString(".")
		}

		fmt.Fprintf(&b, " Contact number on record: %s", masked)

		return b.String()
	}

	fmt.Fprintf(&b, "เรียน คุณ%s %s การลงทะเบียนสัมมนาเสร็จสมบูรณ์ รหัสอ้างอิง %s", in.FirstName, in.LastName, code)
	fmt.Fprintf(&b, " %s เวลา %s", labels.Attendance(locale, in.Attendance), window)

	if in.Attendance.HasAfternoon() && in.Room != nil {
		fmt.Fprintf(&b, " ห้อง %s", in.Room.Name(locale))

		if desc := in.Room.Description(locale); desc != "" {
			fmt.Fprintf(&b, " (%s)", desc)
		}
	}

	fmt.Fprintf(&b, " หมายเลขที่ลงทะเบียน %s", masked)

	return b.String()
}

// EncodeForTransport applies the gateway's encoding rule to the final message
// text. Thai messages have their spaces substituted; everything else passes
// through. Never apply this to structured fields.
func EncodeForTransport(body, locale string) string {
	if labels.Normalize(locale) == labels.LocaleTH {
		return strings.ReplaceAll(body, " ", thaiSpaceStandIn)
	}

	return body
}
