package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/labels"
)

// qrImageURL renders the check-in QR keyed by the registration id.
const qrImageURL = "https://api.qrserver.com/v1/create-qr-code/?size=220x220&data=%s"

var emailTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<body style="font-family: sans-serif; color: #222;">
  <h2>{{.Heading}}</h2>
  <p>{{.Greeting}}</p>
  <p><strong>{{.RefLabel}}:</strong> {{.RefCode}}</p>
  <p><strong>{{.AttendanceLabel}}:</strong> {{.Attendance}} {{.Window}}</p>
{{- if .RoomName}}
  <p><strong>{{.RoomLabel}}:</strong> {{.RoomName}}{{if .RoomDesc}} &mdash; {{.RoomDesc}}{{end}}</p>
{{- end}}
  <p>{{.PhoneLine}}</p>
  <p>{{.QRLine}}</p>
  <img src="{{.QRURL}}" alt="QR" width="220" height="220" />
</body>
</html>
`))

type emailData struct {
	Lang            string
	Heading         string
	Greeting        string
	RefLabel        string
	RefCode         string
	AttendanceLabel string
	Attendance      string
	Window          string
	RoomLabel       string
	RoomName        string
	RoomDesc        string
	PhoneLine       string
	QRLine          string
	QRURL           string
}

// ComposeEmail builds the confirmation subject and HTML document. Same
// determinism contract as ComposeSMS.
func ComposeEmail(in ComposeInput, locale string) (subject, html string, err error) {
	locale = labels.Normalize(locale)

	code := registration.ShortCode(in.RegistrationID)
	window := in.Window.String()
	masked := MaskPhone(in.Phone)

	data := emailData{
		Lang:       locale,
		RefCode:    code,
		Attendance: labels.Attendance(locale, in.Attendance),
		Window:     window,
		QRURL:      fmt.Sprintf(qrImageURL, in.RegistrationID),
	}

	if in.Attendance.HasAfternoon() && in.Room != nil {
		data.RoomName = in.Room.Name(locale)
		data.RoomDesc = in.Room.Description(locale)
	}

	if locale == labels.LocaleEN {
		subject = fmt.Sprintf("Seminar registration confirmed [%s]", code)
		data.Heading = "Registration confirmed"
		data.Greeting = fmt.Sprintf("Dear %s %s, thank you for registering.", in.FirstName, in.LastName)
		data.RefLabel = "Reference code"
		data.AttendanceLabel = "Attendance"
		data.RoomLabel = "Room"
		data.PhoneLine = fmt.Sprintf("Contact number on record: %s", masked)
		data.QRLine = "Present this QR code at the registration desk."
	} else {
		subject = fmt.Sprintf("ยืนยันการลงทะเบียนสัมมนา [%s]", code)
		data.Heading = "การลงทะเบียนเสร็จสมบูรณ์"
		data.Greeting = fmt.Sprintf("เรียน คุณ%s %s ขอบคุณที่ลงทะเบียนเข้าร่วมงานสัมมนา", in.FirstName, in.LastName)
		data.RefLabel = "รหัสอ้างอิง"
		data.AttendanceLabel = "ช่วงเวลาเข้าร่วม"
		data.RoomLabel = "ห้องสัมมนา"
		data.PhoneLine = fmt.Sprintf("หมายเลขโทรศัพท์ที่ลงทะเบียน %s", masked)
		data.QRLine = "กรุณาแสดง QR Code นี้ที่จุดลงทะเบียนหน้างาน"
	}

	var b strings.Builder

	if err := emailTmpl.Execute(&b, data); err != nil {
		return "", "", fmt.Errorf("compose email: %w", err)
	}

	return subject, b.String(), nil
}
