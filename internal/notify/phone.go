package notify

import "strings"

// maskTail is the fixed stand-in for the last four digits in display text.
const maskTail = "xxxx"

// NormalizePhone converts a local number to international form for dispatch.
// "0812345678" becomes "+66812345678"; numbers already in +66 form pass
// through untouched.
func NormalizePhone(phone string) string {
	p := strings.TrimSpace(phone)
	p = strings.ReplaceAll(p, "-", "")
	p = strings.ReplaceAll(p, " ", "")

	if strings.HasPrefix(p, "+66") {
		return p
	}

	if strings.HasPrefix(p, "66") {
		return "+" + p
	}

	if strings.HasPrefix(p, "0") {
		return "+66" + p[1:]
	}

	return p
}

// MaskPhone redacts the last four digits for display. Applied to message
// bodies only; the dispatch recipient keeps the full number.
func MaskPhone(phone string) string {
	p := strings.TrimSpace(phone)

	if len(p) <= 4 {
		return maskTail
	}

	return p[:len(p)-4] + maskTail
}
