package notify_test

import (
	"testing"

	"github.com/chaiwat/seminarhub/internal/notify"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0812345678", "+66812345678"},
		{"081-234-5678", "+66812345678"},
		{"+66812345678", "+66812345678"},
		{"66812345678", "+66812345678"},
		{" 0812345678 ", "+66812345678"},
	}

	for _, tc := range tests {
		if got := notify.NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0812345678", "081234xxxx"},
		{"+66812345678", "+6681234xxxx"},
		{"123", "xxxx"},
	}

	for _, tc := range tests {
		if got := notify.MaskPhone(tc.in); got != tc.want {
			t.Errorf("MaskPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
