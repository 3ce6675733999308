package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chaiwat/seminarhub/internal/notify"
)

type gatewayCapture struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

func captureGateway(t *testing.T, got *gatewayCapture) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Fatalf("authorization header = %q", auth)
		}

		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Fatalf("decode gateway request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "messageId": "m-1"})
	}))
}

func newGatewayDispatcher(url string) *notify.HTTPSMSDispatcher {
	return notify.NewHTTPSMSDispatcher(notify.SMSGatewayConfig{
		URL:    url,
		APIKey: "test-key",
		Sender: "SEMINAR",
	})
}

func TestGatewayEncodesThaiMessageOnTheWire(t *testing.T) {
	var got gatewayCapture

	srv := captureGateway(t, &got)
	defer srv.Close()

	d := newGatewayDispatcher(srv.URL)

	err := d.SendSMS(context.Background(), notify.SMSMessage{
		To:     "+66812345678",
		Body:   "เรียน คุณสมชาย ใจดี การลงทะเบียนสัมมนาเสร็จสมบูรณ์",
		Locale: "th",
	})

	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if strings.Contains(got.Message, " ") {
		t.Fatalf("thai wire body still has spaces: %q", got.Message)
	}

	if !strings.Contains(got.Message, "+") {
		t.Fatalf("thai wire body missing substitution: %q", got.Message)
	}

	if got.To != "+66812345678" || got.From != "SEMINAR" {
		t.Fatalf("structured fields = %+v", got)
	}
}

func TestGatewayLeavesEnglishMessageUntouched(t *testing.T) {
	var got gatewayCapture

	srv := captureGateway(t, &got)
	defer srv.Close()

	d := newGatewayDispatcher(srv.URL)

	body := "Dear Somchai Jaidee, your seminar registration is confirmed."

	err := d.SendSMS(context.Background(), notify.SMSMessage{
		To:     "+66812345678",
		Body:   body,
		Locale: "en",
	})

	if err != nil {
		t.Fatalf("send: %v", err)
	}

	// the encoding follows the message's locale, never a deployment setting
	if got.Message != body {
		t.Fatalf("english wire body altered: %q", got.Message)
	}
}

func TestGatewayRejectionSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "invalid recipient"})
	}))

	defer srv.Close()

	d := notify.NewHTTPSMSDispatcher(notify.SMSGatewayConfig{URL: srv.URL, APIKey: "k"})

	err := d.SendSMS(context.Background(), notify.SMSMessage{To: "+66812345678", Body: "hello", Locale: "en"})

	if err == nil || !strings.Contains(err.Error(), "invalid recipient") {
		t.Fatalf("err = %v", err)
	}
}
