package submit_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
	"github.com/chaiwat/seminarhub/internal/submit"
)

func TestClientRegisterSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var body map[string]any

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if body["firstName"] != "Somchai" {
			t.Fatalf("firstName = %v", body["firstName"])
		}

		// branch fields outside the chosen path must stay off the wire
		if _, ok := body["privateVehicleId"]; ok {
			t.Fatal("privateVehicleId sent for a walking draft")
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"uuid":    "3f2b8c1a-77aa-4f35-9e0f-2a9f26d11111",
			"refCode": "3F2B8C1A",
		})
	}))

	defer srv.Close()

	c := submit.NewClient(srv.URL)

	reg, err := c.Register(context.Background(), validDraft())

	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if reg.ID != "3f2b8c1a-77aa-4f35-9e0f-2a9f26d11111" || reg.RefCode != "3F2B8C1A" {
		t.Fatalf("registration = %+v", reg)
	}
}

func TestClientRegisterDuplicateName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "duplicate_name",
			"message": "this name is already registered for the seminar.",
		})
	}))

	defer srv.Close()

	c := submit.NewClient(srv.URL)

	_, err := c.Register(context.Background(), validDraft())

	if !errors.Is(err, registration.ErrDuplicateName) {
		t.Fatalf("err = %v", err)
	}
}

func TestClientSendSMSDispatchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "dispatch_failed",
			"message": "Could not deliver the SMS",
		})
	}))

	defer srv.Close()

	c := submit.NewClient(srv.URL)

	err := c.SendSMS(context.Background(), submit.SMSRequest{Phone: "0812345678"})

	if err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}
