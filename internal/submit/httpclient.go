package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chaiwat/seminarhub/internal/domain/registration"
)

// Client talks to the registration API over HTTP and satisfies Registrar,
// SMSSender and EmailSender.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

type apiError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Register(ctx context.Context, d registration.Draft) (registration.Registration, error) {
	body := registrationBody(d)

	var resp struct {
		UUID    string `json:"uuid"`
		RefCode string `json:"refCode"`
	}

	status, apiErr, err := c.post(ctx, "/api/register", body, &resp)

	if err != nil {
		return registration.Registration{}, err
	}

	switch {
	case status == http.StatusCreated:
		return registration.Registration{ID: resp.UUID, RefCode: resp.RefCode}, nil
	case status == http.StatusConflict && apiErr.Code == "duplicate_name":
		return registration.Registration{}, registration.ErrDuplicateName
	default:
		return registration.Registration{}, apiFailure(status, apiErr)
	}
}

func (c *Client) SendSMS(ctx context.Context, req SMSRequest) error {
	status, apiErr, err := c.post(ctx, "/api/send-sms", req, nil)

	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return apiFailure(status, apiErr)
	}

	return nil
}

func (c *Client) SendEmail(ctx context.Context, req EmailRequest) error {
	status, apiErr, err := c.post(ctx, "/api/send-email", req, nil)

	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return apiFailure(status, apiErr)
	}

	return nil
}

// post sends one JSON request and decodes either the success shape into out
// or the flat error envelope. Transport failures come back as err; API-level
// failures come back through the status and envelope.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) (int, apiError, error) {
	raw, err := json.Marshal(body)

	if err != nil {
		return 0, apiError{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))

	if err != nil {
		return 0, apiError{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)

	if err != nil {
		return 0, apiError{}, err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if err != nil {
		return 0, apiError{}, err
	}

	if resp.StatusCode >= 400 {
		var e apiError

		// a non-JSON error body still carries the status
		_ = json.Unmarshal(data, &e)

		return resp.StatusCode, e, nil
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, apiError{}, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, apiError{}, nil
}

func apiFailure(status int, e apiError) error {
	if e.Message != "" {
		return fmt.Errorf("api status %d: %s", status, e.Message)
	}

	return fmt.Errorf("api status %d", status)
}

// registrationBody flattens the tagged draft back into the wire form the
// register endpoint binds.
func registrationBody(d registration.Draft) map[string]interface{} {
	body := map[string]interface{}{
		"firstName":      d.FirstName,
		"lastName":       d.LastName,
		"email":          d.Email,
		"phone":          d.Phone,
		"orgName":        d.OrgName,
		"orgTypeId":      d.OrgType.ID,
		"locationType":   string(d.LocationType),
		"transport":      string(d.Transport),
		"attendanceType": string(d.Attendance),
		"consent":        d.Consent,
	}

	if d.OrgType.IsOther() {
		body["orgTypeOther"] = d.OrgType.Other
	}

	if d.DistrictID > 0 {
		body["districtId"] = d.DistrictID
	}

	if d.ProvinceID > 0 {
		body["provinceId"] = d.ProvinceID
	}

	if !d.PublicSubType.IsZero() {
		body["publicSubTypeId"] = d.PublicSubType.ID

		if d.PublicSubType.IsOther() {
			body["publicSubTypeOther"] = d.PublicSubType.Other
		}
	}

	if !d.PrivateVehicle.IsZero() {
		body["privateVehicleId"] = d.PrivateVehicle.ID

		if d.PrivateVehicle.IsOther() {
			body["privateVehicleOther"] = d.PrivateVehicle.Other
		}
	}

	if !d.FuelType.IsZero() {
		body["fuelTypeId"] = d.FuelType.ID

		if d.FuelType.IsOther() {
			body["fuelTypeOther"] = d.FuelType.Other
		}
	}

	if d.PassengerType != "" {
		body["passengerType"] = string(d.PassengerType)
	}

	if d.SelectedRoomID > 0 {
		body["selectedRoomId"] = d.SelectedRoomID
	}

	return body
}
