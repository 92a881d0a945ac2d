//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// End-to-end booking flow against a running service: catalog setup, a
// successful reservation, a conflicting one, cancellation, and re-booking.
func TestAPI_BookingFlow(t *testing.T) {
	waitForService(t)

	var hotelID, roomID, bookingID float64

	t.Run("Step1_CreateHotel", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/api/v1/hotels", map[string]any{
			"name":    "Riverside Grand",
			"city":    "Bangkok",
			"country": "Thailand",
			"rating":  4.5,
		}, adminHeaders())
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		hotelID = body["id"].(float64)
	})

	t.Run("Step2_CreateRoom", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/api/v1/rooms", map[string]any{
			"hotel_id":        hotelID,
			"room_number":     fmt.Sprintf("api-%d", time.Now().UnixNano()),
			"type":            "Double",
			"price_per_night": 100,
			"capacity":        2,
			"bed_type":        "Queen",
		}, adminHeaders())
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		roomID = body["id"].(float64)
	})

	t.Run("Step3_CreateBooking", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/api/v1/bookings", map[string]any{
			"hotel_id":  hotelID,
			"room_id":   roomID,
			"check_in":  "2030-03-01T00:00:00Z",
			"check_out": "2030-03-04T00:00:00Z",
			"guests":    map[string]any{"adults": 2, "children": 0},
		}, userHeaders("guest-1"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		bookingID = body["id"].(float64)
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, float64(300), body["total_price"], "3 nights at 100 per night")
	})

	t.Run("Step4_OverlappingBookingConflicts", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/api/v1/bookings", map[string]any{
			"hotel_id":  hotelID,
			"room_id":   roomID,
			"check_in":  "2030-03-02T00:00:00Z",
			"check_out": "2030-03-06T00:00:00Z",
			"guests":    map[string]any{"adults": 1},
		}, userHeaders("guest-2"))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Step5_AvailabilityEndpoint", func(t *testing.T) {
		url := fmt.Sprintf("/api/v1/rooms/%.0f/availability?check_in=2030-03-02&check_out=2030-03-06", roomID)
		resp := doJSON(t, http.MethodGet, url, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		assert.Equal(t, false, body["available"])
	})

	t.Run("Step6_StrangerCannotCancel", func(t *testing.T) {
		url := fmt.Sprintf("/api/v1/bookings/%.0f/status", bookingID)
		resp := doJSON(t, http.MethodPatch, url, map[string]any{
			"status":              "cancelled",
			"cancellation_reason": "not mine",
		}, userHeaders("guest-2"))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Step7_OwnerCancels", func(t *testing.T) {
		url := fmt.Sprintf("/api/v1/bookings/%.0f/status", bookingID)
		resp := doJSON(t, http.MethodPatch, url, map[string]any{
			"status":              "cancelled",
			"cancellation_reason": "change of plans",
		}, userHeaders("guest-1"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		assert.Equal(t, "cancelled", body["status"])
	})

	t.Run("Step8_CancelledRangeRebookable", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, "/api/v1/bookings", map[string]any{
			"hotel_id":  hotelID,
			"room_id":   roomID,
			"check_in":  "2030-03-01T00:00:00Z",
			"check_out": "2030-03-04T00:00:00Z",
			"guests":    map[string]any{"adults": 2},
		}, userHeaders("guest-2"))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func adminHeaders() map[string]string {
	return map[string]string{"X-User-ID": "admin-1", "X-User-Role": "admin"}
}

func userHeaders(id string) map[string]string {
	return map[string]string{"X-User-ID": id, "X-User-Role": "user"}
}

func doJSON(t *testing.T, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready")
}
