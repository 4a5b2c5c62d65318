package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// The rejection paths below all fail before any repository call, so the
// handlers can be built as empty struct literals.

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func errorField(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestCreateBookingRejectsIncompleteBody(t *testing.T) {
	h := &BookingHandler{}

	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing slot", `{"turfId":1,"userEmail":"a@b.c","date":"01/01/2030","paymentMethod":"upi"}`},
		{"missing email", `{"turfId":1,"date":"01/01/2030","slot":"12-13","paymentMethod":"upi"}`},
		{"missing turf", `{"userEmail":"a@b.c","date":"01/01/2030","slot":"12-13","paymentMethod":"upi"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/bookings", tc.body)
			require.NoError(t, h.Create(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "missing required fields", errorField(t, rec))
		})
	}
}

func TestCreateBookingRejectsMalformedJSON(t *testing.T) {
	h := &BookingHandler{}
	c, rec := newTestContext(t, http.MethodPost, "/bookings", `{"turfId":`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid request body", errorField(t, rec))
}

func TestUpdateStatusRejectsBadInput(t *testing.T) {
	h := &BookingHandler{}

	c, rec := newTestContext(t, http.MethodPatch, "/bookings/abc/status", `{"status":"CONFIRMED"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.UpdateStatus(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid booking id", errorField(t, rec))

	// CANCELLED is not part of the status set; only PENDING, CONFIRMED
	// and DECLINED pass.
	for _, status := range []string{"CANCELLED", "confirmed", ""} {
		c, rec = newTestContext(t, http.MethodPatch, "/bookings/1/status", `{"status":"`+status+`"}`)
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, h.UpdateStatus(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid status", errorField(t, rec))
	}
}

func TestDeleteBookingRejectsBadID(t *testing.T) {
	h := &BookingHandler{}
	for _, id := range []string{"abc", "0", "-1"} {
		c, rec := newTestContext(t, http.MethodDelete, "/bookings/"+id, "")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.Delete(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid booking id", errorField(t, rec))
	}
}

func TestListBookingsRejectsBadOwnerID(t *testing.T) {
	h := &BookingHandler{}
	c, rec := newTestContext(t, http.MethodGet, "/bookings?ownerId=abc", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid ownerId", errorField(t, rec))
}

func TestCreateTurfRejectsIncompleteBody(t *testing.T) {
	h := &TurfHandler{}

	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing rent", `{"name":"Green Arena","city":"Pune"}`},
		{"missing city", `{"name":"Green Arena","rent":1200}`},
		{"missing name", `{"city":"Pune","rent":1200}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/turfs", tc.body)
			require.NoError(t, h.Create(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "missing required fields", errorField(t, rec))
		})
	}
}

func TestListTurfsRejectsBadOwnerID(t *testing.T) {
	h := &TurfHandler{}
	c, rec := newTestContext(t, http.MethodGet, "/turfs?ownerId=xyz", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid ownerId", errorField(t, rec))
}
