package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguanest/lingua-back/internal/models"
)

func TestBookingRequestWireFormat(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bookings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{ID: "b-1", Status: models.BookingPending})
	}))
	defer srv.Close()

	c := New(srv.URL)
	booking, err := c.CreateBooking(context.Background(), BookingRequest{
		StudentName:  "Ada",
		StudentEmail: "ada@example.com",
		StudentPhone: "+90 532 000 0000",
		CourseID:     "c-1",
		Date:         "2026-09-01",
		Time:         "10:00",
		Message:      "looking forward to it",
	})
	require.NoError(t, err)
	require.Equal(t, "b-1", booking.ID)

	// The form payload carries exactly these keys; id, status, and createdAt
	// are assigned server-side.
	want := []string{"studentName", "studentEmail", "studentPhone", "courseId", "date", "time", "message"}
	var got []string
	for k := range body {
		got = append(got, k)
	}
	assert.ElementsMatch(t, want, got)
}

func TestNonSuccessBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Courses(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "API Error")
}

func TestTokenSourceAttachesBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Course{})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(StaticToken("tok-123")))
	_, err := c.Courses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// An empty token means no header at all.
	c = New(srv.URL, WithTokenSource(StaticToken("")))
	_, err = c.Courses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUpdateBookingStatusBody(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/bookings/b-1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.Booking{ID: "b-1", Status: body["status"]})
	}))
	defer srv.Close()

	c := New(srv.URL)
	booking, err := c.UpdateBookingStatus(context.Background(), "b-1", models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, map[string]string{"status": "confirmed"}, body)
}
