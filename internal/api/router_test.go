package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/auth"
	"github.com/linguanest/lingua-back/internal/config"
	"github.com/linguanest/lingua-back/internal/models"
)

// These tests cover request validation and route guarding, the paths that
// settle before any database work.

func testRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTTTL:      time.Hour,
		CORSOrigins: []string{"http://localhost:3000"},
	}
	return SetupRouter(cfg, zap.NewNop()), cfg
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := auth.IssueToken(cfg, &models.AdminUser{ID: "u-1", Username: "admin", Role: "admin"})
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := testRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/testimonials/pending"},
		{http.MethodGet, "/api/contact/messages"},
		{http.MethodPost, "/api/courses"},
		{http.MethodDelete, "/api/courses/c-1"},
	} {
		w := doJSON(r, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	w := doJSON(r, http.MethodGet, "/api/bookings", "", "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A token signed with a different secret is rejected too.
	other := &config.Config{JWTSecret: "other", JWTTTL: time.Hour}
	foreign := adminToken(t, other)
	w = doJSON(r, http.MethodGet, "/api/bookings", "", foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBookingValidation(t *testing.T) {
	r, _ := testRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"bad email", `{"studentName":"Ada","studentEmail":"not-an-email","studentPhone":"123","courseId":"c-1","date":"2026-09-01","time":"10:00"}`},
		{"bad date", `{"studentName":"Ada","studentEmail":"ada@example.com","studentPhone":"123","courseId":"c-1","date":"01/09/2026","time":"10:00"}`},
		{"bad time", `{"studentName":"Ada","studentEmail":"ada@example.com","studentPhone":"123","courseId":"c-1","date":"2026-09-01","time":"10am"}`},
		{"missing course", `{"studentName":"Ada","studentEmail":"ada@example.com","studentPhone":"123","date":"2026-09-01","time":"10:00"}`},
	}
	for _, tc := range cases {
		w := doJSON(r, http.MethodPost, "/api/bookings", tc.body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
	}
}

func TestContactValidation(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/contact", `{"name":"Ada","email":"nope","subject":"Hi","message":"Hello"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/contact", `{"email":"ada@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestimonialValidation(t *testing.T) {
	r, _ := testRouter(t)

	// Rating outside 1..5 never reaches storage.
	w := doJSON(r, http.MethodPost, "/api/testimonials", `{"studentName":"Ada","course":"Turkish","rating":6,"comment":"great"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/testimonials", `{"studentName":"Ada","course":"Turkish","rating":0,"comment":"great"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseValidation(t *testing.T) {
	r, cfg := testRouter(t)
	token := adminToken(t, cfg)

	// Unknown weekday in the schedule.
	w := doJSON(r, http.MethodPost, "/api/courses",
		`{"title":"Turkish","language":"Turkish","level":"Beginner","duration":60,"maxStudents":5,"schedule":["Funday"]}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unsupported language.
	w = doJSON(r, http.MethodPost, "/api/courses",
		`{"title":"Klingon","language":"Klingon","level":"Beginner","duration":60,"maxStudents":5}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown level.
	w = doJSON(r, http.MethodPost, "/api/courses",
		`{"title":"Turkish","language":"Turkish","level":"Expert","duration":60,"maxStudents":5}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingStatusValidation(t *testing.T) {
	r, cfg := testRouter(t)
	token := adminToken(t, cfg)

	// No status in body or query.
	w := doJSON(r, http.MethodPatch, "/api/bookings/b-1/status", ``, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown status string.
	w = doJSON(r, http.MethodPatch, "/api/bookings/b-1/status", `{"status":"archived"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/bookings/b-1/status?status=archived", ``, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
