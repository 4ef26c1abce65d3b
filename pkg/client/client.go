// Package client is the typed Go SDK for the LinguaNest API. It is consumed
// by the admin CLI and by integration tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/linguanest/lingua-back/internal/models"
)

// DefaultBaseURL matches the server's default listen address.
const DefaultBaseURL = "http://localhost:8080/api"

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request is sent unauthenticated. Passing the source in
// explicitly (rather than a package-level token variable) keeps concurrent
// sessions independent and testable.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) newRequest(ctx context.Context, method, path string, in interface{}) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// do issues a JSON round trip. A non-2xx response becomes an *APIError with
// the status text; a 2xx body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// LoginResult is the /auth/login response.
type LoginResult struct {
	Token string           `json:"token"`
	User  models.AdminUser `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Courses

func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) Course(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+id, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	var created models.Course
	if err := c.do(ctx, http.MethodPost, "/courses", course, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, course *models.Course) (*models.Course, error) {
	var updated models.Course
	if err := c.do(ctx, http.MethodPut, "/courses/"+id, course, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+id, nil, nil)
}

// Bookings

// BookingRequest is the booking form payload. The field set matches the form
// exactly: no id, status, or createdAt — those are assigned server-side.
type BookingRequest struct {
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	StudentPhone string `json:"studentPhone"`
	CourseID     string `json:"courseId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Message      string `json:"message"`
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	body := map[string]string{"status": status}
	var booking models.Booking
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+id+"/status", body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ExportBookings downloads the bookings xlsx export into w.
func (c *Client) ExportBookings(ctx context.Context, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/bookings/export", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	return nil
}

// Testimonials

func (c *Client) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := c.do(ctx, http.MethodGet, "/testimonials", nil, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (c *Client) PendingTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := c.do(ctx, http.MethodGet, "/testimonials/pending", nil, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (c *Client) ApproveTestimonial(ctx context.Context, id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := c.do(ctx, http.MethodPatch, "/testimonials/"+id+"/approve", nil, &testimonial); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/testimonials/"+id, nil, nil)
}

// Contact

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Client) SendContactMessage(ctx context.Context, req ContactRequest) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := c.do(ctx, http.MethodPost, "/contact", req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/contact/messages", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := c.do(ctx, http.MethodPatch, "/contact/messages/"+id+"/read", nil, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/contact/messages/"+id, nil, nil)
}

// Teachers

func (c *Client) Teachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := c.do(ctx, http.MethodGet, "/teachers", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
