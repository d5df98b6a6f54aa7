package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/ports"
)

// stubUserService records calls and returns canned results.
type stubUserService struct {
	registerIn  ports.RegisterInput
	registerOut *domain.User
	registerErr error

	loginEmail    string
	loginPassword string
	loginToken    string
	loginUser     *domain.User
	loginErr      error

	enrollIn  ports.EnrollInput
	enrollOut *domain.Enrollment
	enrollErr error

	applyIn  ports.ApplyInput
	applyOut *domain.Application
	applyErr error
}

func (s *stubUserService) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.registerIn = in
	return s.registerOut, s.registerErr
}

func (s *stubUserService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.loginEmail, s.loginPassword = email, password
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubUserService) GetUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) UpdateProfile(context.Context, string, ports.UpdateProfileInput) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Enroll(_ context.Context, _ string, in ports.EnrollInput) (*domain.Enrollment, error) {
	s.enrollIn = in
	return s.enrollOut, s.enrollErr
}

func (s *stubUserService) UpdateEnrollmentProgress(context.Context, string, string, ports.UpdateEnrollmentInput) (*domain.Enrollment, error) {
	return nil, domain.ErrEntryNotFound
}

func (s *stubUserService) ApplyToInternship(_ context.Context, _ string, in ports.ApplyInput) (*domain.Application, error) {
	s.applyIn = in
	return s.applyOut, s.applyErr
}

func (s *stubUserService) BookSession(context.Context, string, ports.BookSessionInput) (*domain.Session, error) {
	return nil, domain.ErrUserNotFound
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignup(t *testing.T) {
	svc := &stubUserService{registerOut: &domain.User{
		ID:    "user-1",
		Name:  "Asha Kumar",
		Email: "asha@example.com",
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/signup", `{
		"name": "Asha Kumar",
		"email": "asha@example.com",
		"password": "supersecret"
	}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if svc.registerIn.Email != "asha@example.com" {
		t.Errorf("service received email %q", svc.registerIn.Email)
	}
}

func TestSignupValidation(t *testing.T) {
	h := NewAuthHandler(&stubUserService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","password":"supersecret"}`},
		{"bad email", `{"name":"A","email":"not-an-email","password":"supersecret"}`},
		{"short password", `{"name":"A","email":"a@b.com","password":"123"}`},
		{"bad userType", `{"name":"A","email":"a@b.com","password":"supersecret","userType":"Alumni"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/api/auth/signup", tc.body)

			err := h.Signup(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Errorf("Signup() error = %v, want 400 HTTPError", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc := &stubUserService{
		loginToken: "signed.jwt.token",
		loginUser:  &domain.User{ID: "user-1", Email: "asha@example.com"},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login", `{
		"email": "asha@example.com",
		"password": "supersecret"
	}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Token != "signed.jwt.token" {
		t.Errorf("token = %q", resp.Data.Token)
	}
	if svc.loginPassword != "supersecret" {
		t.Errorf("service received password %q", svc.loginPassword)
	}
}

func TestLoginBadCredentialsPropagates(t *testing.T) {
	svc := &stubUserService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/api/auth/login", `{
		"email": "asha@example.com",
		"password": "wrong"
	}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials passthrough", err)
	}
}
