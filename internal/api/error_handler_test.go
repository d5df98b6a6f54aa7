package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/elevare/platform-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorEnvelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandlerDomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation",
			err:      fmt.Errorf("%w: name is required", domain.ErrValidation),
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation failed: name is required",
		},
		{
			name:     "email taken",
			err:      domain.ErrEmailTaken,
			wantCode: http.StatusBadRequest,
			wantMsg:  domain.ErrEmailTaken.Error(),
		},
		{
			name:     "duplicate entry",
			err:      fmt.Errorf("%w: already enrolled in this course", domain.ErrDuplicateEntry),
			wantCode: http.StatusBadRequest,
			wantMsg:  "entry already exists: already enrolled in this course",
		},
		{
			name:     "invalid credentials",
			err:      domain.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantMsg:  domain.ErrInvalidCredentials.Error(),
		},
		{
			name:     "forbidden",
			err:      domain.ErrForbidden,
			wantCode: http.StatusForbidden,
			wantMsg:  "access forbidden",
		},
		{
			name:     "user not found",
			err:      domain.ErrUserNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  domain.ErrUserNotFound.Error(),
		},
		{
			name:     "enrollment entry not found",
			err:      fmt.Errorf("%w: course not found in enrolled courses", domain.ErrEntryNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "entry not found: course not found in enrolled courses",
		},
		{
			name:     "internship not found",
			err:      domain.ErrInternshipNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  domain.ErrInternshipNotFound.Error(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("status = %d, want %d", code, tc.wantCode)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tc.wantMsg)
			}
		})
	}
}

func TestHTTPErrorHandlerEchoErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
	if body.Message != "missing authorization header" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestHTTPErrorHandlerUnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", code)
	}
	if body.Message != "internal server error" {
		t.Errorf("message = %q, internal details must not leak", body.Message)
	}
}
