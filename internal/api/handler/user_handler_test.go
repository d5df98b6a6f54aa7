package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/core/domain"
)

func newUserContext(method, target, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newTestContext(method, target, body)
	if userID != "" {
		c.Set("user_id", userID)
	}
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestEnrollSelf(t *testing.T) {
	svc := &stubUserService{enrollOut: &domain.Enrollment{
		CourseID:    "course-101",
		CourseTitle: "Intro to Go",
		Status:      domain.EnrollmentInProgress,
	}}
	h := NewUserHandler(svc)

	c, rec := newUserContext(http.MethodPost, "/api/users/user-1/enroll", `{
		"courseId": "course-101",
		"courseTitle": "Intro to Go"
	}`, "user-1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.Enroll(c); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Successfully enrolled in course" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestEnrollOtherUserForbidden(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newUserContext(http.MethodPost, "/api/users/user-2/enroll", `{
		"courseId": "course-101",
		"courseTitle": "Intro to Go"
	}`, "user-1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("user-2")

	if err := h.Enroll(c); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Enroll() error = %v, want ErrForbidden", err)
	}
}

func TestEnrollAdminMayActOnAnyUser(t *testing.T) {
	svc := &stubUserService{enrollOut: &domain.Enrollment{CourseID: "course-101"}}
	h := NewUserHandler(svc)

	c, rec := newUserContext(http.MethodPost, "/api/users/user-2/enroll", `{
		"courseId": "course-101",
		"courseTitle": "Intro to Go"
	}`, "admin-1", domain.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("user-2")

	if err := h.Enroll(c); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestEnrollMissingClaimsUnauthorized(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPost, "/api/users/user-1/enroll", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := h.Enroll(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Errorf("Enroll() error = %v, want 401 HTTPError", err)
	}
}

func TestApplyInternshipIgnoresClientStatus(t *testing.T) {
	svc := &stubUserService{applyOut: &domain.Application{
		InternshipID: "intern-1",
		Status:       domain.ApplicationPending,
	}}
	h := NewUserHandler(svc)

	// A "status" key in the payload has no field to bind to and is dropped.
	c, rec := newUserContext(http.MethodPost, "/api/users/user-1/apply-internship", `{
		"internshipId": "intern-1",
		"internshipTitle": "Frontend Developer Intern",
		"internshipCompany": "TechCorp Inc.",
		"status": "Accepted"
	}`, "user-1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.ApplyInternship(c); err != nil {
		t.Fatalf("ApplyInternship() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if svc.applyIn.Company != "TechCorp Inc." {
		t.Errorf("service received company %q", svc.applyIn.Company)
	}
	if !strings.Contains(rec.Body.String(), `"status":"Pending"`) {
		t.Errorf("response status not Pending: %s", rec.Body.String())
	}
}

func TestApplyInternshipBadAppliedDate(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newUserContext(http.MethodPost, "/api/users/user-1/apply-internship", `{
		"internshipId": "intern-1",
		"internshipTitle": "Frontend Developer Intern",
		"internshipCompany": "TechCorp Inc.",
		"appliedDate": "yesterday"
	}`, "user-1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := h.ApplyInternship(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("ApplyInternship() error = %v, want 400 HTTPError", err)
	}
}

func TestApplyInternshipValidAppliedDateForwarded(t *testing.T) {
	svc := &stubUserService{applyOut: &domain.Application{InternshipID: "intern-1"}}
	h := NewUserHandler(svc)

	c, _ := newUserContext(http.MethodPost, "/api/users/user-1/apply-internship", `{
		"internshipId": "intern-1",
		"internshipTitle": "Frontend Developer Intern",
		"internshipCompany": "TechCorp Inc.",
		"appliedDate": "2026-02-01T12:00:00Z"
	}`, "user-1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.ApplyInternship(c); err != nil {
		t.Fatalf("ApplyInternship() error = %v", err)
	}
	want := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	if svc.applyIn.AppliedAt == nil || !svc.applyIn.AppliedAt.Equal(want) {
		t.Errorf("appliedAt = %v, want %v", svc.applyIn.AppliedAt, want)
	}
}

func TestBookSessionRequiresScheduledDate(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newUserContext(http.MethodPost, "/api/users/user-1/book-session", `{
		"sessionId": "session-1",
		"mentorName": "Dr. Mehta",
		"topic": "Career planning"
	}`, "user-1", domain.RoleStudent)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	err := h.BookSession(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("BookSession() error = %v, want 400 HTTPError", err)
	}
}
