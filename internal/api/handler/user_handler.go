package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/api/metrics"
	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/ports"
)

// UserHandler handles profile reads and every user-aggregate mutation.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"user": user})
}

// UpdateProfile handles PUT /api/users/:id.
//
// @Summary      Update profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), id, ports.UpdateProfileInput{
		Name:     req.Name,
		UserType: req.UserType,
		Year:     req.Year,
		Location: req.Location,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Profile updated successfully", echo.Map{"user": user})
}

// Enroll handles POST /api/users/:id/enroll.
//
// @Summary      Enroll the user in a course
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "User id"
// @Param        body  body      enrollRequest  true  "Course to enroll in"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/{id}/enroll [post]
func (h *UserHandler) Enroll(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.users.Enroll(c.Request().Context(), id, ports.EnrollInput{
		CourseID:    req.CourseID,
		CourseTitle: req.CourseTitle,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			metrics.DuplicateEntriesTotal.WithLabelValues("enrollment").Inc()
		}
		return err
	}

	metrics.EnrollmentsTotal.Inc()
	return ok(c, http.StatusOK, "Successfully enrolled in course", echo.Map{"enrolledCourse": entry})
}

// UpdateCourseProgress handles PUT /api/users/:id/courses/:courseId.
//
// @Summary      Update course progress or status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string               true  "User id"
// @Param        courseId  path      string               true  "Course id"
// @Param        body      body      updateCourseRequest  true  "Fields to update"
// @Success      200       {object}  envelope
// @Failure      400       {object}  map[string]any
// @Failure      404       {object}  map[string]any
// @Router       /api/users/{id}/courses/{courseId} [put]
func (h *UserHandler) UpdateCourseProgress(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.users.UpdateEnrollmentProgress(c.Request().Context(), id, c.Param("courseId"), ports.UpdateEnrollmentInput{
		Progress: req.Progress,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Course progress updated", echo.Map{"course": entry})
}

// ApplyInternship handles POST /api/users/:id/apply-internship.
//
// @Summary      Apply for an internship
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "User id"
// @Param        body  body      applyInternshipRequest  true  "Application details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/{id}/apply-internship [post]
func (h *UserHandler) ApplyInternship(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req applyInternshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.ApplyInput{
		InternshipID:    req.InternshipID,
		InternshipTitle: req.InternshipTitle,
		Company:         req.InternshipCompany,
		ApplicantName:   req.ApplicantName,
		ApplicantEmail:  req.ApplicantEmail,
		ApplicantPhone:  req.ApplicantPhone,
		CoverLetter:     req.CoverLetter,
	}
	if req.AppliedDate != "" {
		appliedAt, err := time.Parse(time.RFC3339, req.AppliedDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "appliedDate must be RFC 3339")
		}
		input.AppliedAt = &appliedAt
	}

	entry, err := h.users.ApplyToInternship(c.Request().Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			metrics.DuplicateEntriesTotal.WithLabelValues("application").Inc()
		}
		return err
	}

	metrics.ApplicationsTotal.Inc()
	return ok(c, http.StatusOK, "Successfully applied for internship", echo.Map{"appliedInternship": entry})
}

// BookSession handles POST /api/users/:id/book-session.
//
// @Summary      Book a mentorship session
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "User id"
// @Param        body  body      bookSessionRequest  true  "Session details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/{id}/book-session [post]
func (h *UserHandler) BookSession(c echo.Context) error {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req bookSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scheduledDate, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "scheduledDate must be RFC 3339")
	}

	entry, err := h.users.BookSession(c.Request().Context(), id, ports.BookSessionInput{
		SessionID:     req.SessionID,
		MentorName:    req.MentorName,
		Topic:         req.Topic,
		ScheduledDate: scheduledDate,
		Duration:      req.Duration,
		MeetingLink:   req.MeetingLink,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			metrics.DuplicateEntriesTotal.WithLabelValues("session").Inc()
		}
		return err
	}

	metrics.SessionsBookedTotal.Inc()
	return ok(c, http.StatusOK, "Successfully booked mentorship session", echo.Map{"bookedSession": entry})
}
