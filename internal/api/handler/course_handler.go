package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/core/ports"
)

// CourseHandler serves the public course catalog.
type CourseHandler struct {
	courses ports.CourseService
}

func NewCourseHandler(courses ports.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List handles GET /api/courses.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courses.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"courses": courses})
}

// ListByLevel handles GET /api/courses/level/:level.
//
// @Summary      List courses filtered by level
// @Tags         courses
// @Produce      json
// @Param        level  path      string  true  "Course level (beginner, intermediate, advanced)"
// @Success      200    {object}  envelope
// @Failure      400    {object}  map[string]any
// @Router       /api/courses/level/{level} [get]
func (h *CourseHandler) ListByLevel(c echo.Context) error {
	courses, err := h.courses.ListCoursesByLevel(c.Request().Context(), c.Param("level"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"courses": courses})
}

// Get handles GET /api/courses/:id.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.courses.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"course": course})
}
