package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/core/ports"
)

// InternshipHandler serves listings publicly and the management surface to
// admins (the router guards the mutating routes with RBAC).
type InternshipHandler struct {
	internships ports.InternshipService
}

func NewInternshipHandler(internships ports.InternshipService) *InternshipHandler {
	return &InternshipHandler{internships: internships}
}

// List handles GET /api/internships.
//
// @Summary      List active internships
// @Tags         internships
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/internships [get]
func (h *InternshipHandler) List(c echo.Context) error {
	listings, err := h.internships.ListInternships(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{
		"internships": listings,
		"count":       len(listings),
	})
}

// Get handles GET /api/internships/:id.
//
// @Summary      Get an internship by id
// @Tags         internships
// @Produce      json
// @Param        id   path      string  true  "Internship id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/internships/{id} [get]
func (h *InternshipHandler) Get(c echo.Context) error {
	listing, err := h.internships.GetInternship(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"internship": listing})
}

// Create handles POST /api/internships (admin only).
//
// @Summary      Create an internship listing
// @Tags         internships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      internshipRequest  true  "Listing details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /api/internships [post]
func (h *InternshipHandler) Create(c echo.Context) error {
	var req internshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.internships.CreateInternship(c.Request().Context(), toInternshipInput(req))
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, "Internship created successfully", echo.Map{"internship": listing})
}

// Update handles PUT /api/internships/:id (admin only).
//
// @Summary      Update an internship listing
// @Tags         internships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Internship id"
// @Param        body  body      internshipRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/internships/{id} [put]
func (h *InternshipHandler) Update(c echo.Context) error {
	var req internshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.internships.UpdateInternship(c.Request().Context(), c.Param("id"), toInternshipInput(req))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Internship updated successfully", echo.Map{"internship": listing})
}

// Delete handles DELETE /api/internships/:id (admin only).
//
// @Summary      Delete an internship listing
// @Tags         internships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Internship id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/internships/{id} [delete]
func (h *InternshipHandler) Delete(c echo.Context) error {
	if err := h.internships.DeleteInternship(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Internship deleted successfully", nil)
}

func toInternshipInput(req internshipRequest) ports.InternshipInput {
	return ports.InternshipInput{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Icon:                req.Icon,
		Description:         req.Description,
		Tags:                req.Tags,
		Category:            req.Category,
		Duration:            req.Duration,
		Stipend:             req.Stipend,
		Type:                req.Type,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		IsActive:            req.IsActive,
		ApplicationDeadline: req.ApplicationDeadline,
	}
}
