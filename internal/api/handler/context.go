package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/core/domain"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Success: true, Message: message, Data: data})
}

// requireSelfOrAdmin checks that the authenticated caller either owns the
// targeted user document or carries the admin role. The role claim doubles as
// proof that the Auth middleware ran.
func requireSelfOrAdmin(c echo.Context, targetUserID string) error {
	role, _ := c.Get("role").(string)
	if role == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if role == domain.RoleAdmin {
		return nil
	}
	userID, _ := c.Get("user_id").(string)
	if userID == "" || userID != targetUserID {
		return domain.ErrForbidden
	}
	return nil
}
