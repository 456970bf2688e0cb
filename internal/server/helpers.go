package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a positive numeric route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id64 == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id64), nil
}

// parsePagination coerces page and limit query params to integers.
// Non-numeric input falls back to the defaults; values are not clamped.
func parsePagination(c *fiber.Ctx, defaultLimit int) pagination.Params {
	return pagination.Params{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", defaultLimit),
	}
}

// currentUserID returns the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Internal errors are logged with their cause and surfaced as a
// generic 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		middleware.Logger.ErrorContext(c.UserContext(), "unexpected error",
			slog.String("error", err.Error()),
		)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	case "VALIDATION_ERROR":
		status = fiber.StatusBadRequest
	case "UNAUTHORIZED":
		status = fiber.StatusUnauthorized
	case "FORBIDDEN":
		status = fiber.StatusForbidden
	default:
		middleware.Logger.ErrorContext(c.UserContext(), "internal error",
			slog.String("error", appErr.Error()),
		)
	}
	return models.RespondWithError(c, status, appErr)
}

// isAdminByUserID checks the stored role rather than trusting the token
// claim, so a demotion takes effect before the token expires.
func (s *Server) isAdminByUserID(ctx context.Context, userID uint) bool {
	var role string
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role").
		Where("id = ?", userID).
		Scan(&role).Error
	if err != nil {
		return false
	}
	return role == models.RoleAdmin
}
