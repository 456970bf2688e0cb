package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultAdminPageLimit = 20

func (s *Server) handleAdminDashboard(c *fiber.Ctx) error {
	totals, err := s.admin.Dashboard(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"totals": totals})
}

func (s *Server) handleAdminListUsers(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminPageLimit)
	users, meta, err := s.admin.ListUsers(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"users":      users,
		"pagination": meta,
	})
}

func (s *Server) handleAdminListPosts(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminPageLimit)
	posts, meta, err := s.admin.ListPosts(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": meta,
	})
}

func (s *Server) handleAdminListComments(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminPageLimit)
	comments, meta, err := s.admin.ListComments(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments":   comments,
		"pagination": meta,
	})
}

func (s *Server) handleAdminAnalytics(c *fiber.Ctx) error {
	analytics, err := s.admin.Analytics(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(analytics)
}

type setRoleRequest struct {
	Role string `json:"role"`
}

func (s *Server) handleAdminSetRole(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user id"))
	}

	var req setRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if err := s.admin.SetUserRole(c.UserContext(), userID, req.Role); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role updated successfully"})
}

func (s *Server) handleAdminDeleteUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user id"))
	}

	if userID == currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot delete your own account"))
	}

	if err := s.admin.DeleteUser(c.UserContext(), userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
