package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultPostPageLimit = 10

func (s *Server) handleListPosts(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPostPageLimit)
	posts, meta, err := s.posts.ListPosts(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": meta,
	})
}

func (s *Server) handleListUserPosts(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user id"))
	}

	page := parsePagination(c, defaultPostPageLimit)
	posts, meta, err := s.posts.GetUserPosts(c.UserContext(), userID, page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":      posts,
		"pagination": meta,
	})
}

func (s *Server) handleGetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post id"))
	}

	viewerID, viewerIsAdmin := s.optionalAuth(c)
	post, err := s.posts.GetPost(c.UserContext(), id, viewerID, viewerIsAdmin)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

func (s *Server) handleCreatePost(c *fiber.Ctx) error {
	var input service.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.posts.CreatePost(c.UserContext(), currentUserID(c), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

func (s *Server) handleUpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post id"))
	}

	var input service.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	post, err := s.posts.UpdatePost(c.UserContext(), userID, s.isAdminByUserID(c.UserContext(), userID), id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (s *Server) handleDeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post id"))
	}

	userID := currentUserID(c)
	if err := s.posts.DeletePost(c.UserContext(), userID, s.isAdminByUserID(c.UserContext(), userID), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

func (s *Server) handleToggleLike(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post id"))
	}

	liked, err := s.posts.ToggleLike(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	message := "Post liked"
	if !liked {
		message = "Post unliked"
	}
	return c.JSON(fiber.Map{
		"message": message,
		"liked":   liked,
	})
}

func (s *Server) handleGetLikeStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post id"))
	}

	liked, err := s.posts.IsLiked(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}
