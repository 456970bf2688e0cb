package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultCommentPageLimit = 10

type createCommentRequest struct {
	Content  string `json:"content"`
	PostID   uint   `json:"post_id"`
	ParentID *uint  `json:"parent_id"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleListPostComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post id"))
	}

	page := parsePagination(c, defaultCommentPageLimit)
	comments, meta, err := s.comments.ListPostComments(c.UserContext(), postID, page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments":   comments,
		"pagination": meta,
	})
}

func (s *Server) handleListReplies(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid comment id"))
	}

	replies, err := s.comments.ListReplies(c.UserContext(), commentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"replies": replies})
}

func (s *Server) handleListUserComments(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user id"))
	}

	page := parsePagination(c, defaultCommentPageLimit)
	comments, meta, err := s.comments.ListUserComments(c.UserContext(), userID, page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments":   comments,
		"pagination": meta,
	})
}

func (s *Server) handleCreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("post_id is required"))
	}

	comment, err := s.comments.CreateComment(c.UserContext(), currentUserID(c), req.PostID, req.ParentID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

func (s *Server) handleUpdateComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid comment id"))
	}

	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.comments.UpdateComment(c.UserContext(), currentUserID(c), commentID, req.Content); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment updated successfully"})
}

func (s *Server) handleDeleteComment(c *fiber.Ctx) error {
	commentID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid comment id"))
	}

	userID := currentUserID(c)
	isAdmin := s.isAdminByUserID(c.UserContext(), userID)
	if err := s.comments.DeleteComment(c.UserContext(), userID, isAdmin, commentID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
