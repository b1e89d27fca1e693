package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetConversations handles GET /api/conversations
func (s *Server) GetConversations(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	page := parsePagination(c, 20)

	conversations, err := s.conversationService.List(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(conversations)
}

// GetConversation handles GET /api/conversations/:id
func (s *Server) GetConversation(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	conversation, err := s.conversationService.Get(ctx, userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(conversation)
}
