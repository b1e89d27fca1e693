package server

import (
	"spotted/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFavorites handles GET /api/favorites
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	favorites, err := s.favoriteService.List(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(favorites)
}

// AddFavorite handles POST /api/favorites
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		PlaceID    string `json:"place_id"`
		CustomName string `json:"custom_name,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	favorite, err := s.favoriteService.Add(ctx, userID, req.PlaceID, req.CustomName)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// RemoveFavorite handles DELETE /api/favorites/:placeId
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	placeID := c.Params("placeId")
	if placeID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid place ID"))
	}

	if err := s.favoriteService.Remove(ctx, userID, placeID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Favorite removed"})
}
