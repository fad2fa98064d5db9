package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gsjs-tp/volunteer-service/internal/api/dto"
	"github.com/gsjs-tp/volunteer-service/internal/repository"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

// DivisionsHandler serves the division lookup used by the admin filter.
type DivisionsHandler struct {
	divisions repository.DivisionRepository
}

// NewDivisionsHandler constructs handler.
func NewDivisionsHandler(divisions repository.DivisionRepository) *DivisionsHandler {
	return &DivisionsHandler{divisions: divisions}
}

// List handles GET /divisions.
func (h *DivisionsHandler) List(c *fiber.Ctx) error {
	divisions, err := h.divisions.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.DivisionResponse, 0, len(divisions))
	for _, div := range divisions {
		resp = append(resp, dto.DivisionResponse{ID: div.ID, Name: div.Name})
	}
	return c.JSON(resp)
}
