package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gsjs-tp/volunteer-service/internal/api/dto"
	"github.com/gsjs-tp/volunteer-service/internal/domain"
	"github.com/gsjs-tp/volunteer-service/internal/mail"
	"github.com/gsjs-tp/volunteer-service/internal/service"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

// MemberService is the surface the handler needs from the member service.
type MemberService interface {
	ListMembers(ctx context.Context, query service.MemberListQuery) ([]domain.MemberView, error)
	GetMember(ctx context.Context, idParam string) (*domain.MemberView, error)
	UpdateStatus(ctx context.Context, idParam, status string) (*domain.MemberStatusChange, error)
	DeleteMember(ctx context.Context, idParam string) (*domain.DeletedMember, error)
}

// RegistrationService creates new volunteers.
type RegistrationService interface {
	RegisterVolunteer(ctx context.Context, input service.RegistrationInput) (*domain.MemberView, mail.SendResult, error)
}

// MembersHandler exposes the member CRUD endpoints.
type MembersHandler struct {
	members      MemberService
	registration RegistrationService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(members MemberService, registration RegistrationService) *MembersHandler {
	return &MembersHandler{members: members, registration: registration}
}

// List handles GET /members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	views, err := h.members.ListMembers(c.Context(), service.MemberListQuery{
		Search:     c.Query("search"),
		DivisionID: c.Query("divisi_id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		return err
	}

	resp := make([]dto.MemberResponse, 0, len(views))
	for i := range views {
		resp = append(resp, memberResponse(&views[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /members/:id.
func (h *MembersHandler) Get(c *fiber.Ctx) error {
	view, err := h.members.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(memberResponse(view))
}

// UpdateStatus handles POST /members/:id/update-status.
func (h *MembersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	change, err := h.members.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(dto.UpdateStatusResponse{
		Success: true,
		Message: fmt.Sprintf("Status anggota %s berhasil diubah menjadi %s", change.MemberName, change.NewStatus),
		Data: dto.StatusChangeData{
			MemberID:   change.MemberID,
			MemberName: change.MemberName,
			OldStatus:  string(change.OldStatus),
			NewStatus:  string(change.NewStatus),
		},
	})
}

// Delete handles DELETE /members/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.members.DeleteMember(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(dto.DeleteMemberResponse{
		Success: true,
		Message: fmt.Sprintf("Anggota %s berhasil dihapus", deleted.Name),
		DeletedMember: dto.DeletedMemberData{
			ID:   deleted.ID,
			Name: deleted.Name,
		},
	})
}

// Register handles POST /members.
func (h *MembersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	view, emailResult, err := h.registration.RegisterVolunteer(c.Context(), service.RegistrationInput{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Contact:    req.Contact,
		Photo:      req.Photo,
		DivisionID: req.DivisionID,
		RoleID:     req.RoleID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterMemberResponse{
		Success: true,
		Message: fmt.Sprintf("Anggota %s berhasil didaftarkan", view.Name),
		Data:    memberResponse(view),
		Email: dto.EmailResultData{
			Success:   emailResult.Success,
			MessageID: emailResult.MessageID,
			Error:     emailResult.Error,
			Message:   emailResult.Message,
		},
	})
}

func memberResponse(view *domain.MemberView) dto.MemberResponse {
	return dto.MemberResponse{
		ID:         view.ID,
		Name:       view.Name,
		Photo:      view.Photo,
		Division:   view.Division,
		DivisionID: view.DivisionID,
		Position:   view.Position,
		Contact:    view.Contact,
		Status:     string(view.Status),
		Email:      view.Email,
		Role:       view.Role,
	}
}
