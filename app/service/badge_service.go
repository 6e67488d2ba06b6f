package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
	"github.com/Biji-Biji-Initiative/elevate-sub001/app/repo"
	"github.com/Biji-Biji-Initiative/elevate-sub001/helper"
)

type BadgeService struct {
	repo      repo.BadgeRepository
	auditRepo repo.AuditRepository
}

func NewBadgeService(repo repo.BadgeRepository, auditRepo repo.AuditRepository) *BadgeService {
	return &BadgeService{repo: repo, auditRepo: auditRepo}
}

// GET /api/v1/badges
func (s *BadgeService) List(c *fiber.Ctx) error {
	badges, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	items := make([]model.BadgeDTO, 0, len(badges))
	for i := range badges {
		items = append(items, model.ToBadgeDTO(&badges[i]))
	}

	return c.JSON(model.SuccessResponse[[]model.BadgeDTO]{Success: true, Data: items})
}

// POST /api/v1/admin/badges
func (s *BadgeService) Create(c *fiber.Ctx) error {
	var req model.CreateBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	badge := model.Badge{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	}
	if err := s.repo.Create(&badge); err != nil {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Badge code already exists",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.BadgeDTO]{
		Success: true,
		Data:    model.ToBadgeDTO(&badge),
	})
}

// PATCH /api/v1/admin/badges/:code
func (s *BadgeService) Update(c *fiber.Ctx) error {
	badge, err := s.repo.FindByCode(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Badge not found",
		})
	}

	var req model.UpdateBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	if req.Name != nil {
		badge.Name = *req.Name
	}
	if req.Description != nil {
		badge.Description = *req.Description
	}
	if req.IconURL != nil {
		badge.IconURL = req.IconURL
	}

	if err := s.repo.Update(badge); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(model.SuccessResponse[model.BadgeDTO]{
		Success: true,
		Message: "Updated",
		Data:    model.ToBadgeDTO(badge),
	})
}

// DELETE /api/v1/admin/badges/:code
func (s *BadgeService) Delete(c *fiber.Ctx) error {
	badge, err := s.repo.FindByCode(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Badge not found",
		})
	}

	if err := s.repo.Delete(badge.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Deleted"})
}

// POST /api/v1/admin/badges/:code/award
func (s *BadgeService) Award(c *fiber.Ctx) error {
	badge, err := s.repo.FindByCode(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Badge not found",
		})
	}

	var req model.AwardBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid user id",
		})
	}

	earned, err := s.repo.Award(badge.ID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyAwarded) {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	actorID, _ := c.Locals("user_id").(uuid.UUID)
	handle, _ := c.Locals("handle").(string)
	s.auditRepo.Record(model.AuditLog{
		ActorID:     actorID.String(),
		ActorHandle: handle,
		Action:      "badge.award",
		TargetKind:  "user",
		TargetID:    req.UserID,
		Detail:      badge.Code,
	})

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.EarnedBadgeDTO]{
		Success: true,
		Data:    model.ToEarnedBadgeDTO(earned),
	})
}
