package service

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
	"github.com/Biji-Biji-Initiative/elevate-sub001/app/repo"
	"github.com/Biji-Biji-Initiative/elevate-sub001/helper"
)

type SubmissionService struct {
	repo      repo.SubmissionRepository
	auditRepo repo.AuditRepository
}

func NewSubmissionService(repo repo.SubmissionRepository, auditRepo repo.AuditRepository) *SubmissionService {
	return &SubmissionService{repo: repo, auditRepo: auditRepo}
}

// POST /api/v1/submissions
func (s *SubmissionService) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	// The body is handed raw to the schema layer; anything malformed,
	// wrong-convention or out of range comes back as a validation error.
	env, err := model.ParseAPIEnvelope(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	visibility := model.VisibilityPrivate
	var req model.CreateSubmissionRequest
	if parseErr := c.BodyParser(&req); parseErr == nil && req.Visibility != nil {
		if !req.Visibility.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: "visibility must be PUBLIC or PRIVATE",
			})
		}
		visibility = *req.Visibility
	}

	dto, err := s.repo.Create(userID, env, visibility)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[*model.SubmissionDTO]{
		Success: true,
		Data:    dto,
	})
}

// GET /api/v1/submissions
func (s *SubmissionService) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(model.Role)

	page, limit := clampPageLimit(c.QueryInt("page", 1), c.QueryInt("limit", 10))
	status := c.Query("status", "")
	activity := c.Query("activityCode", "")

	if status != "" && !model.SubmissionStatus(status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid status filter",
		})
	}
	if activity != "" && !model.ActivityCode(activity).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid activityCode filter",
		})
	}

	dtos, total, err := s.repo.FindAll(role, userID, page, limit, status, activity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(model.SuccessResponse[model.PaginationData[model.SubmissionDTO]]{
		Success: true,
		Data: model.PaginationData[model.SubmissionDTO]{
			Items: dtos,
			Meta: model.MetaInfo{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: totalPages,
			},
		},
	})
}

// GET /api/v1/submissions/:id
func (s *SubmissionService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid submission id",
		})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(model.Role)

	if role == model.RoleParticipant {
		ownerID, err := s.repo.GetOwnerID(id)
		if err != nil || ownerID != userID {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
				Success: false,
				Message: "Submission not found",
			})
		}
	}

	dto, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Submission not found",
		})
	}

	return c.JSON(model.SuccessResponse[*model.SubmissionDTO]{Success: true, Data: dto})
}

// DELETE /api/v1/submissions/:id
func (s *SubmissionService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid submission id",
		})
	}
	userID := c.Locals("user_id").(uuid.UUID)

	ownerID, err := s.repo.GetOwnerID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Submission not found",
		})
	}
	if ownerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "You are not authorised to delete this submission",
		})
	}

	status, err := s.repo.GetStatus(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}
	if status != model.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Only pending submissions can be deleted",
		})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Deleted"})
}

// POST /api/v1/submissions/:id/approve
func (s *SubmissionService) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid submission id",
		})
	}
	reviewerID := c.Locals("user_id").(uuid.UUID)

	var req model.ReviewSubmissionRequest
	c.BodyParser(&req)

	status, err := s.repo.GetStatus(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Submission not found",
		})
	}
	if status != model.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Only pending submissions can be approved",
		})
	}

	dto, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Submission not found",
		})
	}
	points := model.ActivityPoints[dto.ActivityCode]

	if err := s.repo.UpdateStatus(id, model.StatusApproved, &reviewerID, req.ReviewNote, nil, points); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	s.audit(c, "submission.approve", id.String(), "")

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Approved"})
}

// POST /api/v1/submissions/:id/reject
func (s *SubmissionService) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid submission id",
		})
	}
	reviewerID := c.Locals("user_id").(uuid.UUID)

	var req model.RejectSubmissionRequest
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

	status, err := s.repo.GetStatus(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Submission not found",
		})
	}
	if status != model.StatusPending {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Only pending submissions can be rejected",
		})
	}

	if err := s.repo.UpdateStatus(id, model.StatusRejected, &reviewerID, req.ReviewNote, &req.Reason, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	s.audit(c, "submission.reject", id.String(), req.Reason)

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Rejected"})
}

// POST /api/v1/submissions/:id/revoke
func (s *SubmissionService) Revoke(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid submission id",
		})
	}
	adminID := c.Locals("user_id").(uuid.UUID)

	status, err := s.repo.GetStatus(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Submission not found",
		})
	}
	if status != model.StatusApproved {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Only approved submissions can be revoked",
		})
	}

	var req model.ReviewSubmissionRequest
	c.BodyParser(&req)

	if err := s.repo.UpdateStatus(id, model.StatusRevoked, &adminID, req.ReviewNote, nil, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	s.audit(c, "submission.revoke", id.String(), "")

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Revoked"})
}

func (s *SubmissionService) audit(c *fiber.Ctx, action, targetID, detail string) {
	userID, _ := c.Locals("user_id").(uuid.UUID)
	handle, _ := c.Locals("handle").(string)
	s.auditRepo.Record(model.AuditLog{
		ActorID:     userID.String(),
		ActorHandle: handle,
		Action:      action,
		TargetKind:  "submission",
		TargetID:    targetID,
		Detail:      detail,
	})
}
