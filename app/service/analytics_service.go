package service

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
	"github.com/Biji-Biji-Initiative/elevate-sub001/app/repo"
)

type AnalyticsService struct {
	userRepo       repo.UserRepository
	submissionRepo repo.SubmissionRepository
	auditRepo      repo.AuditRepository
}

func NewAnalyticsService(uRepo repo.UserRepository, sRepo repo.SubmissionRepository, aRepo repo.AuditRepository) *AnalyticsService {
	return &AnalyticsService{
		userRepo:       uRepo,
		submissionRepo: sRepo,
		auditRepo:      aRepo,
	}
}

// GET /api/v1/leaderboard
func (s *AnalyticsService) Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, err := s.userRepo.Leaderboard(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(model.SuccessResponse[[]model.LeaderboardEntryDTO]{Success: true, Data: entries})
}

// GET /api/v1/admin/stats
func (s *AnalyticsService) Stats(c *fiber.Ctx) error {
	stats, err := s.submissionRepo.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}
	stats.TotalUsers = totalUsers

	return c.JSON(model.SuccessResponse[*model.StatsResponse]{Success: true, Data: stats})
}

// GET /api/v1/admin/audit
func (s *AnalyticsService) AuditLog(c *fiber.Ctx) error {
	page, limit := clampPageLimit(c.QueryInt("page", 1), c.QueryInt("limit", 20))

	logs, total, err := s.auditRepo.FindAll(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	items := make([]model.AuditLogDTO, 0, len(logs))
	for i := range logs {
		items = append(items, model.ToAuditLogDTO(&logs[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(model.SuccessResponse[model.PaginationData[model.AuditLogDTO]]{
		Success: true,
		Data: model.PaginationData[model.AuditLogDTO]{
			Items: items,
			Meta: model.MetaInfo{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: totalPages,
			},
		},
	})
}
