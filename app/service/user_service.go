package service

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
	"github.com/Biji-Biji-Initiative/elevate-sub001/app/repo"
	"github.com/Biji-Biji-Initiative/elevate-sub001/helper"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(repo repo.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// POST /api/v1/admin/users
func (s *UserService) Register(c *fiber.Ctx) error {
	var req model.RegisterUserRequest
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

	if err := model.ValidateHandle(req.Handle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to hash password",
		})
	}

	user := model.User{
		Handle:       req.Handle,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		School:       req.School,
		Role:         req.Role,
		IsPublic:     true,
		IsActive:     true,
	}

	if err := s.repo.Create(&user); err != nil {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Handle or email already in use",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.UserProfileDTO]{
		Success: true,
		Data:    model.ToUserProfileDTO(&user),
	})
}

// GET /api/v1/users
func (s *UserService) List(c *fiber.Ctx) error {
	page, limit := clampPageLimit(c.QueryInt("page", 1), c.QueryInt("limit", 10))
	search := c.Query("search", "")
	sortBy := c.Query("sortBy", "created_at")
	order := c.Query("order", "desc")

	users, total, err := s.repo.FindAll(page, limit, search, sortBy, order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	items := make([]model.UserProfileDTO, 0, len(users))
	for i := range users {
		items = append(items, model.ToUserProfileDTO(&users[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return c.JSON(model.SuccessResponse[model.PaginationData[model.UserProfileDTO]]{
		Success: true,
		Data: model.PaginationData[model.UserProfileDTO]{
			Items: items,
			Meta: model.MetaInfo{
				Page:   page,
				Limit:  limit,
				Total:  total,
				Pages:  totalPages,
				SortBy: sortBy,
				Order:  order,
				Search: search,
			},
		},
	})
}

// GET /api/v1/users/:id
func (s *UserService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid user id",
		})
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
	}

	return c.JSON(model.SuccessResponse[model.UserProfileDTO]{
		Success: true,
		Data:    model.ToUserProfileDTO(user),
	})
}

// PATCH /api/v1/profile
func (s *UserService) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uuid.UUID)

	var req model.UpdateProfileRequest
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

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
	}

	if req.Handle != nil {
		if err := model.ValidateHandle(*req.Handle); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		user.Handle = *req.Handle
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.School != nil {
		user.School = req.School
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}

	if err := s.repo.Update(user); err != nil {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Handle already in use",
		})
	}

	return c.JSON(model.SuccessResponse[model.UserProfileDTO]{
		Success: true,
		Message: "Profile updated",
		Data:    model.ToUserProfileDTO(user),
	})
}
