package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
)

var ErrAlreadyAwarded = errors.New("badge already awarded to this user")

type BadgeRepository interface {
	Create(badge *model.Badge) error
	FindAll() ([]model.Badge, error)
	FindByCode(code string) (*model.Badge, error)
	Update(badge *model.Badge) error
	Delete(id uuid.UUID) error
	Award(badgeID, userID uuid.UUID) (*model.EarnedBadge, error)
}

type BadgeRepo struct {
	DB *gorm.DB
}

func NewBadgeRepo(db *gorm.DB) *BadgeRepo {
	return &BadgeRepo{DB: db}
}

func (r *BadgeRepo) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepo) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("code ASC").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepo) FindByCode(code string) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.Where("code = ?", code).First(&badge).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepo) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

func (r *BadgeRepo) Delete(id uuid.UUID) error {
	if err := r.DB.Where("badge_id = ?", id).Delete(&model.EarnedBadge{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&model.Badge{}, "id = ?", id).Error
}

func (r *BadgeRepo) Award(badgeID, userID uuid.UUID) (*model.EarnedBadge, error) {
	var count int64
	err := r.DB.Model(&model.EarnedBadge{}).
		Where("badge_id = ? AND user_id = ?", badgeID, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyAwarded
	}

	earned := model.EarnedBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
	}
	if err := r.DB.Create(&earned).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Preload("Badge").First(&earned, "id = ?", earned.ID).Error; err != nil {
		return nil, err
	}
	return &earned, nil
}
