package model

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code        string    `gorm:"column:code;uniqueIndex" json:"code"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	IconURL     *string   `gorm:"column:icon_url" json:"icon_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Badge) TableName() string {
	return "badges"
}

type EarnedBadge struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	BadgeID  uuid.UUID `gorm:"column:badge_id;type:uuid;index" json:"badge_id"`
	EarnedAt time.Time `gorm:"column:earned_at" json:"earned_at"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}

func (EarnedBadge) TableName() string {
	return "earned_badges"
}

type CreateBadgeRequest struct {
	Code        string  `json:"code" validate:"required,min=2"`
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description" validate:"required"`
	IconURL     *string `json:"iconUrl,omitempty" validate:"omitempty,url"`
}

type UpdateBadgeRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
	IconURL     *string `json:"iconUrl,omitempty" validate:"omitempty,url"`
}

type AwardBadgeRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}
