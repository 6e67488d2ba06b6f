package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Handle       string    `gorm:"column:handle;uniqueIndex" json:"handle"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	School       *string   `gorm:"column:school" json:"school,omitempty"`
	AvatarURL    *string   `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	Role         Role      `gorm:"column:role" json:"role"`
	IsPublic     bool      `gorm:"column:is_public" json:"is_public"`
	IsActive     bool      `gorm:"column:is_active" json:"is_active"`
	RefreshToken string    `gorm:"column:refresh_token" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`

	EarnedBadges []EarnedBadge `gorm:"foreignKey:UserID" json:"earned_badges,omitempty"`
}

func (User) TableName() string {
	return "users"
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterUserRequest struct {
	Handle   string  `json:"handle" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required"`
	School   *string `json:"school,omitempty"`
	Role     Role    `json:"role" validate:"required,oneof=participant reviewer admin"`
}

type UpdateProfileRequest struct {
	Handle    *string `json:"handle,omitempty"`
	Name      *string `json:"name,omitempty"`
	School    *string `json:"school,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	IsPublic  *bool   `json:"isPublic,omitempty"`
}

type LoginUser struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type JWTClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Handle string    `json:"handle"`
	Role   Role      `json:"role"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Token     string    `gorm:"column:token;index" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

func (BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	Token string `json:"token"`
}
