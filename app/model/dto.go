package model

import "time"

// DTOs are the last internal representation before JSON serialization.
// Every mapper below builds its DTO field-by-field from an allow-list; a
// field added to an internal record later cannot leak until it is named
// here. Timestamps are RFC3339 strings, internal null becomes an absent
// pointer, and field names follow the external camelCase convention.

type UserProfileDTO struct {
	ID        string  `json:"id"`
	Handle    string  `json:"handle"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	School    *string `json:"school,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Role      Role    `json:"role"`
	IsPublic  bool    `json:"isPublic"`
	CreatedAt string  `json:"createdAt"`
}

type BadgeDTO struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IconURL     *string `json:"iconUrl,omitempty"`
}

type EarnedBadgeDTO struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	IconURL  *string `json:"iconUrl,omitempty"`
	EarnedAt string  `json:"earnedAt"`
}

type LeaderboardUserDTO struct {
	ID           string           `json:"id"`
	Handle       string           `json:"handle"`
	Name         string           `json:"name"`
	School       *string          `json:"school,omitempty"`
	AvatarURL    *string          `json:"avatarUrl,omitempty"`
	EarnedBadges []EarnedBadgeDTO `json:"earnedBadges"`
	TotalPoints  int              `json:"totalPoints"`
}

type LeaderboardEntryDTO struct {
	Rank int                `json:"rank"`
	User LeaderboardUserDTO `json:"user"`
}

type SubmissionDTO struct {
	ID              string           `json:"id"`
	ActivityCode    ActivityCode     `json:"activityCode"`
	Status          SubmissionStatus `json:"status"`
	Visibility      Visibility       `json:"visibility"`
	Payload         APIPayload       `json:"payload"`
	PointsAwarded   int              `json:"pointsAwarded"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
	ReviewedAt      *string          `json:"reviewedAt,omitempty"`
}

type AuditLogDTO struct {
	ActorID     string `json:"actorId"`
	ActorHandle string `json:"actorHandle"`
	Action      string `json:"action"`
	TargetKind  string `json:"targetKind"`
	TargetID    string `json:"targetId"`
	Detail      string `json:"detail,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// PointsAggregate mirrors the summed-points wrapper the store hands back
// for leaderboard rows. Any part of it may be missing.
type PointsAggregate struct {
	Sum *PointsSum `json:"_sum,omitempty" bson:"_sum,omitempty"`
}

type PointsSum struct {
	Points *int `json:"points,omitempty" bson:"points,omitempty"`
}

// ExtractPoints degrades a partially or wholly absent aggregate to 0. A
// missing aggregate means no points recorded, which is zero; this is the
// only place a default value is synthesized.
func ExtractPoints(agg *PointsAggregate) int {
	if agg == nil || agg.Sum == nil || agg.Sum.Points == nil {
		return 0
	}
	return *agg.Sum.Points
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ToUserProfileDTO(u *User) UserProfileDTO {
	return UserProfileDTO{
		ID:        u.ID.String(),
		Handle:    u.Handle,
		Email:     u.Email,
		Name:      u.Name,
		School:    u.School,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		IsPublic:  u.IsPublic,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func ToBadgeDTO(b *Badge) BadgeDTO {
	return BadgeDTO{
		ID:          b.ID.String(),
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		IconURL:     b.IconURL,
	}
}

func ToEarnedBadgeDTO(eb *EarnedBadge) EarnedBadgeDTO {
	return EarnedBadgeDTO{
		Code:     eb.Badge.Code,
		Name:     eb.Badge.Name,
		IconURL:  eb.Badge.IconURL,
		EarnedAt: formatTime(eb.EarnedAt),
	}
}

// ToLeaderboardEntryDTO projects a user record plus its points aggregate
// into a leaderboard entry. Email, is_public and every other internal field
// stay behind; EarnedBadges is always present, empty when none.
func ToLeaderboardEntryDTO(rank int, u *User, agg *PointsAggregate) LeaderboardEntryDTO {
	badges := make([]EarnedBadgeDTO, 0, len(u.EarnedBadges))
	for i := range u.EarnedBadges {
		badges = append(badges, ToEarnedBadgeDTO(&u.EarnedBadges[i]))
	}
	return LeaderboardEntryDTO{
		Rank: rank,
		User: LeaderboardUserDTO{
			ID:           u.ID.String(),
			Handle:       u.Handle,
			Name:         u.Name,
			School:       u.School,
			AvatarURL:    u.AvatarURL,
			EarnedBadges: badges,
			TotalPoints:  ExtractPoints(agg),
		},
	}
}

// ToSubmissionDTO projects a reference row and its storage payload into the
// external shape. ReviewerID, ReviewNote and MongoPayloadID are internal
// only and have no place here.
func ToSubmissionDTO(ref *SubmissionRef, env *StorageEnvelope) (*SubmissionDTO, error) {
	apiEnv, err := ToAPIEnvelope(env)
	if err != nil {
		return nil, err
	}
	return &SubmissionDTO{
		ID:              ref.ID.String(),
		ActivityCode:    ref.ActivityCode,
		Status:          ref.Status,
		Visibility:      ref.Visibility,
		Payload:         apiEnv.Data,
		PointsAwarded:   ref.PointsAwarded,
		RejectionReason: ref.RejectionReason,
		CreatedAt:       formatTime(ref.CreatedAt),
		UpdatedAt:       formatTime(ref.UpdatedAt),
		ReviewedAt:      formatTimePtr(ref.ReviewedAt),
	}, nil
}

func ToAuditLogDTO(a *AuditLog) AuditLogDTO {
	return AuditLogDTO{
		ActorID:     a.ActorID,
		ActorHandle: a.ActorHandle,
		Action:      a.Action,
		TargetKind:  a.TargetKind,
		TargetID:    a.TargetID,
		Detail:      a.Detail,
		CreatedAt:   formatTime(a.CreatedAt),
	}
}
