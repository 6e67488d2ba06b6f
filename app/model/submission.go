package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionRef is the postgres reference row for a submission. The payload
// itself lives in mongo as a storage-shape document; the row carries the
// workflow state. ReviewNote is reviewer-internal and must never appear in
// a DTO.
type SubmissionRef struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID        `gorm:"column:user_id;type:uuid;index"`
	ActivityCode    ActivityCode     `gorm:"column:activity_code"`
	Status          SubmissionStatus `gorm:"column:status;index"`
	Visibility      Visibility       `gorm:"column:visibility"`
	MongoPayloadID  string           `gorm:"column:mongo_payload_id"`
	PointsAwarded   int              `gorm:"column:points_awarded"`
	ReviewerID      *uuid.UUID       `gorm:"column:reviewer_id;type:uuid"`
	ReviewNote      *string          `gorm:"column:review_note"`
	RejectionReason *string          `gorm:"column:rejection_reason"`
	CreatedAt       time.Time        `gorm:"column:created_at"`
	UpdatedAt       time.Time        `gorm:"column:updated_at"`
	ReviewedAt      *time.Time       `gorm:"column:reviewed_at"`

	// Join-only fields filled by the read queries.
	OwnerHandle string `gorm:"-"`
	OwnerName   string `gorm:"-"`
}

func (SubmissionRef) TableName() string {
	return "submission_refs"
}

// SubmissionPayloadDoc is the mongo document holding the storage-shape
// payload. Data is kept raw so the activity code can pick the struct to
// decode into.
type SubmissionPayloadDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ActivityCode ActivityCode       `bson:"activity_code"`
	Data         bson.Raw           `bson:"data"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type CreateSubmissionRequest struct {
	ActivityCode string          `json:"activityCode"`
	Data         json.RawMessage `json:"data"`
	Visibility   *Visibility     `json:"visibility,omitempty"`
}

type ReviewSubmissionRequest struct {
	ReviewNote *string `json:"reviewNote,omitempty"`
}

type RejectSubmissionRequest struct {
	Reason     string  `json:"reason" validate:"required,min=4"`
	ReviewNote *string `json:"reviewNote,omitempty"`
}

// AuditLog is the mongo document written for every review action.
type AuditLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ActorID     string             `bson:"actor_id"`
	ActorHandle string             `bson:"actor_handle"`
	Action      string             `bson:"action"`
	TargetKind  string             `bson:"target_kind"`
	TargetID    string             `bson:"target_id"`
	Detail      string             `bson:"detail,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// StatItem is one bucket of an admin stats aggregation.
type StatItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalSubmissions int64      `json:"totalSubmissions"`
	TotalUsers       int64      `json:"totalUsers"`
	PointsAwarded    int64      `json:"pointsAwarded"`
	ByStatus         []StatItem `json:"byStatus"`
	ByActivity       []StatItem `json:"byActivity"`
}
