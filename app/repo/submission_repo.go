package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
)

type SubmissionRepository interface {
	Create(userID uuid.UUID, env *model.APIEnvelope, visibility model.Visibility) (*model.SubmissionDTO, error)
	FindByID(id uuid.UUID) (*model.SubmissionDTO, error)
	FindAll(role model.Role, userID uuid.UUID, page, limit int, status, activity string) ([]model.SubmissionDTO, int64, error)
	GetOwnerID(id uuid.UUID) (uuid.UUID, error)
	GetStatus(id uuid.UUID) (model.SubmissionStatus, error)
	UpdateStatus(id uuid.UUID, status model.SubmissionStatus, reviewerID *uuid.UUID, reviewNote *string, reason *string, points int) error
	Delete(id uuid.UUID) error
	Stats() (*model.StatsResponse, error)
}

type SubmissionRepo struct {
	pgDB    *sql.DB
	mongoDB *mongo.Database
}

func NewSubmissionRepo(pgDB *sql.DB, mongoDB *mongo.Database) *SubmissionRepo {
	return &SubmissionRepo{pgDB: pgDB, mongoDB: mongoDB}
}

const payloadCollection = "submission_payloads"

// Create transforms a validated API envelope into storage shape, stores the
// payload document in mongo and the reference row in postgres. The mongo
// insert is compensated if the pg insert fails.
func (r *SubmissionRepo) Create(userID uuid.UUID, env *model.APIEnvelope, visibility model.Visibility) (*model.SubmissionDTO, error) {
	storageEnv, err := model.ToStorageEnvelope(env)
	if err != nil {
		return nil, err
	}

	payloadBytes, err := bson.Marshal(storageEnv.Data)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := model.SubmissionPayloadDoc{
		ActivityCode: storageEnv.ActivityCode,
		Data:         payloadBytes,
		CreatedAt:    now,
	}

	coll := r.mongoDB.Collection(payloadCollection)
	res, err := coll.InsertOne(context.TODO(), doc)
	if err != nil {
		return nil, err
	}
	oid := res.InsertedID.(primitive.ObjectID)

	query := `
		INSERT INTO submission_refs (user_id, activity_code, status, visibility, mongo_payload_id, points_awarded, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var pgID uuid.UUID
	err = r.pgDB.QueryRow(query,
		userID, string(storageEnv.ActivityCode), string(model.StatusPending),
		string(visibility), oid.Hex(), 0, now, now,
	).Scan(&pgID)
	if err != nil {
		coll.DeleteOne(context.TODO(), bson.M{"_id": oid})
		return nil, err
	}

	ref := &model.SubmissionRef{
		ID:             pgID,
		UserID:         userID,
		ActivityCode:   storageEnv.ActivityCode,
		Status:         model.StatusPending,
		Visibility:     visibility,
		MongoPayloadID: oid.Hex(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return model.ToSubmissionDTO(ref, storageEnv)
}

func (r *SubmissionRepo) FindByID(id uuid.UUID) (*model.SubmissionDTO, error) {
	query := `
		SELECT s.id, s.user_id, s.activity_code, s.status, s.visibility, s.mongo_payload_id,
		       s.points_awarded, s.reviewer_id, s.review_note, s.rejection_reason,
		       s.created_at, s.updated_at, s.reviewed_at,
		       u.handle, u.name
		FROM submission_refs s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`

	ref, err := r.scanRef(r.pgDB.QueryRow(query, id))
	if err != nil {
		return nil, err
	}

	storageEnv, err := r.loadPayload(ref)
	if err != nil {
		return nil, err
	}
	return model.ToSubmissionDTO(ref, storageEnv)
}

func (r *SubmissionRepo) FindAll(role model.Role, userID uuid.UUID, page, limit int, status, activity string) ([]model.SubmissionDTO, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	n := 0

	if role == model.RoleParticipant {
		n++
		where += fmt.Sprintf(" AND s.user_id = $%d", n)
		args = append(args, userID)
	}
	if status != "" {
		n++
		where += fmt.Sprintf(" AND s.status = $%d", n)
		args = append(args, status)
	}
	if activity != "" {
		n++
		where += fmt.Sprintf(" AND s.activity_code = $%d", n)
		args = append(args, activity)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM submission_refs s " + where
	if err := r.pgDB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT s.id, s.user_id, s.activity_code, s.status, s.visibility, s.mongo_payload_id,
		       s.points_awarded, s.reviewer_id, s.review_note, s.rejection_reason,
		       s.created_at, s.updated_at, s.reviewed_at,
		       u.handle, u.name
		FROM submission_refs s
		JOIN users u ON u.id = s.user_id ` + where +
		fmt.Sprintf(" ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.pgDB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	dtos := []model.SubmissionDTO{}
	for rows.Next() {
		ref, err := r.scanRef(rows)
		if err != nil {
			return nil, 0, err
		}
		storageEnv, err := r.loadPayload(ref)
		if err != nil {
			return nil, 0, err
		}
		dto, err := model.ToSubmissionDTO(ref, storageEnv)
		if err != nil {
			return nil, 0, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, total, rows.Err()
}

func (r *SubmissionRepo) GetOwnerID(id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pgDB.QueryRow("SELECT user_id FROM submission_refs WHERE id = $1", id).Scan(&ownerID)
	return ownerID, err
}

func (r *SubmissionRepo) GetStatus(id uuid.UUID) (model.SubmissionStatus, error) {
	var status string
	err := r.pgDB.QueryRow("SELECT status FROM submission_refs WHERE id = $1", id).Scan(&status)
	return model.SubmissionStatus(status), err
}

func (r *SubmissionRepo) UpdateStatus(id uuid.UUID, status model.SubmissionStatus, reviewerID *uuid.UUID, reviewNote *string, reason *string, points int) error {
	query := `
		UPDATE submission_refs
		SET status = $1, reviewer_id = $2, review_note = $3, rejection_reason = $4,
		    points_awarded = $5, reviewed_at = $6, updated_at = $6
		WHERE id = $7`

	res, err := r.pgDB.Exec(query, string(status), reviewerID, reviewNote, reason, points, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SubmissionRepo) Delete(id uuid.UUID) error {
	var mongoID string
	if err := r.pgDB.QueryRow("SELECT mongo_payload_id FROM submission_refs WHERE id = $1", id).Scan(&mongoID); err != nil {
		return err
	}
	if _, err := r.pgDB.Exec("DELETE FROM submission_refs WHERE id = $1", id); err != nil {
		return err
	}
	if oid, err := primitive.ObjectIDFromHex(mongoID); err == nil {
		r.mongoDB.Collection(payloadCollection).DeleteOne(context.TODO(), bson.M{"_id": oid})
	}
	return nil
}

func (r *SubmissionRepo) Stats() (*model.StatsResponse, error) {
	stats := &model.StatsResponse{}

	err := r.pgDB.QueryRow("SELECT COUNT(*), COALESCE(SUM(points_awarded), 0) FROM submission_refs").
		Scan(&stats.TotalSubmissions, &stats.PointsAwarded)
	if err != nil {
		return nil, err
	}

	byStatus, err := r.groupCount("status")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = byStatus

	byActivity, err := r.groupCount("activity_code")
	if err != nil {
		return nil, err
	}
	stats.ByActivity = byActivity

	return stats, nil
}

func (r *SubmissionRepo) groupCount(column string) ([]model.StatItem, error) {
	// column is fixed by the two call sites, never caller input.
	rows, err := r.pgDB.Query("SELECT " + column + ", COUNT(*) FROM submission_refs GROUP BY " + column + " ORDER BY " + column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.StatItem{}
	for rows.Next() {
		var item model.StatItem
		if err := rows.Scan(&item.Label, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *SubmissionRepo) scanRef(row rowScanner) (*model.SubmissionRef, error) {
	var ref model.SubmissionRef
	var activityCode, status, visibility string
	var reviewerID sql.NullString
	var reviewNote, rejectionReason sql.NullString
	var reviewedAt sql.NullTime

	err := row.Scan(
		&ref.ID, &ref.UserID, &activityCode, &status, &visibility, &ref.MongoPayloadID,
		&ref.PointsAwarded, &reviewerID, &reviewNote, &rejectionReason,
		&ref.CreatedAt, &ref.UpdatedAt, &reviewedAt,
		&ref.OwnerHandle, &ref.OwnerName,
	)
	if err != nil {
		return nil, err
	}

	ref.ActivityCode = model.ActivityCode(activityCode)
	ref.Status = model.SubmissionStatus(status)
	ref.Visibility = model.Visibility(visibility)
	if reviewerID.Valid {
		id, err := uuid.Parse(reviewerID.String)
		if err == nil {
			ref.ReviewerID = &id
		}
	}
	if reviewNote.Valid {
		ref.ReviewNote = &reviewNote.String
	}
	if rejectionReason.Valid {
		ref.RejectionReason = &rejectionReason.String
	}
	if reviewedAt.Valid {
		ref.ReviewedAt = &reviewedAt.Time
	}
	return &ref, nil
}

// loadPayload reads the storage-shape document referenced by the row and
// decodes it into the variant selected by the activity code.
func (r *SubmissionRepo) loadPayload(ref *model.SubmissionRef) (*model.StorageEnvelope, error) {
	oid, err := primitive.ObjectIDFromHex(ref.MongoPayloadID)
	if err != nil {
		return nil, err
	}

	var doc model.SubmissionPayloadDoc
	coll := r.mongoDB.Collection(payloadCollection)
	if err := coll.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, errors.New("payload document missing in NoSQL")
	}

	data, err := decodeStoredPayload(doc.ActivityCode, doc.Data)
	if err != nil {
		return nil, err
	}
	return &model.StorageEnvelope{ActivityCode: doc.ActivityCode, Data: data}, nil
}

func decodeStoredPayload(code model.ActivityCode, raw bson.Raw) (model.StoragePayload, error) {
	switch code {
	case model.ActivityLearn:
		var p model.LearnStoragePayload
		return &p, bson.Unmarshal(raw, &p)
	case model.ActivityExplore:
		var p model.ExploreStoragePayload
		return &p, bson.Unmarshal(raw, &p)
	case model.ActivityAmplify:
		var p model.AmplifyStoragePayload
		return &p, bson.Unmarshal(raw, &p)
	case model.ActivityPresent:
		var p model.PresentStoragePayload
		return &p, bson.Unmarshal(raw, &p)
	case model.ActivityShine:
		var p model.ShineStoragePayload
		return &p, bson.Unmarshal(raw, &p)
	}
	return nil, fmt.Errorf("%w: %q", model.ErrUnknownActivityCode, code)
}
