package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Biji-Biji-Initiative/elevate-sub001/app/model"
)

type AuditRepository interface {
	Record(entry model.AuditLog) error
	FindAll(page, limit int) ([]model.AuditLog, int64, error)
}

type AuditRepo struct {
	mongoDB *mongo.Database
}

func NewAuditRepo(mongoDB *mongo.Database) *AuditRepo {
	return &AuditRepo{mongoDB: mongoDB}
}

const auditCollection = "audit_logs"

func (r *AuditRepo) Record(entry model.AuditLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.mongoDB.Collection(auditCollection).InsertOne(context.TODO(), entry)
	return err
}

func (r *AuditRepo) FindAll(page, limit int) ([]model.AuditLog, int64, error) {
	coll := r.mongoDB.Collection(auditCollection)

	total, err := coll.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(context.TODO())

	logs := []model.AuditLog{}
	if err := cursor.All(context.TODO(), &logs); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
