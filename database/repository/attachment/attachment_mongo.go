package attachmentRepo

import (
	"context"
	"errors"
	"time"

	"fitpulse/database"
	"fitpulse/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAttachmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAttachmentRepo returns an AttachmentRepository backed by MongoDB.
func NewMongoAttachmentRepo() AttachmentRepository {
	return &mongoAttachmentRepo{
		coll: database.DB().Collection("attachments"),
	}
}

// Create inserts a new attachment record and returns its ID.
func (r *mongoAttachmentRepo) Create(ctx context.Context, record models.AttachmentRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *mongoAttachmentRepo) GetByID(ctx context.Context, id string) (*models.AttachmentRecord, error) {
	var record models.AttachmentRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByClientID fetches a client's attachments oldest-first, matching the
// order the app renders them in.
func (r *mongoAttachmentRepo) GetByClientID(ctx context.Context, clientID string) ([]models.AttachmentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerClientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AttachmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetGroupedByClient loads attachments for a set of clients keyed by owner.
func (r *mongoAttachmentRepo) GetGroupedByClient(ctx context.Context, clientIDs []string) (map[string][]models.AttachmentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerClientId": bson.M{"$in": clientIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	grouped := make(map[string][]models.AttachmentRecord)
	for cursor.Next(ctx) {
		var record models.AttachmentRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		grouped[record.OwnerClientID] = append(grouped[record.OwnerClientID], record)
	}
	return grouped, cursor.Err()
}

func (r *mongoAttachmentRepo) SetVisibility(ctx context.Context, id string, visibleToCoaches bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"visibleToCoaches": visibleToCoaches}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("attachment not found")
	}
	return nil
}

func (r *mongoAttachmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("attachment not found")
	}
	return nil
}
