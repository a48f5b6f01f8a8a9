package assignmentRepo

import (
	"context"

	"fitpulse/database"
	"fitpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo returns an AssignmentRepository backed by MongoDB.
func NewMongoAssignmentRepo() AssignmentRepository {
	return &mongoAssignmentRepo{
		coll: database.DB().Collection("assignments"),
	}
}

func (r *mongoAssignmentRepo) GetAll(ctx context.Context) ([]models.Assignment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *mongoAssignmentRepo) GetByProfessionalID(ctx context.Context, professionalID string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.coll.FindOne(ctx, bson.M{"professionalId": professionalID}).Decode(&assignment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Upsert replaces the professional's mapping wholesale.
func (r *mongoAssignmentRepo) Upsert(ctx context.Context, assignment models.Assignment) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"professionalId": assignment.ProfessionalID}, assignment, opts)
	return err
}

// AddClient appends a client id to the professional's mapping, creating the
// mapping if absent. $addToSet keeps the id list duplicate-free.
func (r *mongoAssignmentRepo) AddClient(ctx context.Context, professionalID, clientID string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"professionalId": professionalID},
		bson.M{"$addToSet": bson.M{"clientIds": clientID}},
		opts)
	return err
}

func (r *mongoAssignmentRepo) RemoveClient(ctx context.Context, professionalID, clientID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"professionalId": professionalID},
		bson.M{"$pull": bson.M{"clientIds": clientID}})
	return err
}
