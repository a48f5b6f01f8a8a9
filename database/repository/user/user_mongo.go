package userRepo

import (
	"context"
	"errors"
	"time"

	"fitpulse/database"
	"fitpulse/models"
	"fitpulse/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation is best-effort at startup; queries still work.
		utils.GetLogger().Warn("users: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

// Create inserts a new user document, assigning an id when missing.
func (r *mongoUserRepo) Create(ctx context.Context, user models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllByRole fetches every user holding the given role.
func (r *mongoUserRepo) GetAllByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateFields applies a partial update to the user document.
func (r *mongoUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (r *mongoUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.UpdateFields(ctx, id, map[string]any{"tokenHash": tokenHash})
}

func (r *mongoUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}
