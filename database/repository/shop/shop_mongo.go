package shopRepo

import (
	"context"
	"errors"
	"time"

	"fitpulse/database"
	"fitpulse/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoShopRepo struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

// NewMongoShopRepo returns a ShopRepository backed by MongoDB.
func NewMongoShopRepo() ShopRepository {
	db := database.DB()
	return &mongoShopRepo{
		products: db.Collection("products"),
		orders:   db.Collection("orders"),
	}
}

func (r *mongoShopRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoShopRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	cursor, err := r.products.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoShopRepo) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		return "", err
	}
	return order.ID, nil
}

func (r *mongoShopRepo) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.orders.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoShopRepo) UpdateOrderStatus(ctx context.Context, id, status string) error {
	res, err := r.orders.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("order not found")
	}
	return nil
}

func (r *mongoShopRepo) GetOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := r.orders.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
