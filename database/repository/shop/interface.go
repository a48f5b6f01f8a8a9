package shopRepo

import (
	"context"

	"fitpulse/models"
)

// ShopRepository serves the product catalog and records orders.
type ShopRepository interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	GetOrdersForUser(ctx context.Context, userID string) ([]models.Order, error)
}
