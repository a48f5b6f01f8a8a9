package shop

import (
	"context"

	shopRepo "fitpulse/database/repository/shop"
	"fitpulse/models"
)

// ShopService serves the product catalog and runs checkout through Stripe.
type ShopService interface {
	Products(ctx context.Context) ([]models.Product, error)
	Checkout(ctx context.Context, userID string, req models.CheckoutRequest) (*models.CheckoutResponse, error)
	ConfirmOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
	OrdersForUser(ctx context.Context, userID string) ([]models.Order, error)
}

// DefaultShopService is the production implementation.
type DefaultShopService struct {
	Repo shopRepo.ShopRepository
}
