package shop

import (
	"context"
	"errors"
	"fmt"

	"fitpulse/models"
	"fitpulse/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart is returned when a checkout names no purchasable products.
	ErrEmptyCart = errors.New("no purchasable products in checkout request")
	// ErrOutOfStock is returned when a requested product is unavailable.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrOrderNotFound is returned when an order id does not resolve for the user.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPaymentIncomplete is returned when the payment has not succeeded yet.
	ErrPaymentIncomplete = errors.New("payment has not completed")
)

// Products lists the catalog.
func (s *DefaultShopService) Products(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

// Checkout totals the requested products, records a pending order and creates
// a Stripe PaymentIntent whose client secret the app uses to confirm payment.
func (s *DefaultShopService) Checkout(ctx context.Context, userID string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := utils.GetLogger()

	products, err := s.Repo.GetProductsByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("shop: failed to load products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	currency := "usd"
	for _, p := range products {
		if !p.InStock {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, p.Name)
		}
		total += p.PriceCents
		if p.Currency != "" {
			currency = p.Currency
		}
	}

	order := models.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProductIDs:  req.ProductIDs,
		AmountCents: total,
		Currency:    currency,
		Status:      "pending",
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(total),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("orderId", order.ID)
	params.AddMetadata("userId", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("shop: failed to create payment intent: %w", err)
	}
	order.PaymentIntentID = intent.ID

	if _, err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("shop: failed to record order: %w", err)
	}

	logger.Info("checkout started",
		zap.String("orderID", order.ID),
		zap.String("userID", userID),
		zap.Int64("amountCents", total))

	return &models.CheckoutResponse{
		OrderID:      order.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  total,
		Currency:     currency,
	}, nil
}

// ConfirmOrder checks the order's PaymentIntent with Stripe after the app
// reports a completed payment, and records the final order status.
func (s *DefaultShopService) ConfirmOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.Repo.GetOrderByID(ctx, orderID)
	if err != nil || order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.Status == "paid" {
		return order, nil
	}

	intent, err := paymentintent.Get(order.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("shop: failed to fetch payment intent: %w", err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		if err := s.Repo.UpdateOrderStatus(ctx, order.ID, "paid"); err != nil {
			return nil, fmt.Errorf("shop: failed to mark order paid: %w", err)
		}
		order.Status = "paid"
	case stripe.PaymentIntentStatusCanceled:
		if err := s.Repo.UpdateOrderStatus(ctx, order.ID, "failed"); err != nil {
			return nil, fmt.Errorf("shop: failed to mark order failed: %w", err)
		}
		order.Status = "failed"
	default:
		return nil, ErrPaymentIncomplete
	}

	utils.GetLogger().Info("order confirmed",
		zap.String("orderID", order.ID),
		zap.String("status", order.Status))
	return order, nil
}

// OrdersForUser lists the user's past and pending orders.
func (s *DefaultShopService) OrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.GetOrdersForUser(ctx, userID)
}
