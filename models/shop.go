package models

import "time"

// Product is an item in the shop catalog (supplements, gear, plan upgrades).
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	PriceCents  int64     `bson:"priceCents" json:"priceCents"`
	Currency    string    `bson:"currency" json:"currency"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	InStock     bool      `bson:"inStock" json:"inStock"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CheckoutRequest initiates payment for a set of products.
type CheckoutRequest struct {
	ProductIDs []string `json:"productIds" binding:"required"`
}

// CheckoutResponse carries the Stripe client secret back to the app.
type CheckoutResponse struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency"`
}

// Order records a checkout attempt.
type Order struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	ProductIDs      []string  `bson:"productIds" json:"productIds"`
	AmountCents     int64     `bson:"amountCents" json:"amountCents"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	Status          string    `bson:"status" json:"status"` // pending | paid | failed
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
