package shop

import (
	"context"
	"errors"
	"testing"

	"fitpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShopRepo struct {
	products []models.Product
	orders   map[string]*models.Order
	statuses map[string]string
}

func newFakeShopRepo(products ...models.Product) *fakeShopRepo {
	return &fakeShopRepo{
		products: products,
		orders:   make(map[string]*models.Order),
		statuses: make(map[string]string),
	}
}

func (r *fakeShopRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return r.products, nil
}

func (r *fakeShopRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (r *fakeShopRepo) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	copied := order
	r.orders[order.ID] = &copied
	return order.ID, nil
}

func (r *fakeShopRepo) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	copied := *order
	return &copied, nil
}

func (r *fakeShopRepo) UpdateOrderStatus(ctx context.Context, id, status string) error {
	r.statuses[id] = status
	return nil
}

func (r *fakeShopRepo) GetOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	svc := &DefaultShopService{Repo: newFakeShopRepo()}

	_, err := svc.Checkout(context.Background(), "user-1", models.CheckoutRequest{
		ProductIDs: []string{"missing"},
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsOutOfStock(t *testing.T) {
	repo := newFakeShopRepo(
		models.Product{ID: "p1", Name: "Resistance Bands", PriceCents: 1999, InStock: true},
		models.Product{ID: "p2", Name: "Foam Roller", PriceCents: 2999, InStock: false},
	)
	svc := &DefaultShopService{Repo: repo}

	_, err := svc.Checkout(context.Background(), "user-1", models.CheckoutRequest{
		ProductIDs: []string{"p1", "p2"},
	})
	require.ErrorIs(t, err, ErrOutOfStock)
	assert.Contains(t, err.Error(), "Foam Roller")
	assert.Empty(t, repo.orders)
}

func TestConfirmOrderRejectsUnknownOrder(t *testing.T) {
	svc := &DefaultShopService{Repo: newFakeShopRepo()}

	_, err := svc.ConfirmOrder(context.Background(), "user-1", "no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestConfirmOrderRejectsForeignOrder(t *testing.T) {
	repo := newFakeShopRepo()
	repo.orders["o1"] = &models.Order{ID: "o1", UserID: "user-1", Status: "pending"}
	svc := &DefaultShopService{Repo: repo}

	_, err := svc.ConfirmOrder(context.Background(), "user-2", "o1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestConfirmOrderIsIdempotentOncePaid(t *testing.T) {
	repo := newFakeShopRepo()
	repo.orders["o1"] = &models.Order{ID: "o1", UserID: "user-1", Status: "paid"}
	svc := &DefaultShopService{Repo: repo}

	order, err := svc.ConfirmOrder(context.Background(), "user-1", "o1")
	require.NoError(t, err)
	assert.Equal(t, "paid", order.Status)
	assert.Empty(t, repo.statuses)
}
