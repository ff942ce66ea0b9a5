package input

import (
	"context"
	"time"

	"meal-order-client/internal/domain"
)

// OrderService interface - Input port (use case)
// Defines what the client can do with order tasks
type OrderService interface {
	ListOrders(ctx context.Context) ([]domain.OrderRequest, error)
	SubmitOrder(ctx context.Context, dishName string, date time.Time) error
	DeleteOrder(ctx context.Context, id string) error
}

// AccountService interface - Input port (use case)
// Defines what the client can do with meal accounts and menus
type AccountService interface {
	ListDishes(ctx context.Context, date time.Time) ([]string, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AddAccount(ctx context.Context, account domain.Account) error
}
