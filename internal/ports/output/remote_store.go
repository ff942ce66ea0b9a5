package output

import (
	"context"
	"time"

	"meal-order-client/internal/domain"
)

// ExclusionStore interface - Output port
// Defines what the application needs from the meal backend's exclusion records.
// The backend has no partial update and no version token: every write replaces
// the whole record for its owner.
type ExclusionStore interface {
	// ListExclusionRecords returns every exclusion record known to the backend.
	ListExclusionRecords(ctx context.Context) ([]domain.ExclusionRecord, error)

	// UpsertExclusionRecord creates or replaces the record for record.Owner.
	UpsertExclusionRecord(ctx context.Context, record domain.ExclusionRecord) error
}

// OrderStore interface - Output port
// Defines what the application needs from the meal backend's order tasks.
type OrderStore interface {
	ListOrderTasks(ctx context.Context) ([]domain.OrderRequest, error)
	CreateOrderTask(ctx context.Context, accountName, dishName string, date time.Time) error
	DeleteOrderTask(ctx context.Context, id string) error
}

// AccountStore interface - Output port
// Defines what the application needs from the meal backend's accounts and menus.
type AccountStore interface {
	ListDishes(ctx context.Context, accountName string, date time.Time) ([]string, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AddAccount(ctx context.Context, account domain.Account) error
}

// RemoteStore interface - the full meal backend contract
type RemoteStore interface {
	ExclusionStore
	OrderStore
	AccountStore
}
