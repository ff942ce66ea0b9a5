package input

import (
	"context"
	"time"

	"meal-order-client/internal/domain"
)

// ExclusionService interface - Input port (use case)
// Defines what the client can do with the current user's dish exclusion list
type ExclusionService interface {
	GetActiveExclusions(ctx context.Context) ([]string, error)
	GetExclusionDetail(ctx context.Context) (*domain.ExclusionRecord, error)
	GetAutoOrderInfo(ctx context.Context) (*domain.AutoOrderInfo, error)
	AddExclusion(ctx context.Context, dish string) (*domain.ExclusionRecord, error)
	RemoveExclusion(ctx context.Context, dish string) (*domain.ExclusionRecord, error)
	UpdateExpireDate(ctx context.Context, date time.Time) (*domain.ExclusionRecord, error)
}
