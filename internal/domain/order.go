package domain

import (
	"strings"
	"time"
)

// OrderStatus type
type OrderStatus string

const (
	// OrderStatusPending const
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusFulfilled const
	OrderStatusFulfilled OrderStatus = "FULFILLED"
	// OrderStatusFailed const
	OrderStatusFailed OrderStatus = "FAILED"
)

// OrderRequest is an auto-order task owned by the meal backend.
// The client only creates, lists and deletes them by ID.
type OrderRequest struct {
	ID           string      `json:"id"`
	Owner        string      `json:"owner,omitempty"`
	DishName     string      `json:"dish_name"`
	Date         time.Time   `json:"date"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	ErrorMessage *string     `json:"error_message,omitempty"`
}

// SubmitOrderRequest struct - Domain request for creating an order task
type SubmitOrderRequest struct {
	AccountName string    `validate:"required"`
	DishName    string    `validate:"required,max=100"`
	Date        time.Time `validate:"required"`
}

// ParseOrderStatus maps the backend's order status value onto OrderStatus.
// The backend reports numeric codes in some versions and words in others.
// Unknown values fall back to failed when an error message is present, pending otherwise.
func ParseOrderStatus(raw string, errorMessage *string) OrderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "pending", "wait", "waiting", "created", "init":
		return OrderStatusPending
	case "1", "success", "succeeded", "fulfilled", "done", "completed", "complete":
		return OrderStatusFulfilled
	case "2", "-1", "fail", "failed", "failure", "error":
		return OrderStatusFailed
	}
	if errorMessage != nil && strings.TrimSpace(*errorMessage) != "" {
		return OrderStatusFailed
	}
	return OrderStatusPending
}
