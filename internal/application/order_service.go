package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meal-order-client/internal/domain"
	"meal-order-client/internal/ports/input"
	"meal-order-client/internal/ports/output"
	"meal-order-client/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure OrderService implements the input port
var _ input.OrderService = (*OrderService)(nil)

// OrderService struct - Application service passing order tasks through to the meal backend
type OrderService struct {
	store     output.OrderStore
	session   PrincipalSource
	location  *time.Location
	validator validator.Validator
}

// NewOrderService func - Creates new order service
func NewOrderService(store output.OrderStore, session PrincipalSource, location *time.Location) *OrderService {
	if location == nil {
		location = time.Local
	}
	return &OrderService{
		store:     store,
		session:   session,
		location:  location,
		validator: validator.New(),
	}
}

// ListOrders func - Use case: list order tasks. Ownership is enforced by the backend.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.OrderRequest, error) {
	if _, err := s.session.Principal(); err != nil {
		return nil, err
	}
	orders, err := s.store.ListOrderTasks(ctx)
	if err != nil {
		logrus.Errorf("Failed to get order history: %v", err)
		return nil, err
	}
	if orders == nil {
		orders = []domain.OrderRequest{}
	}
	return orders, nil
}

// SubmitOrder func - Use case: create an order task for dishName on date's calendar day
func (s *OrderService) SubmitOrder(ctx context.Context, dishName string, date time.Time) error {
	principal, err := s.session.Principal()
	if err != nil {
		return err
	}

	request := domain.SubmitOrderRequest{
		AccountName: principal,
		DishName:    strings.TrimSpace(dishName),
		Date:        date,
	}
	if err := s.validator.ValidateStruct(request); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	day := domain.StartOfDay(request.Date, s.location)
	if err := s.store.CreateOrderTask(ctx, request.AccountName, request.DishName, day); err != nil {
		logrus.Errorf("Failed to submit order: %v", err)
		return err
	}
	logrus.Infof("Order submitted for %s: %s on %s", principal, request.DishName, domain.FormatDate(day, s.location))
	return nil
}

// DeleteOrder func - Use case: remove an order task by ID
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if _, err := s.session.Principal(); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: order id is required", domain.ErrInvalidRequest)
	}
	if err := s.store.DeleteOrderTask(ctx, id); err != nil {
		logrus.Errorf("Failed to delete order %s: %v", id, err)
		return err
	}
	return nil
}
