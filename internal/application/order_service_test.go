package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"meal-order-client/internal/domain"
)

// TestSubmitOrder tests that the order is sent for the principal on a calendar date
func TestSubmitOrder(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	store := &MockOrderStore{}
	s := NewOrderService(store, MockPrincipal{Name: "alice"}, loc)

	date := time.Date(2024, 5, 2, 13, 30, 0, 0, loc)
	if err := s.SubmitOrder(context.Background(), " 红烧肉 ", date); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if store.LastCreateAccount != "alice" {
		t.Errorf("expected account alice, got %s", store.LastCreateAccount)
	}
	if store.LastCreateDish != "红烧肉" {
		t.Errorf("expected trimmed dish, got %q", store.LastCreateDish)
	}
	if want := time.Date(2024, 5, 2, 0, 0, 0, 0, loc); !store.LastCreateDate.Equal(want) {
		t.Errorf("expected date %v, got %v", want, store.LastCreateDate)
	}
}

// TestSubmitOrderValidation func
func TestSubmitOrderValidation(t *testing.T) {
	store := &MockOrderStore{}
	s := NewOrderService(store, MockPrincipal{Name: "alice"}, time.UTC)

	if err := s.SubmitOrder(context.Background(), "  ", time.Now()); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for blank dish, got %v", err)
	}
	if err := s.SubmitOrder(context.Background(), "红烧肉", time.Time{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for zero date, got %v", err)
	}
	if store.CreateCalls != 0 {
		t.Errorf("expected no remote call, got %d", store.CreateCalls)
	}
}

// TestOrderServiceRequiresSession func
func TestOrderServiceRequiresSession(t *testing.T) {
	store := &MockOrderStore{}
	s := NewOrderService(store, MockPrincipal{}, time.UTC)
	ctx := context.Background()

	if _, err := s.ListOrders(ctx); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from list, got %v", err)
	}
	if err := s.SubmitOrder(ctx, "红烧肉", time.Now()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from submit, got %v", err)
	}
	if err := s.DeleteOrder(ctx, "42"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated from delete, got %v", err)
	}
}

// TestListOrders func
func TestListOrders(t *testing.T) {
	store := &MockOrderStore{ListFunc: func() ([]domain.OrderRequest, error) {
		return nil, nil
	}}
	s := NewOrderService(store, MockPrincipal{Name: "alice"}, time.UTC)

	orders, err := s.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if orders == nil {
		t.Error("expected non-nil empty slice")
	}

	store.ListFunc = func() ([]domain.OrderRequest, error) {
		return nil, fmt.Errorf("%w: status 502", domain.ErrTransport)
	}
	if _, err := s.ListOrders(context.Background()); !errors.Is(err, domain.ErrTransport) {
		t.Errorf("expected ErrTransport, got %v", err)
	}
}

// TestDeleteOrder func
func TestDeleteOrder(t *testing.T) {
	store := &MockOrderStore{}
	s := NewOrderService(store, MockPrincipal{Name: "alice"}, time.UTC)

	if err := s.DeleteOrder(context.Background(), " 1789 "); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.LastDeleteID != "1789" {
		t.Errorf("expected id 1789, got %q", store.LastDeleteID)
	}
	if err := s.DeleteOrder(context.Background(), ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}
