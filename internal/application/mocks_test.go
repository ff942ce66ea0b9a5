package application

import (
	"context"
	"sync"
	"time"

	"meal-order-client/internal/domain"
)

// Mock implementations for testing

// MockSessionStore implements output.SessionStore for testing
type MockSessionStore struct {
	mu     sync.Mutex
	values map[string]string

	SetFunc   func(key, value string) error
	ClearFunc func() error

	SetCalls   []string
	ClearCalls int
}

func newMockSessionStore() *MockSessionStore {
	return &MockSessionStore{values: make(map[string]string)}
}

func (m *MockSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MockSessionStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.SetFunc != nil {
		if err := m.SetFunc(key, value); err != nil {
			return err
		}
	}
	m.values[key] = value
	return nil
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		if err := m.ClearFunc(); err != nil {
			return err
		}
	}
	m.values = make(map[string]string)
	return nil
}

// MockPrincipal implements PrincipalSource for testing
type MockPrincipal struct {
	Name string
}

func (m MockPrincipal) Principal() (string, error) {
	if m.Name == "" {
		return "", domain.ErrNotAuthenticated
	}
	return m.Name, nil
}

// MockExclusionStore implements output.ExclusionStore for testing.
// It behaves like the backend: upsert replaces the owner's record.
type MockExclusionStore struct {
	mu      sync.Mutex
	records []domain.ExclusionRecord

	ListFunc   func() ([]domain.ExclusionRecord, error)
	UpsertFunc func(record domain.ExclusionRecord) error

	// Delay between reading and returning, widening the race window
	ReadDelay time.Duration

	ListCalls int
	Upserts   []domain.ExclusionRecord
}

func (m *MockExclusionStore) ListExclusionRecords(ctx context.Context) ([]domain.ExclusionRecord, error) {
	m.mu.Lock()
	m.ListCalls++
	if m.ListFunc != nil {
		m.mu.Unlock()
		return m.ListFunc()
	}
	records := make([]domain.ExclusionRecord, len(m.records))
	for i, r := range m.records {
		r.ExcludedDishes = append([]string(nil), r.ExcludedDishes...)
		records[i] = r
	}
	m.mu.Unlock()

	if m.ReadDelay > 0 {
		time.Sleep(m.ReadDelay)
	}
	return records, nil
}

func (m *MockExclusionStore) UpsertExclusionRecord(ctx context.Context, record domain.ExclusionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Upserts = append(m.Upserts, record)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(record)
	}
	for i := range m.records {
		if m.records[i].Owner == record.Owner {
			m.records[i] = record
			return nil
		}
	}
	m.records = append(m.records, record)
	return nil
}

func (m *MockExclusionStore) record(owner string) *domain.ExclusionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.Owner == owner {
			return &r
		}
	}
	return nil
}

// MockOrderStore implements output.OrderStore for testing
type MockOrderStore struct {
	ListFunc   func() ([]domain.OrderRequest, error)
	CreateFunc func(accountName, dishName string, date time.Time) error
	DeleteFunc func(id string) error

	LastCreateAccount string
	LastCreateDish    string
	LastCreateDate    time.Time
	LastDeleteID      string
	CreateCalls       int
}

func (m *MockOrderStore) ListOrderTasks(ctx context.Context) ([]domain.OrderRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *MockOrderStore) CreateOrderTask(ctx context.Context, accountName, dishName string, date time.Time) error {
	m.CreateCalls++
	m.LastCreateAccount = accountName
	m.LastCreateDish = dishName
	m.LastCreateDate = date
	if m.CreateFunc != nil {
		return m.CreateFunc(accountName, dishName, date)
	}
	return nil
}

func (m *MockOrderStore) DeleteOrderTask(ctx context.Context, id string) error {
	m.LastDeleteID = id
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

// MockAccountStore implements output.AccountStore for testing
type MockAccountStore struct {
	ListDishesFunc   func(accountName string, date time.Time) ([]string, error)
	ListAccountsFunc func() ([]domain.Account, error)
	AddAccountFunc   func(account domain.Account) error

	LastDishesAccount string
	LastDishesDate    time.Time
	LastAddedAccount  *domain.Account
}

func (m *MockAccountStore) ListDishes(ctx context.Context, accountName string, date time.Time) ([]string, error) {
	m.LastDishesAccount = accountName
	m.LastDishesDate = date
	if m.ListDishesFunc != nil {
		return m.ListDishesFunc(accountName, date)
	}
	return nil, nil
}

func (m *MockAccountStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if m.ListAccountsFunc != nil {
		return m.ListAccountsFunc()
	}
	return nil, nil
}

func (m *MockAccountStore) AddAccount(ctx context.Context, account domain.Account) error {
	m.LastAddedAccount = &account
	if m.AddAccountFunc != nil {
		return m.AddAccountFunc(account)
	}
	return nil
}
