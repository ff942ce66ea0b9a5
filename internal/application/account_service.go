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

// Compile-time check to ensure AccountService implements the input port
var _ input.AccountService = (*AccountService)(nil)

// AccountService struct - Application service for meal accounts and menus
type AccountService struct {
	store     output.AccountStore
	session   PrincipalSource
	location  *time.Location
	now       func() time.Time
	validator validator.Validator
}

// NewAccountService func - Creates new account service
func NewAccountService(store output.AccountStore, session PrincipalSource, location *time.Location) *AccountService {
	if location == nil {
		location = time.Local
	}
	return &AccountService{
		store:     store,
		session:   session,
		location:  location,
		now:       time.Now,
		validator: validator.New(),
	}
}

// ListDishes func - Use case: dishes on offer to the current user on date. A zero date means today.
func (s *AccountService) ListDishes(ctx context.Context, date time.Time) ([]string, error) {
	principal, err := s.session.Principal()
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.now()
	}

	dishes, err := s.store.ListDishes(ctx, principal, domain.StartOfDay(date, s.location))
	if err != nil {
		logrus.Errorf("Failed to get dish list: %v", err)
		return nil, err
	}
	if dishes == nil {
		dishes = []string{}
	}
	return dishes, nil
}

// ListAccounts func - Use case: list registered auto-order accounts
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		logrus.Errorf("Failed to get account list: %v", err)
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// AddAccount func - Use case: register a meal platform account for auto-ordering
func (s *AccountService) AddAccount(ctx context.Context, account domain.Account) error {
	account.Name = strings.TrimSpace(account.Name)
	account.Cookie = strings.TrimSpace(account.Cookie)
	if err := s.validator.ValidateStruct(account); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if err := s.store.AddAccount(ctx, account); err != nil {
		logrus.Errorf("Failed to add account %s: %v", account.Name, err)
		return err
	}
	logrus.Infof("Account added: %s", account.Name)
	return nil
}
