package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"meal-order-client/internal/domain"
	"meal-order-client/internal/ports/input"
	"meal-order-client/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// dishDelimiter separates dish names on the wire, so a name cannot contain it
const dishDelimiter = ","

// Compile-time check to ensure ExclusionService implements the input port
var _ input.ExclusionService = (*ExclusionService)(nil)

// ExclusionService struct - Application service owning the read-modify-write
// protocol for the current user's exclusion record.
//
// Mutations for one principal are serialized within this process. Another
// process writing the same record can still overwrite a change between our
// read and our write; the backend offers no version token to detect it.
type ExclusionService struct {
	store    output.ExclusionStore
	session  PrincipalSource
	location *time.Location
	now      func() time.Time
	locks    *principalLocks
}

// NewExclusionService func - Creates new exclusion service
func NewExclusionService(store output.ExclusionStore, session PrincipalSource, location *time.Location) *ExclusionService {
	if location == nil {
		location = time.Local
	}
	return &ExclusionService{
		store:    store,
		session:  session,
		location: location,
		now:      time.Now,
		locks:    newPrincipalLocks(),
	}
}

// GetActiveExclusions returns the dishes excluded for the current user.
// A missing or expired record yields an empty list. The backend is never written.
func (s *ExclusionService) GetActiveExclusions(ctx context.Context) ([]string, error) {
	principal, err := s.session.Principal()
	if err != nil {
		return nil, err
	}

	record, err := s.findRecord(ctx, principal)
	if err != nil {
		logrus.Errorf("Failed to get exclusion list: %v", err)
		return nil, err
	}
	if record == nil {
		return []string{}, nil
	}
	return record.ActiveDishes(s.now()), nil
}

// GetExclusionDetail returns the current user's record, failing with
// domain.ErrNotConfigured when there is none and domain.ErrExpired when it has lapsed.
func (s *ExclusionService) GetExclusionDetail(ctx context.Context) (*domain.ExclusionRecord, error) {
	principal, err := s.session.Principal()
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, principal)
}

// GetAutoOrderInfo returns the stored settings without checking the expire date
func (s *ExclusionService) GetAutoOrderInfo(ctx context.Context) (*domain.AutoOrderInfo, error) {
	principal, err := s.session.Principal()
	if err != nil {
		return nil, err
	}

	record, err := s.findRecord(ctx, principal)
	if err != nil {
		logrus.Errorf("Failed to get auto-order info: %v", err)
		return nil, err
	}
	if record == nil {
		return &domain.AutoOrderInfo{ExcludedDishes: []string{}}, nil
	}

	info := &domain.AutoOrderInfo{ExcludedDishes: domain.NormalizeDishes(record.ExcludedDishes)}
	if !record.ExpireAt.IsZero() {
		expireAt := record.ExpireAt
		info.ExpireAt = &expireAt
	}
	return info, nil
}

// AddExclusion adds dish to the active list and writes the full record back
// with its expire date unchanged. Adding a dish already present still writes.
func (s *ExclusionService) AddExclusion(ctx context.Context, dish string) (*domain.ExclusionRecord, error) {
	return s.mutate(ctx, dish, "add", func(record domain.ExclusionRecord, dish string) domain.ExclusionRecord {
		return record.WithDish(dish)
	})
}

// RemoveExclusion removes dish from the active list and writes the full record back
func (s *ExclusionService) RemoveExclusion(ctx context.Context, dish string) (*domain.ExclusionRecord, error) {
	return s.mutate(ctx, dish, "remove", func(record domain.ExclusionRecord, dish string) domain.ExclusionRecord {
		return record.WithoutDish(dish)
	})
}

// UpdateExpireDate moves the expire date to date's calendar day while keeping
// the stored list. A user without a record gets a fresh, empty one.
// Failures other than session invalidation are reported as domain.ErrUpdateFailed.
func (s *ExclusionService) UpdateExpireDate(ctx context.Context, date time.Time) (*domain.ExclusionRecord, error) {
	principal, err := s.session.Principal()
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: %w: expire date is required", domain.ErrUpdateFailed, domain.ErrInvalidRequest)
	}

	unlock := s.locks.lock(principal)
	defer unlock()

	dishes := []string{}
	current, err := s.findRecord(ctx, principal)
	if err != nil {
		return nil, s.updateFailed(err)
	}
	if current != nil {
		dishes = domain.NormalizeDishes(current.ExcludedDishes)
	}

	record := domain.ExclusionRecord{
		Owner:          principal,
		ExcludedDishes: dishes,
		ExpireAt:       domain.StartOfDay(date, s.location),
	}
	if err := s.store.UpsertExclusionRecord(ctx, record); err != nil {
		return nil, s.updateFailed(err)
	}

	logrus.Infof("Expire date for %s set to %s", principal, domain.FormatDate(record.ExpireAt, s.location))
	return &record, nil
}

func (s *ExclusionService) updateFailed(err error) error {
	logrus.Errorf("Failed to update expire date: %v", err)
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
}

func (s *ExclusionService) mutate(ctx context.Context, dish, action string, apply func(domain.ExclusionRecord, string) domain.ExclusionRecord) (*domain.ExclusionRecord, error) {
	principal, err := s.session.Principal()
	if err != nil {
		return nil, err
	}
	dish, err = normalizeDish(dish)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(principal)
	defer unlock()

	current, err := s.detail(ctx, principal)
	if err != nil {
		return nil, err
	}

	updated := apply(*current, dish)
	updated.Owner = principal
	if err := s.store.UpsertExclusionRecord(ctx, updated); err != nil {
		logrus.Errorf("Failed to %s exclusion %q: %v", action, dish, err)
		return nil, err
	}

	logrus.Infof("Exclusion list for %s after %s %q: %v", principal, action, dish, updated.ExcludedDishes)
	return &updated, nil
}

func (s *ExclusionService) detail(ctx context.Context, principal string) (*domain.ExclusionRecord, error) {
	record, err := s.findRecord(ctx, principal)
	if err != nil {
		logrus.Errorf("Failed to get auto-order detail: %v", err)
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotConfigured
	}
	if !record.IsActive(s.now()) {
		return nil, domain.ErrExpired
	}
	record.ExcludedDishes = domain.NormalizeDishes(record.ExcludedDishes)
	return record, nil
}

// findRecord returns the first record owned by principal, or nil
func (s *ExclusionService) findRecord(ctx context.Context, principal string) (*domain.ExclusionRecord, error) {
	records, err := s.store.ListExclusionRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.Owner == principal {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func normalizeDish(dish string) (string, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return "", fmt.Errorf("%w: dish name is required", domain.ErrInvalidRequest)
	}
	if strings.Contains(dish, dishDelimiter) {
		return "", fmt.Errorf("%w: dish name must not contain %q", domain.ErrInvalidRequest, dishDelimiter)
	}
	return dish, nil
}

// principalLocks hands out one mutex per principal and forgets it once unused
type principalLocks struct {
	mu    sync.Mutex
	locks map[string]*principalLock
}

type principalLock struct {
	sync.Mutex
	refs int
}

func newPrincipalLocks() *principalLocks {
	return &principalLocks{locks: make(map[string]*principalLock)}
}

func (p *principalLocks) lock(principal string) func() {
	p.mu.Lock()
	l, ok := p.locks[principal]
	if !ok {
		l = &principalLock{}
		p.locks[principal] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, principal)
		}
		p.mu.Unlock()
	}
}
