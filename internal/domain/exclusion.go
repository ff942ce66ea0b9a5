package domain

import (
	"strings"
	"time"
)

// ExclusionRecord is a user's list of dishes the auto-order must never pick,
// valid until ExpireAt. ExcludedDishes behaves as a set that keeps insertion order.
// The backend stores one record per owner and offers no version token.
type ExclusionRecord struct {
	Owner          string    `json:"owner"`
	ExcludedDishes []string  `json:"excluded_dishes"`
	ExpireAt       time.Time `json:"expire_at"`

	// ExpireText is the expire value exactly as the store returned it. Stores
	// write it back verbatim while ExpireAt still matches it.
	ExpireText string `json:"-"`
}

// IsActive reports whether the record is still in force at now.
// A record is expired once now reaches ExpireAt.
func (r ExclusionRecord) IsActive(now time.Time) bool {
	return now.Before(r.ExpireAt)
}

// ActiveDishes returns the excluded dishes in force at now.
// Expired records are logically empty whatever they store.
func (r ExclusionRecord) ActiveDishes(now time.Time) []string {
	if !r.IsActive(now) {
		return []string{}
	}
	return NormalizeDishes(r.ExcludedDishes)
}

// Contains func
func (r ExclusionRecord) Contains(dish string) bool {
	dish = strings.TrimSpace(dish)
	for _, d := range r.ExcludedDishes {
		if strings.TrimSpace(d) == dish {
			return true
		}
	}
	return false
}

// WithDish returns a copy of the record with dish appended, unless already present
func (r ExclusionRecord) WithDish(dish string) ExclusionRecord {
	dishes := NormalizeDishes(r.ExcludedDishes)
	r.ExcludedDishes = NormalizeDishes(append(dishes, dish))
	return r
}

// WithoutDish returns a copy of the record with dish removed in place
func (r ExclusionRecord) WithoutDish(dish string) ExclusionRecord {
	dish = strings.TrimSpace(dish)
	dishes := NormalizeDishes(r.ExcludedDishes)
	kept := make([]string, 0, len(dishes))
	for _, d := range dishes {
		if d != dish {
			kept = append(kept, d)
		}
	}
	r.ExcludedDishes = kept
	return r
}

// NormalizeDishes trims every name, drops empty ones and collapses duplicates,
// keeping first-seen order. It always returns a non-nil slice.
func NormalizeDishes(dishes []string) []string {
	seen := make(map[string]struct{}, len(dishes))
	result := make([]string, 0, len(dishes))
	for _, d := range dishes {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	return result
}

// AutoOrderInfo is the unvalidated view of a user's auto-order settings.
// ExpireAt is nil when the user has no record.
type AutoOrderInfo struct {
	ExcludedDishes []string   `json:"excluded_dishes"`
	ExpireAt       *time.Time `json:"expire_at,omitempty"`
}
