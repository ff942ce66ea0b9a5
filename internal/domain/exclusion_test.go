package domain

import (
	"reflect"
	"testing"
	"time"
)

// TestExclusionRecordIsActive tests the expiry boundary
func TestExclusionRecordIsActive(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if !(ExclusionRecord{ExpireAt: now.Add(time.Second)}).IsActive(now) {
		t.Error("expected record expiring after now to be active")
	}
	if (ExclusionRecord{ExpireAt: now}).IsActive(now) {
		t.Error("expected record expiring exactly now to be expired")
	}
	if (ExclusionRecord{ExpireAt: now.Add(-time.Hour)}).IsActive(now) {
		t.Error("expected record expired an hour ago to be expired")
	}
	if (ExclusionRecord{}).IsActive(now) {
		t.Error("expected record without expire date to be expired")
	}
}

// TestActiveDishesEmptyWhenExpired tests that expired content is ignored
func TestActiveDishesEmptyWhenExpired(t *testing.T) {
	now := time.Now()
	record := ExclusionRecord{
		Owner:          "alice",
		ExcludedDishes: []string{"鱼香肉丝", "宫保鸡丁"},
		ExpireAt:       now.Add(-time.Minute),
	}

	got := record.ActiveDishes(now)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

// TestNormalizeDishes tests trimming, de-duplication and order preservation
func TestNormalizeDishes(t *testing.T) {
	got := NormalizeDishes([]string{" 红烧肉", "宫保鸡丁 ", "", "红烧肉", "  ", "鱼香肉丝"})
	want := []string{"红烧肉", "宫保鸡丁", "鱼香肉丝"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := NormalizeDishes(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice for nil input, got %#v", got)
	}
}

// TestWithDishAppendsOnce tests that adding a present dish is a no-op on the set
func TestWithDishAppendsOnce(t *testing.T) {
	expireAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	record := ExclusionRecord{Owner: "alice", ExcludedDishes: []string{"鱼香肉丝"}, ExpireAt: expireAt}

	added := record.WithDish("宫保鸡丁")
	if want := []string{"鱼香肉丝", "宫保鸡丁"}; !reflect.DeepEqual(added.ExcludedDishes, want) {
		t.Errorf("expected %v, got %v", want, added.ExcludedDishes)
	}
	if !added.ExpireAt.Equal(expireAt) {
		t.Errorf("expected expire date unchanged, got %v", added.ExpireAt)
	}

	again := added.WithDish("宫保鸡丁")
	if len(again.ExcludedDishes) != 2 {
		t.Errorf("expected duplicates to collapse, got %v", again.ExcludedDishes)
	}

	if len(record.ExcludedDishes) != 1 {
		t.Errorf("expected original record untouched, got %v", record.ExcludedDishes)
	}
}

// TestWithoutDishKeepsOrder tests removal in place
func TestWithoutDishKeepsOrder(t *testing.T) {
	record := ExclusionRecord{ExcludedDishes: []string{"a", "b", "c"}}

	got := record.WithoutDish("b").ExcludedDishes
	if want := []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = record.WithoutDish("missing").ExcludedDishes
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestAddThenRemoveRestoresList tests the add/remove pair
func TestAddThenRemoveRestoresList(t *testing.T) {
	record := ExclusionRecord{ExcludedDishes: []string{"红烧肉", "鱼香肉丝"}, ExpireAt: time.Now().Add(time.Hour)}

	restored := record.WithDish("宫保鸡丁").WithoutDish("宫保鸡丁")
	if !reflect.DeepEqual(restored.ExcludedDishes, record.ExcludedDishes) {
		t.Errorf("expected %v, got %v", record.ExcludedDishes, restored.ExcludedDishes)
	}
	if !restored.ExpireAt.Equal(record.ExpireAt) {
		t.Error("expected expire date unchanged")
	}
}

// TestContains func
func TestContains(t *testing.T) {
	record := ExclusionRecord{ExcludedDishes: []string{" 红烧肉 "}}
	if !record.Contains("红烧肉") {
		t.Error("expected trimmed name to match")
	}
	if record.Contains("宫保鸡丁") {
		t.Error("expected missing dish not to match")
	}
}
