package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"classbook/models"
)

func TestMemoryPendingStoreTakeIsSingleUse(t *testing.T) {
	s := NewMemoryPendingStore()
	ctx := context.Background()
	p := models.PendingBooking{ID: "p1", Booking: models.Booking{Teacher: "Ana"}}
	if err := s.Save(ctx, p, time.Minute); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Take(ctx, "p1")
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if got.Booking.Teacher != "Ana" {
		t.Errorf("Take() = %+v", got)
	}
	if _, err := s.Take(ctx, "p1"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("second Take() error = %v, want ErrPendingNotFound", err)
	}
}

func TestMemoryPendingStoreExpires(t *testing.T) {
	now := time.Date(2025, 9, 23, 9, 0, 0, 0, time.UTC)
	s := NewMemoryPendingStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Save(ctx, models.PendingBooking{ID: "p1"}, 10*time.Minute)
	now = now.Add(10 * time.Minute)

	if _, err := s.Take(ctx, "p1"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("Take() after expiry error = %v", err)
	}
}

func TestMemoryPendingStoreDelete(t *testing.T) {
	s := NewMemoryPendingStore()
	ctx := context.Background()
	_ = s.Save(ctx, models.PendingBooking{ID: "p1"}, time.Minute)

	if err := s.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "p1"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("second Delete() error = %v", err)
	}
}
