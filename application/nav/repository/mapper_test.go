package repository

import (
	"testing"
	"time"
)

func TestToNullTime(t *testing.T) {
	ref := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nil yields invalid", func(t *testing.T) {
		if got := ToNullTime(nil); got.Valid {
			t.Errorf("Expected invalid, got %v", got)
		}
	})

	t.Run("time.Time passes through", func(t *testing.T) {
		got := ToNullTime(ref)
		if !got.Valid || !got.Time.Equal(ref) {
			t.Errorf("Expected %v, got %v", ref, got)
		}
	})

	t.Run("nil time pointer yields invalid", func(t *testing.T) {
		var p *time.Time
		if got := ToNullTime(p); got.Valid {
			t.Errorf("Expected invalid, got %v", got)
		}
	})

	t.Run("date-only string", func(t *testing.T) {
		got := ToNullTime("2023-06-01")
		if !got.Valid || !got.Time.Equal(ref) {
			t.Errorf("Expected %v, got %v", ref, got)
		}
	})

	t.Run("datetime string", func(t *testing.T) {
		got := ToNullTime("2023-06-01 00:00:00")
		if !got.Valid || !got.Time.Equal(ref) {
			t.Errorf("Expected %v, got %v", ref, got)
		}
	})

	t.Run("sqlite timestamp with offset", func(t *testing.T) {
		got := ToNullTime([]byte("2023-06-01 00:00:00+00:00"))
		if !got.Valid || !got.Time.Equal(ref) {
			t.Errorf("Expected %v, got %v", ref, got)
		}
	})

	t.Run("unparseable string yields invalid", func(t *testing.T) {
		if got := ToNullTime("not a date"); got.Valid {
			t.Errorf("Expected invalid, got %v", got)
		}
	})

	t.Run("unsupported type yields invalid", func(t *testing.T) {
		if got := ToNullTime(42); got.Valid {
			t.Errorf("Expected invalid, got %v", got)
		}
	})
}
