package services

import (
	"math"
	"testing"

	"crmadmin-backend/models"
)

func TestComputeReviewStats(t *testing.T) {
	t.Run("sent and unrated reviews excluded from rated set", func(t *testing.T) {
		reviews := []models.Review{
			{Rating: 4, Status: models.ReviewStatusReceived},
			{Rating: 0, Status: models.ReviewStatusReceived},
			{Rating: 5, Status: models.ReviewStatusSent},
		}

		stats := ComputeReviewStats(reviews)

		if stats.DisplayCount != 2 {
			t.Fatalf("expected display count 2 got %d", stats.DisplayCount)
		}
		if stats.RatedCount != 1 {
			t.Fatalf("expected rated count 1 got %d", stats.RatedCount)
		}
		if stats.Average != 4 || stats.Max != 4 || stats.Min != 4 {
			t.Fatalf("expected avg/max/min 4 got %v/%v/%v", stats.Average, stats.Max, stats.Min)
		}
	})

	t.Run("empty input yields zeros", func(t *testing.T) {
		stats := ComputeReviewStats(nil)
		if stats.Average != 0 || stats.Max != 0 || stats.Min != 0 ||
			stats.RatedCount != 0 || stats.DisplayCount != 0 {
			t.Fatalf("expected zero stats got %+v", stats)
		}
	})

	t.Run("all reviews sent yields zeros", func(t *testing.T) {
		reviews := []models.Review{
			{Rating: 5, Status: models.ReviewStatusSent},
			{Rating: 3, Status: models.ReviewStatusSent},
		}
		stats := ComputeReviewStats(reviews)
		if stats.DisplayCount != 0 || stats.Average != 0 {
			t.Fatalf("expected zero stats got %+v", stats)
		}
	})

	t.Run("min and max over several ratings", func(t *testing.T) {
		reviews := []models.Review{
			{Rating: 2, Status: models.ReviewStatusReceived},
			{Rating: 5, Status: models.ReviewStatusOther},
			{Rating: 3.5, Status: models.ReviewStatusReceived},
		}
		stats := ComputeReviewStats(reviews)
		if stats.Min != 2 || stats.Max != 5 {
			t.Fatalf("expected min 2 max 5 got %v/%v", stats.Min, stats.Max)
		}
		if stats.Average != 3.5 {
			t.Fatalf("expected average 3.5 got %v", stats.Average)
		}
	})
}

func TestStars(t *testing.T) {
	cases := []struct {
		name        string
		rating      float64
		wantFull    int
		wantPartial int
	}{
		{"no rating", 0, 0, 0},
		{"half star", 0.5, 0, 50},
		{"whole stars only", 3, 3, 0},
		{"fractional", 3.3, 3, 30},
		{"near full", 4.25, 4, 25},
		{"maximum", 5, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Stars(tc.rating)
			if got.Full != tc.wantFull {
				t.Fatalf("expected %d full stars got %d", tc.wantFull, got.Full)
			}
			if got.PartialPercent != tc.wantPartial {
				t.Fatalf("expected partial %d got %d", tc.wantPartial, got.PartialPercent)
			}
			slots := got.Full + got.Empty
			if got.PartialPercent > 0 {
				slots++
			}
			if slots != 5 {
				t.Fatalf("rating %v: slots add to %d, want 5", tc.rating, slots)
			}
		})
	}

	t.Run("full stars always floor of rating", func(t *testing.T) {
		for r := 0.0; r <= 5.0; r += 0.25 {
			got := Stars(r)
			if got.Full != int(math.Floor(r)) {
				t.Fatalf("rating %v: expected %d full stars got %d", r, int(math.Floor(r)), got.Full)
			}
		}
	})

	t.Run("out of range ratings clamped", func(t *testing.T) {
		if got := Stars(-1); got.Full != 0 || got.Empty != 5 {
			t.Fatalf("expected all empty got %+v", got)
		}
		if got := Stars(6); got.Full != 5 || got.Empty != 0 || got.PartialPercent != 0 {
			t.Fatalf("expected all full got %+v", got)
		}
	})
}

func TestPaymentHistoryTotal(t *testing.T) {
	payments := []models.Payment{
		{Total: 100},
		{}, // no total recorded
		{Total: 50},
	}

	if got := PaymentHistoryTotal(payments); got != 150 {
		t.Fatalf("expected 150 got %v", got)
	}

	if got := PaymentHistoryTotal(nil); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
}
