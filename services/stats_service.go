// services/stats_service.go
package services

import (
	"math"

	"crmadmin-backend/models"
)

// ReviewStats summarizes a customer's reviews. The display set is every
// review that is not still in "sent" status; the rated set is the subset of
// the display set with a nonzero rating. Average, Max and Min are taken over
// the rated set and are all 0 when it is empty.
type ReviewStats struct {
	Average      float64 `json:"average"`
	Max          float64 `json:"max"`
	Min          float64 `json:"min"`
	RatedCount   int     `json:"ratedCount"`
	DisplayCount int     `json:"displayCount"`
}

func ComputeReviewStats(reviews []models.Review) ReviewStats {
	var stats ReviewStats
	var sum float64
	for _, review := range reviews {
		if review.Status == models.ReviewStatusSent {
			continue
		}
		stats.DisplayCount++
		if review.Rating <= 0 {
			continue
		}
		if stats.RatedCount == 0 || review.Rating > stats.Max {
			stats.Max = review.Rating
		}
		if stats.RatedCount == 0 || review.Rating < stats.Min {
			stats.Min = review.Rating
		}
		sum += review.Rating
		stats.RatedCount++
	}
	if stats.RatedCount > 0 {
		stats.Average = sum / float64(stats.RatedCount)
	}
	return stats
}

// StarBreakdown describes how a rating fills five star slots: Full whole
// stars, then one partially filled star when PartialPercent > 0, then Empty
// stars. The three always account for all five slots.
type StarBreakdown struct {
	Full           int `json:"full"`
	PartialPercent int `json:"partialPercent"`
	Empty          int `json:"empty"`
}

func Stars(rating float64) StarBreakdown {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	full := int(math.Floor(rating))
	frac := rating - float64(full)
	breakdown := StarBreakdown{Full: full, Empty: 5 - full}
	if frac > 0 {
		breakdown.PartialPercent = int(math.Round(frac * 100))
		breakdown.Empty--
	}
	return breakdown
}

// PaymentHistoryTotal sums the total field across the payment list. Rows
// with no total recorded contribute 0.
func PaymentHistoryTotal(payments []models.Payment) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.Total
	}
	return total
}
