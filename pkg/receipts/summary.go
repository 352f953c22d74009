// samarth-crm/pkg/receipts/summary.go
package receipts

import "math"

// Summary - итоги по текущему отфильтрованному списку для карточек
// над таблицей.
type Summary struct {
	Count          int     `json:"count"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRemaining float64 `json:"total_remaining"`
}

// Summarize computes totals over the given view from scratch. No incremental
// state: correctness never depends on what was summarized before. O(n) per
// call is fine for lists of hundreds.
func Summarize(view []Receipt) Summary {
	s := Summary{Count: len(view)}
	for _, r := range view {
		if !math.IsNaN(r.PaidFees) {
			s.TotalPaid += r.PaidFees
		}
		if !math.IsNaN(r.RemainingFees) {
			s.TotalRemaining += r.RemainingFees
		}
	}
	return s
}
