// samarth-crm/pkg/receipts/summary_test.go
package receipts

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		view []Receipt
		want Summary
	}{
		{
			name: "empty view",
			view: nil,
			want: Summary{},
		},
		{
			name: "two receipts",
			view: []Receipt{
				{PaidFees: 100, RemainingFees: 50},
				{PaidFees: 200, RemainingFees: 0},
			},
			want: Summary{Count: 2, TotalPaid: 300, TotalRemaining: 50},
		},
		{
			name: "non-numeric amounts count as zero",
			view: []Receipt{
				{PaidFees: math.NaN(), RemainingFees: 75},
				{PaidFees: 25, RemainingFees: math.NaN()},
			},
			want: Summary{Count: 2, TotalPaid: 25, TotalRemaining: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.view); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarizeIsStateless(t *testing.T) {
	view := []Receipt{{PaidFees: 10, RemainingFees: 5}}

	first := Summarize(view)
	second := Summarize(view)

	if first != second {
		t.Errorf("repeated Summarize differs: %+v vs %+v", first, second)
	}
}
