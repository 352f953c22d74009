// samarth-crm/pkg/receipts/filter_test.go
package receipts

import (
	"reflect"
	"testing"
)

func sampleReceipts() []Receipt {
	return []Receipt{
		{ID: 1, ReceiptNo: "R-001", StudentName: "Amit Pawar", PaymentDate: "2024-01-05", PaidFees: 100, RemainingFees: 50},
		{ID: 2, ReceiptNo: "R-002", StudentName: "Sneha Kulkarni", PaymentDate: "2024-02-10", PaidFees: 200},
		{ID: 3, ReceiptNo: "R-003", StudentName: "Rahul Jadhav", PaymentDate: "2024-01-20", PaidFees: 300, RemainingFees: 150},
	}
}

func ids(rs []Receipt) []uint {
	out := make([]uint, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	all := sampleReceipts()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []uint
	}{
		{"identity on empty criteria", Criteria{}, []uint{1, 2, 3}},
		{"search by name, case-insensitive", Criteria{Search: "sneha"}, []uint{2}},
		{"search matches receipt number", Criteria{Search: "r-003"}, []uint{3}},
		{"search without matches", Criteria{Search: "nobody"}, []uint{}},
		{"exact date", Criteria{Date: "2024-01-20"}, []uint{3}},
		{"month keeps original order", Criteria{Month: 1}, []uint{1, 3}},
		{"year", Criteria{Year: 2024}, []uint{1, 2, 3}},
		{"month and year combined", Criteria{Month: 2, Year: 2024}, []uint{2}},
		{"month of another year", Criteria{Month: 1, Year: 2023}, []uint{}},
		{"all criteria together", Criteria{Search: "amit", Date: "2024-01-05", Month: 1, Year: 2024}, []uint{1}},
		{"criteria are ANDed", Criteria{Search: "amit", Month: 2}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.criteria)
			if !reflect.DeepEqual(ids(got), []uint(tt.wantIDs)) {
				t.Errorf("Filter() ids = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	all := sampleReceipts()
	before := append([]Receipt(nil), all...)

	Filter(all, Criteria{Search: "amit", Month: 1})

	if !reflect.DeepEqual(all, before) {
		t.Error("Filter mutated its input")
	}
}

func TestFilterRoundTrip(t *testing.T) {
	all := sampleReceipts()

	narrowed := Filter(all, Criteria{Month: 1})
	if len(narrowed) != 2 {
		t.Fatalf("narrowed = %d receipts, want 2", len(narrowed))
	}

	restored := Filter(all, Criteria{})
	if !reflect.DeepEqual(restored, all) {
		t.Errorf("clearing criteria did not restore the original sequence: %v", ids(restored))
	}
}

func TestFilterSkipsUnparseableDatesForMonthCriteria(t *testing.T) {
	all := []Receipt{
		{ID: 1, PaymentDate: "2024-01-05"},
		{ID: 2, PaymentDate: "corrupted"},
	}

	got := Filter(all, Criteria{Month: 1})
	if !reflect.DeepEqual(ids(got), []uint{1}) {
		t.Errorf("Filter() ids = %v, want [1]", ids(got))
	}
}

func TestCriteriaValues(t *testing.T) {
	c := Criteria{Search: "amit", Date: "2024-01-05", Month: 3, Year: 2024}
	v := c.Values()

	if got := v.Get("search"); got != "amit" {
		t.Errorf("search = %q", got)
	}
	if got := v.Get("date"); got != "2024-01-05" {
		t.Errorf("date = %q", got)
	}
	if got := v.Get("month"); got != "03" {
		t.Errorf("month = %q, want zero-padded", got)
	}
	if got := v.Get("year"); got != "2024" {
		t.Errorf("year = %q", got)
	}

	if encoded := (Criteria{}).Values().Encode(); encoded != "" {
		t.Errorf("zero criteria produced params: %q", encoded)
	}
}
