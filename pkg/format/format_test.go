// samarth-crm/pkg/format/format_test.go
package format

import "testing"

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain date", "2024-01-05", "Jan 5, 2024"},
		{"rfc3339", "2024-02-10T00:00:00Z", "Feb 10, 2024"},
		{"datetime", "2024-03-01 14:30:00", "Mar 1, 2024"},
		{"dotted", "15.08.2024", "Aug 15, 2024"},
		{"garbage", "not-a-date", "Invalid Date"},
		{"empty", "", "Invalid Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.value); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "0.00"},
		{"small", 5, "5.00"},
		{"three digits", 999, "999.00"},
		{"thousand", 1000, "1,000.00"},
		{"five digits", 12345, "12,345.00"},
		{"lakhs", 1234567, "12,34,567.00"},
		{"crores", 123456789, "12,34,56,789.00"},
		{"fraction rounds", 123456.789, "1,23,456.79"},
		{"negative coerced", -5, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.amount); got != tt.want {
				t.Errorf("Amount(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
