// samarth-crm/pkg/format/words_test.go
package format

import (
	"errors"
	"testing"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{10, "Ten"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{100000, "One Lakh"},
		{10000000, "One Crore"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{20000017, "Two Crore Seventeen"},
	}

	for _, tt := range tests {
		got, err := AmountInWords(tt.n)
		if err != nil {
			t.Errorf("AmountInWords(%d) unexpected error: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AmountInWords(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAmountInWordsNegative(t *testing.T) {
	if _, err := AmountInWords(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("AmountInWords(-1) error = %v, want ErrNegativeAmount", err)
	}
}
