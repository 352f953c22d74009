// samarth-crm/pkg/format/words.go
package format

import (
	"errors"
	"strings"
)

var (
	wordOnes  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	wordTens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	wordTeens = []string{
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
		"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
)

// ErrNegativeAmount возвращается для отрицательных сумм: словами печатаем
// только неотрицательные значения на квитанции.
var ErrNegativeAmount = errors.New("format: amount must not be negative")

// AmountInWords converts an integer amount into English words using the
// Indian numbering scale (crore = 10^7, lakh = 10^5, thousand, hundred).
// Zero yields "Zero"; negative input is rejected.
func AmountInWords(n int) (string, error) {
	if n < 0 {
		return "", ErrNegativeAmount
	}
	if n == 0 {
		return "Zero", nil
	}
	return strings.TrimSpace(scaled(n)), nil
}

// scaled снимает старший разряд (крор, лакх, тысяча) и рекурсивно
// обрабатывает остаток.
func scaled(n int) string {
	switch {
	case n >= 10000000:
		return belowThousand(n/10000000) + "Crore " + scaled(n%10000000)
	case n >= 100000:
		return belowThousand(n/100000) + "Lakh " + scaled(n%100000)
	case n >= 1000:
		return belowThousand(n/1000) + "Thousand " + scaled(n%1000)
	default:
		return belowThousand(n)
	}
}

func belowThousand(n int) string {
	if n == 0 {
		return ""
	}

	var b strings.Builder

	if n >= 100 {
		b.WriteString(wordOnes[n/100] + " Hundred ")
		n %= 100
	}

	switch {
	case n >= 20:
		b.WriteString(wordTens[n/10] + " ")
		n %= 10
	case n >= 10:
		b.WriteString(wordTeens[n-10] + " ")
		return b.String()
	}

	if n > 0 {
		b.WriteString(wordOnes[n] + " ")
	}

	return b.String()
}
