// samarth-crm/pkg/format/format.go
package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts - форматы дат, которые присылает сервер и формы.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// Date renders a calendar date as "Jan 5, 2024". Unparseable input yields
// the literal "Invalid Date" instead of an error, matching what the receipt
// table historically showed for bad data.
func Date(value string) string {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return "Invalid Date"
}

// Amount renders a monetary value with two fraction digits and Indian digit
// grouping: groups of two after the first three, e.g. 1234567 -> "12,34,567.00".
// Negative or non-finite input is coerced to "0.00".
func Amount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	return groupIndian(intPart) + "." + fracPart
}

// groupIndian вставляет разряды по индийской системе: последние три цифры,
// затем группы по две (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
