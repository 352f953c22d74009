// samarth-crm/pkg/receipts/filter.go
package receipts

import (
	"fmt"
	"net/url"
	"strings"
)

// Criteria - текущие ограничения пользователя на список квитанций.
// Нулевое значение поля означает "не фильтровать по нему".
type Criteria struct {
	Search string // подстрока, без учета регистра, по имени ученика и номеру квитанции
	Date   string // точная дата платежа, YYYY-MM-DD
	Month  int    // 1-12
	Year   int    // четыре цифры
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Date == "" && c.Month == 0 && c.Year == 0
}

// Values serializes the criteria under the parameter names the export
// endpoint expects: search, date, month, year. Month is zero-padded the way
// the page's <select> historically sent it.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Search != "" {
		v.Set("search", c.Search)
	}
	if c.Date != "" {
		v.Set("date", c.Date)
	}
	if c.Month != 0 {
		v.Set("month", fmt.Sprintf("%02d", c.Month))
	}
	if c.Year != 0 {
		v.Set("year", fmt.Sprintf("%d", c.Year))
	}
	return v
}

// Filter применяет все заданные критерии через логическое И и возвращает
// новый срез, сохраняя исходный порядок. Пустые критерии - тождественный
// фильтр. Входной срез не изменяется.
func Filter(all []Receipt, c Criteria) []Receipt {
	out := make([]Receipt, 0, len(all))
	search := strings.ToLower(c.Search)

	for _, r := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.StudentName), search) &&
			!strings.Contains(strings.ToLower(r.ReceiptNo), search) {
			continue
		}

		if c.Date != "" && r.PaymentDate != c.Date {
			continue
		}

		if c.Month != 0 || c.Year != 0 {
			t, ok := r.paymentDate()
			if !ok {
				continue
			}
			if c.Month != 0 && int(t.Month()) != c.Month {
				continue
			}
			if c.Year != 0 && t.Year() != c.Year {
				continue
			}
		}

		out = append(out, r)
	}

	return out
}
