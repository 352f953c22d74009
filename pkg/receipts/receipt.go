// samarth-crm/pkg/receipts/receipt.go

// Package receipts is the client-side core of the fee receipts page: an
// in-memory cache of the server's receipt list with compound filtering and
// summary totals. It talks to the server only over HTTP and never renders
// anything itself; consumers subscribe to changes and draw the view.
package receipts

import "time"

// Receipt - одна транзакция оплаты. Поля повторяют JSON-ответ сервера
// (snake_case, как его исторически отдает /api/receipts/).
type Receipt struct {
	ID             uint    `json:"id"`
	ReceiptNo      string  `json:"receipt_no"`
	StudentName    string  `json:"student_name"`
	PaymentDate    string  `json:"payment_date"` // YYYY-MM-DD, локальная дата без зоны
	PaymentTime    string  `json:"payment_time,omitempty"`
	Course         string  `json:"course,omitempty"`
	Mobile         string  `json:"mobile,omitempty"`
	PaymentMode    string  `json:"payment_mode,omitempty"`
	TotalFees      float64 `json:"total_fees"`
	PaidBeforeThis float64 `json:"paid_before_this"`
	PaidFees       float64 `json:"paid_fees"`
	RemainingFees  float64 `json:"remaining_fees"`
}

// paymentDate парсит дату платежа; ok=false для битых значений.
func (r Receipt) paymentDate() (time.Time, bool) {
	t, err := time.Parse("2006-01-02", r.PaymentDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
