// samarth-crm/models/fee_receipt.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// FeeReceipt - одна транзакция оплаты. Снимок сумм фиксируется на момент
// платежа: TotalFees и PaidBeforeThis не пересчитываются задним числом,
// чтобы напечатанная квитанция не менялась.
type FeeReceipt struct {
	gorm.Model
	ReceiptNo      string    `json:"receiptNo" gorm:"unique;not null"`
	StudentID      uint      `json:"studentId" gorm:"not null"`
	Student        Student   `json:"student"`
	PaymentDate    time.Time `json:"paymentDate"`
	PaymentTime    string    `json:"paymentTime"`
	TotalFees      float64   `json:"totalFees" gorm:"type:numeric(12,2)"`
	PaidBeforeThis float64   `json:"paidBeforeThis" gorm:"type:numeric(12,2)"`
	PaidFees       float64   `json:"paidFees" gorm:"type:numeric(12,2)"`
	RemainingFees  float64   `json:"remainingFees" gorm:"type:numeric(12,2)"`
	PaymentMode    string    `json:"paymentMode"`
}
