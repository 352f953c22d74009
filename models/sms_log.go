// samarth-crm/models/sms_log.go
package models

import "gorm.io/gorm"

// SMSLog - одно отправленное сообщение в рамках рассылки. BatchID объединяет
// сообщения одной рассылки.
type SMSLog struct {
	gorm.Model
	BatchID   string  `json:"batchId" gorm:"index;not null"`
	StudentID uint    `json:"studentId" gorm:"not null"`
	Student   Student `json:"student"`
	Mobile    string  `json:"mobile"`
	Message   string  `json:"message"`
	Status    string  `json:"status"` // sent / failed / simulated
	Error     string  `json:"error,omitempty"`
}
