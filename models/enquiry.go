// samarth-crm/models/enquiry.go
package models

import "gorm.io/gorm"

// Enquiry - заявка с публичной формы на главной странице.
type Enquiry struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Mobile    string `json:"mobile" gorm:"not null"`
	Education string `json:"education"`
	Course    string `json:"course"`
}
