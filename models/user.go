// samarth-crm/models/user.go
package models

import "gorm.io/gorm"

// User - сотрудник института с доступом к панели.
type User struct {
	gorm.Model
	Login        string `json:"login" gorm:"unique;not null"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"-" gorm:"not null"`
}
