// samarth-crm/models/student.go

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Student represents an admitted student in the database.
type Student struct {
	gorm.Model
	PhotoURL string `json:"photoUrl"`

	// --- ОСНОВНЫЕ ДАННЫЕ ---
	StudentName   string     `json:"studentName" gorm:"not null"`
	FatherName    string     `json:"fatherName"`
	Surname       string     `json:"surname"`
	MotherName    string     `json:"motherName"`
	FullName      string     `json:"fullName" gorm:"not null"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	Gender        string     `json:"gender" gorm:"default:Male"`
	MaritalStatus string     `json:"maritalStatus" gorm:"default:Single"`

	// --- КОНТАКТЫ ---
	MobileOwn    string `json:"mobileOwn" gorm:"not null"`
	ParentMobile string `json:"parentMobile"`

	// --- КУРС ---
	Course                   string `json:"course" gorm:"default:MS-CIT"`
	CustomCourse             string `json:"customCourse"`
	EducationalQualification string `json:"educationalQualification"`

	// --- АДРЕС ---
	Address     string `json:"address"`
	City        string `json:"city"`
	TehsilBlock string `json:"tehsilBlock"`
	District    string `json:"district"`
	PinCode     string `json:"pinCode"`

	// --- ФИНАНСЫ ---
	TotalFees float64 `json:"totalFees" gorm:"type:numeric(12,2);default:5000"`
	PaidFees  float64 `json:"paidFees" gorm:"type:numeric(12,2);default:0"`

	AdmissionDate time.Time `json:"admissionDate"`

	FeeReceipts []FeeReceipt `gorm:"foreignKey:StudentID" json:"feeReceipts,omitempty"`
}

// CourseName - курс для отображения: выбранный из списка или введенный вручную.
func (s *Student) CourseName() string {
	if s.Course == "Other" && s.CustomCourse != "" {
		return s.CustomCourse
	}
	return s.Course
}

// RemainingFees - остаток к оплате; меньше нуля не возвращаем.
func (s *Student) RemainingFees() float64 {
	remaining := s.TotalFees - s.PaidFees
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ComposeFullName собирает полное имя из трех частей, пропуская пустые.
func ComposeFullName(studentName, fatherName, surname string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{studentName, fatherName, surname} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
