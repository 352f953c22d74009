// samarth-crm/internal/handlers/fees_payment_handler.go
package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"samarth-crm/config"
	"samarth-crm/models"
	"samarth-crm/pkg/format"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentSearchResult - краткая карточка для выпадающего списка поиска.
type StudentSearchResult struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	MobileOwn string `json:"mobile_own"`
	Course    string `json:"course"`
}

// SearchStudentsHandler ищет учеников по имени или телефону для формы
// приема оплаты. Запросы короче двух символов не обрабатываем.
func SearchStudentsHandler(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < 2 {
		c.JSON(http.StatusOK, gin.H{"students": []StudentSearchResult{}})
		return
	}

	var students []StudentSearchResult
	pattern := "%" + strings.ToLower(q) + "%"

	err := config.DB.Table("students").
		Select(`
			students.id,
			students.full_name,
			students.mobile_own,
			CASE WHEN students.course = 'Other' AND students.custom_course <> '' THEN students.custom_course ELSE students.course END AS course
		`).
		Where("students.deleted_at IS NULL").
		Where("LOWER(students.full_name) LIKE ? OR students.mobile_own LIKE ?", pattern, pattern).
		Order("students.full_name").
		Limit(10).
		Scan(&students).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось выполнить поиск учеников"})
		return
	}

	if students == nil {
		students = make([]StudentSearchResult, 0)
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// GetAdmittedStudentHandler отдает полную карточку ученика вместе с
// рассчитанным остатком оплаты.
func GetAdmittedStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ученик не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения данных ученика"})
		return
	}

	var dob string
	if student.DateOfBirth != nil {
		dob = student.DateOfBirth.Format("2006-01-02")
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                        student.ID,
		"student_name":              student.StudentName,
		"father_name":               student.FatherName,
		"surname":                   student.Surname,
		"mother_name":               student.MotherName,
		"full_name":                 student.FullName,
		"date_of_birth":             dob,
		"gender":                    student.Gender,
		"marital_status":            student.MaritalStatus,
		"photo":                     student.PhotoURL,
		"mobile_own":                student.MobileOwn,
		"parent_mobile":             student.ParentMobile,
		"course":                    student.Course,
		"custom_course":             student.CustomCourse,
		"educational_qualification": student.EducationalQualification,
		"address":                   student.Address,
		"city":                      student.City,
		"tehsil_block":              student.TehsilBlock,
		"district":                  student.District,
		"pin_code":                  student.PinCode,
		"total_fees":                student.TotalFees,
		"paid_fees":                 student.PaidFees,
		"remaining_fees":            student.RemainingFees(),
	})
}

// FeesPaymentInput - данные формы приема оплаты.
type FeesPaymentInput struct {
	StudentID   uint    `json:"student_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentMode string  `json:"payment_mode" binding:"required"`
}

// SubmitFeesPaymentHandler принимает платеж: проверяет сумму, создает
// квитанцию и увеличивает оплаченное учеником в одной транзакции
// (ученик блокируется на время платежа, чтобы две кассы не провели
// оплату поверх одного остатка).
func SubmitFeesPaymentHandler(c *gin.Context) {
	var input FeesPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Неверные данные: " + err.Error()})
		return
	}

	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Сумма платежа должна быть больше нуля"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось начать транзакцию"})
		return
	}

	var student models.Student
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&student, input.StudentID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Ученик не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Ошибка при поиске ученика"})
		return
	}

	remaining := student.RemainingFees()
	if input.Amount > remaining {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Сумма платежа не может превышать остаток"})
		return
	}

	now := time.Now()
	receiptNo, err := nextReceiptNo(tx, now)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось выдать номер квитанции"})
		return
	}

	receipt := models.FeeReceipt{
		ReceiptNo:      receiptNo,
		StudentID:      student.ID,
		PaymentDate:    now,
		PaymentTime:    now.Format("15:04"),
		TotalFees:      student.TotalFees,
		PaidBeforeThis: student.PaidFees,
		PaidFees:       input.Amount,
		RemainingFees:  remaining - input.Amount,
		PaymentMode:    input.PaymentMode,
	}

	// Две кассы могут одновременно провести платежи разным ученикам
	// (блокировка ученика их не сериализует) и получить один номер.
	// Столкновение ловит уникальный индекс по receipt_no: откатываемся
	// к savepoint и пробуем следующий номер.
	tx.SavePoint("receipt_create")
	if err := tx.Create(&receipt).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось сохранить платеж"})
			return
		}

		tx.RollbackTo("receipt_create")
		receiptNo, err = nextReceiptNo(tx, now)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось выдать номер квитанции"})
			return
		}
		receipt.ReceiptNo = receiptNo

		if err := tx.Create(&receipt).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось сохранить платеж"})
			return
		}
	}

	updateExpr := gorm.Expr("paid_fees + ?", input.Amount)
	if err := tx.Model(&student).Update("paid_fees", updateExpr).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось обновить оплату ученика"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось подтвердить транзакцию"})
		return
	}

	amountWords, err := format.AmountInWords(int(math.Round(input.Amount)))
	if err != nil {
		amountWords = ""
	}

	// Готовый к печати ответ: суммы отформатированы, сумма платежа прописью.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"receipt": gin.H{
			"receipt_no":      receipt.ReceiptNo,
			"date":            format.Date(receipt.PaymentDate.Format("2006-01-02")),
			"time":            receipt.PaymentTime,
			"student_name":    student.FullName,
			"course":          student.CourseName(),
			"mobile":          student.MobileOwn,
			"payment_mode":    receipt.PaymentMode,
			"total_fees":      format.Amount(receipt.TotalFees),
			"previous_paid":   format.Amount(receipt.PaidBeforeThis),
			"amount_paid":     format.Amount(receipt.PaidFees),
			"remaining_fees":  format.Amount(receipt.RemainingFees),
			"amount_in_words": "Rupees " + amountWords + " Only",
		},
	})
}

// nextReceiptNo выдает следующий номер в годовой последовательности,
// например RCP-2024-0017. Последовательность ведется от максимального уже
// выданного номера (включая мягко удаленные квитанции), поэтому номера не
// переиспользуются. Уникальный индекс по receipt_no страхует от гонки.
func nextReceiptNo(tx *gorm.DB, now time.Time) (string, error) {
	prefix := fmt.Sprintf("RCP-%d-", now.Year())

	var last string
	if err := tx.Model(&models.FeeReceipt{}).
		Unscoped().
		Where("receipt_no LIKE ?", prefix+"%").
		Select("COALESCE(MAX(receipt_no), '')").
		Scan(&last).Error; err != nil {
		return "", err
	}

	return nextInSequence(prefix, last), nil
}

// nextInSequence выдает номер, следующий за last в пределах prefix.
// Пустой или чужой last начинает последовательность заново.
func nextInSequence(prefix, last string) string {
	seq := 0
	if strings.HasPrefix(last, prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1)
}
