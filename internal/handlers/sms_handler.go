// samarth-crm/internal/handlers/sms_handler.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"samarth-crm/config"
	"samarth-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxSMSLength - лимит одного SMS-сообщения.
const maxSMSLength = 160

// SMSStudent - карточка ученика в сетке выбора получателей.
type SMSStudent struct {
	ID            uint    `json:"id"`
	FullName      string  `json:"full_name"`
	MobileOwn     string  `json:"mobile_own"`
	Course        string  `json:"course"`
	PhotoURL      string  `json:"photo_url"`
	RemainingFees float64 `json:"remaining_fees"`
}

// GetSMSStudentsHandler отдает учеников для рассылки, при необходимости
// сужая по месяцу/году приема.
func GetSMSStudentsHandler(c *gin.Context) {
	var students []SMSStudent

	query := config.DB.Table("students").
		Select(`
			students.id,
			students.full_name,
			students.mobile_own,
			CASE WHEN students.course = 'Other' AND students.custom_course <> '' THEN students.custom_course ELSE students.course END AS course,
			students.photo_url,
			GREATEST(students.total_fees - students.paid_fees, 0) AS remaining_fees
		`).
		Where("students.deleted_at IS NULL")

	if month := c.Query("month"); month != "" {
		query = query.Where("EXTRACT(MONTH FROM students.admission_date) = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("EXTRACT(YEAR FROM students.admission_date) = ?", year)
	}

	if err := query.Order("students.full_name").Scan(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось получить список учеников"})
		return
	}

	if students == nil {
		students = make([]SMSStudent, 0)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "students": students})
}

// SendSMSInput - выбранные получатели и текст рассылки.
type SendSMSInput struct {
	StudentIDs []uint `json:"student_ids" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// SendSMSHandler рассылает сообщение выбранным ученикам. Каждая отправка
// логируется в sms_logs под общим batch id. Без настроенного шлюза
// сообщения помечаются как simulated - поведение для стенда без
// SMS-провайдера.
func SendSMSHandler(c *gin.Context) {
	var input SendSMSInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Неверные данные: " + err.Error()})
		return
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Текст сообщения пуст"})
		return
	}
	if len([]rune(message)) > maxSMSLength {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Сообщение длиннее 160 символов"})
		return
	}
	if len(input.StudentIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Не выбран ни один ученик"})
		return
	}

	var students []models.Student
	if err := config.DB.Where("id IN ?", input.StudentIDs).Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось загрузить получателей"})
		return
	}
	if len(students) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Получатели не найдены"})
		return
	}

	batchID := uuid.New().String()
	gatewayURL := os.Getenv("SMS_GATEWAY_URL")

	sent := 0
	for _, student := range students {
		logEntry := models.SMSLog{
			BatchID:   batchID,
			StudentID: student.ID,
			Mobile:    student.MobileOwn,
			Message:   message,
		}

		if gatewayURL == "" {
			logEntry.Status = "simulated"
			sent++
		} else if err := dispatchSMS(gatewayURL, student.MobileOwn, message); err != nil {
			logEntry.Status = "failed"
			logEntry.Error = err.Error()
			slog.Error("Не удалось отправить SMS", "error", err, "student_id", student.ID, "batch_id", batchID)
		} else {
			logEntry.Status = "sent"
			sent++
		}

		if err := config.DB.Create(&logEntry).Error; err != nil {
			slog.Error("Не удалось записать лог SMS", "error", err, "batch_id", batchID)
		}
	}

	slog.Info("Рассылка завершена", "batch_id", batchID, "recipients", len(students), "sent", sent)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("Отправлено %d из %d сообщений", sent, len(students)),
		"batch_id": batchID,
	})
}

// dispatchSMS отправляет одно сообщение через HTTP-шлюз провайдера.
func dispatchSMS(gatewayURL, mobile, message string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      mobile,
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса к шлюзу: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса к шлюзу: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка отправки запроса к шлюзу: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("шлюз ответил статусом %d", resp.StatusCode)
	}
	return nil
}
