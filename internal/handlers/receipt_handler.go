// samarth-crm/internal/handlers/receipt_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"samarth-crm/config"
	"samarth-crm/models"
	"samarth-crm/pkg/format"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReceiptResponse - структура ответа с явными полями в snake_case:
// страница квитанций и клиентский кэш исторически ждут именно такие ключи.
type ReceiptResponse struct {
	ID             uint    `json:"id"`
	ReceiptNo      string  `json:"receipt_no"`
	StudentName    string  `json:"student_name"`
	PaymentDate    string  `json:"payment_date"`
	PaymentTime    string  `json:"payment_time"`
	Course         string  `json:"course"`
	Mobile         string  `json:"mobile"`
	PaymentMode    string  `json:"payment_mode"`
	TotalFees      float64 `json:"total_fees"`
	PaidBeforeThis float64 `json:"paid_before_this"`
	PaidFees       float64 `json:"paid_fees"`
	RemainingFees  float64 `json:"remaining_fees"`
}

// receiptQuery - базовый запрос списка квитанций с данными ученика.
func receiptQuery() *gorm.DB {
	return config.DB.Table("fee_receipts fr").
		Joins("LEFT JOIN students s ON fr.student_id = s.id").
		Where("fr.deleted_at IS NULL").
		Select(`
			fr.id AS id,
			fr.receipt_no AS receipt_no,
			s.full_name AS student_name,
			to_char(fr.payment_date, 'YYYY-MM-DD') AS payment_date,
			fr.payment_time AS payment_time,
			CASE WHEN s.course = 'Other' AND s.custom_course <> '' THEN s.custom_course ELSE s.course END AS course,
			s.mobile_own AS mobile,
			fr.payment_mode AS payment_mode,
			fr.total_fees AS total_fees,
			fr.paid_before_this AS paid_before_this,
			fr.paid_fees AS paid_fees,
			fr.remaining_fees AS remaining_fees
		`)
}

// applyReceiptFilters накладывает те же критерии, что и клиентский фильтр:
// search/date/month/year через логическое И. Используется экспортом.
func applyReceiptFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(s.full_name) LIKE ? OR LOWER(fr.receipt_no) LIKE ?", pattern, pattern)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("fr.payment_date = ?", date)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("EXTRACT(MONTH FROM fr.payment_date) = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("EXTRACT(YEAR FROM fr.payment_date) = ?", year)
	}
	return query
}

// ListReceiptsHandler отдает полный список квитанций. Фильтрация по
// критериям пользователя происходит на клиенте; сервер отдает всё.
func ListReceiptsHandler(c *gin.Context) {
	var receipts []ReceiptResponse

	if err := receiptQuery().Order("fr.payment_date DESC, fr.id DESC").Scan(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось получить список квитанций"})
		return
	}

	if receipts == nil {
		receipts = make([]ReceiptResponse, 0)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "receipts": receipts})
}

// ReceiptUpdateInput - принимаем дату строкой, чтобы не зависеть от
// автоматического парсинга времени.
type ReceiptUpdateInput struct {
	PaymentDate   string  `json:"payment_date" binding:"required"`
	PaidFees      float64 `json:"paid_fees"`
	RemainingFees float64 `json:"remaining_fees"`
}

// UpdateReceiptHandler правит квитанцию и переносит разницу оплаты на
// счет ученика в одной транзакции.
func UpdateReceiptHandler(c *gin.Context) {
	var input ReceiptUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	paymentDate, err := time.Parse("2006-01-02", input.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Неверный формат даты. Ожидается YYYY-MM-DD."})
		return
	}
	if input.PaidFees < 0 || input.RemainingFees < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Суммы не могут быть отрицательными"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось начать транзакцию"})
		return
	}

	var receipt models.FeeReceipt
	if err := tx.First(&receipt, c.Param("id")).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Квитанция не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Ошибка при поиске квитанции"})
		return
	}

	delta := input.PaidFees - receipt.PaidFees

	receipt.PaymentDate = paymentDate
	receipt.PaidFees = input.PaidFees
	receipt.RemainingFees = input.RemainingFees

	if err := tx.Save(&receipt).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось сохранить квитанцию"})
		return
	}

	if delta != 0 {
		updateExpr := gorm.Expr("paid_fees + ?", delta)
		if err := tx.Model(&models.Student{}).Where("id = ?", receipt.StudentID).
			Update("paid_fees", updateExpr).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось обновить оплату ученика"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось подтвердить транзакцию"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteReceiptHandler удаляет квитанцию (мягко) и снимает её сумму с
// оплаченного учеником.
func DeleteReceiptHandler(c *gin.Context) {
	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось начать транзакцию"})
		return
	}

	var receipt models.FeeReceipt
	if err := tx.First(&receipt, c.Param("id")).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Квитанция не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Ошибка при поиске квитанции"})
		return
	}

	updateExpr := gorm.Expr("GREATEST(paid_fees - ?, 0)", receipt.PaidFees)
	if err := tx.Model(&models.Student{}).Where("id = ?", receipt.StudentID).
		Update("paid_fees", updateExpr).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось обновить оплату ученика"})
		return
	}

	if err := tx.Delete(&receipt).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось удалить квитанцию"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось подтвердить транзакцию"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportReceiptsHandler выгружает квитанции в Excel с теми же фильтрами,
// что и таблица на странице.
func ExportReceiptsHandler(c *gin.Context) {
	var receipts []ReceiptResponse

	query := applyReceiptFilters(c, receiptQuery()).Order("fr.payment_date DESC, fr.id DESC")
	if err := query.Scan(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось получить данные для экспорта"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Receipts"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Receipt No", "Student Name", "Payment Date", "Course", "Payment Mode", "Paid Fees", "Remaining Fees"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	var totalPaid, totalRemaining float64
	for i, r := range receipts {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.ReceiptNo)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.StudentName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), format.Date(r.PaymentDate))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Course)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.PaymentMode)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.PaidFees)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.RemainingFees)
		totalPaid += r.PaidFees
		totalRemaining += r.RemainingFees
	}

	// Итоговая строка под таблицей.
	totalRow := len(receipts) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), format.Amount(totalPaid))
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", totalRow), format.Amount(totalRemaining))

	fileName := fmt.Sprintf("receipts_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось записать Excel-файл"})
	}
}
