// samarth-crm/internal/handlers/enquiry_handler.go
package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"samarth-crm/config"
	"samarth-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EnquiryInput - публичная форма заявки с главной страницы.
type EnquiryInput struct {
	Name      string `json:"name" binding:"required"`
	Mobile    string `json:"mobile" binding:"required"`
	Education string `json:"education"`
	Course    string `json:"course"`
}

// CreateEnquiryHandler принимает заявку; маршрут публичный.
func CreateEnquiryHandler(c *gin.Context) {
	var input EnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}

	enquiry := models.Enquiry{
		Name:      input.Name,
		Mobile:    input.Mobile,
		Education: input.Education,
		Course:    input.Course,
	}

	if err := config.DB.Create(&enquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить заявку"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Заявка принята"})
}

// ListEnquiriesHandler - список заявок, новые сверху, с поиском и пагинацией.
func ListEnquiriesHandler(c *gin.Context) {
	var enquiries []models.Enquiry
	var totalRows int64

	baseQuery := config.DB.Model(&models.Enquiry{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(name) LIKE ? OR mobile LIKE ? OR LOWER(course) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := baseQuery.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать заявки"})
		return
	}

	if err := baseQuery.Scopes(Paginate(c)).Order("created_at DESC").Find(&enquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить список заявок"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, enquiries, totalRows))
}

// DeleteEnquiryHandler мягко удаляет заявку.
func DeleteEnquiryHandler(c *gin.Context) {
	if err := config.DB.Delete(&models.Enquiry{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить заявку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Заявка удалена"})
}

// GetEnquiryHandler отдает заявку для предзаполнения формы приема.
func GetEnquiryHandler(c *gin.Context) {
	var enquiry models.Enquiry
	if err := config.DB.First(&enquiry, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заявка не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения заявки"})
		return
	}
	c.JSON(http.StatusOK, enquiry)
}

// ExportEnquiriesHandler выгружает заявки в CSV, как исторически делала
// страница заявок.
func ExportEnquiriesHandler(c *gin.Context) {
	var enquiries []models.Enquiry
	if err := config.DB.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить данные для экспорта"})
		return
	}

	fileName := fmt.Sprintf("enquiries_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+fileName)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"ID", "Name", "Mobile", "Education", "Course", "Date"})
	for _, e := range enquiries {
		w.Write([]string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Name,
			e.Mobile,
			e.Education,
			e.Course,
			e.CreatedAt.Format("02-01-2006"),
		})
	}
	w.Flush()
}
