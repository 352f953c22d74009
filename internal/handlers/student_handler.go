// samarth-crm/internal/handlers/student_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"samarth-crm/config"
	"samarth-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxPhotoSize - лимит на фото ученика (2 МБ, как на форме приема).
const maxPhotoSize = 2 << 20

// StudentInput - данные формы приема. Даты принимаем строками.
type StudentInput struct {
	StudentName   string `json:"studentName" binding:"required"`
	FatherName    string `json:"fatherName"`
	Surname       string `json:"surname"`
	MotherName    string `json:"motherName"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`

	MobileOwn    string `json:"mobileOwn" binding:"required"`
	ParentMobile string `json:"parentMobile"`

	Course                   string `json:"course"`
	CustomCourse             string `json:"customCourse"`
	EducationalQualification string `json:"educationalQualification"`

	Address     string `json:"address"`
	City        string `json:"city"`
	TehsilBlock string `json:"tehsilBlock"`
	District    string `json:"district"`
	PinCode     string `json:"pinCode"`

	TotalFees float64 `json:"totalFees"`
	PaidFees  float64 `json:"paidFees"`
}

func (in *StudentInput) apply(student *models.Student) error {
	if in.Course == "Other" && strings.TrimSpace(in.CustomCourse) == "" {
		return errors.New("для курса 'Other' нужно указать название")
	}

	student.StudentName = in.StudentName
	student.FatherName = in.FatherName
	student.Surname = in.Surname
	student.MotherName = in.MotherName
	student.FullName = models.ComposeFullName(in.StudentName, in.FatherName, in.Surname)
	student.Gender = in.Gender
	student.MaritalStatus = in.MaritalStatus
	student.MobileOwn = in.MobileOwn
	student.ParentMobile = in.ParentMobile
	student.Course = in.Course
	student.CustomCourse = in.CustomCourse
	student.EducationalQualification = in.EducationalQualification
	student.Address = in.Address
	student.City = in.City
	student.TehsilBlock = in.TehsilBlock
	student.District = in.District
	student.PinCode = in.PinCode
	student.TotalFees = in.TotalFees
	student.PaidFees = in.PaidFees

	if in.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			return errors.New("неверный формат даты рождения, ожидается YYYY-MM-DD")
		}
		student.DateOfBirth = &dob
	}

	return nil
}

// CreateStudentHandler оформляет прием нового ученика.
func CreateStudentHandler(c *gin.Context) {
	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}

	var student models.Student
	if err := input.apply(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if student.TotalFees == 0 {
		student.TotalFees = 5000
	}
	student.AdmissionDate = time.Now()

	if err := config.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить ученика"})
		return
	}

	slog.Info("Принят новый ученик", "student_id", student.ID, "full_name", student.FullName)
	c.JSON(http.StatusCreated, student)
}

// StudentListItem - строка таблицы принятых учеников.
type StudentListItem struct {
	ID            uint    `json:"id"`
	FullName      string  `json:"full_name"`
	MobileOwn     string  `json:"mobile_own"`
	Course        string  `json:"course"`
	PhotoURL      string  `json:"photo_url"`
	TotalFees     float64 `json:"total_fees"`
	PaidFees      float64 `json:"paid_fees"`
	RemainingFees float64 `json:"remaining_fees"`
}

// ListAdmittedStudentsHandler возвращает список принятых учеников с
// поиском и пагинацией.
func ListAdmittedStudentsHandler(c *gin.Context) {
	var students []StudentListItem
	var totalRows int64

	baseQuery := config.DB.Table("students").
		Select(`
			students.id,
			students.full_name,
			students.mobile_own,
			CASE WHEN students.course = 'Other' AND students.custom_course <> '' THEN students.custom_course ELSE students.course END AS course,
			students.photo_url,
			students.total_fees,
			students.paid_fees,
			GREATEST(students.total_fees - students.paid_fees, 0) AS remaining_fees
		`).
		Where("students.deleted_at IS NULL")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		baseQuery = baseQuery.Where(
			"LOWER(students.full_name) LIKE ? OR students.mobile_own LIKE ? OR LOWER(students.course) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := baseQuery.Model(&models.Student{}).Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать учеников"})
		return
	}

	if err := baseQuery.Scopes(Paginate(c)).Order("students.full_name").Scan(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить список учеников"})
		return
	}

	if students == nil {
		students = make([]StudentListItem, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, students, totalRows))
}

// UpdateStudentHandler правит карточку ученика из модального окна.
func UpdateStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ученик не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения данных ученика"})
		return
	}

	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}

	if err := input.apply(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить изменения"})
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudentHandler мягко удаляет ученика.
func DeleteStudentHandler(c *gin.Context) {
	if err := config.DB.Delete(&models.Student{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить ученика"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ученик удален"})
}

// UploadStudentPhotoHandler сохраняет фото ученика. Имя файла заменяем на
// uuid, чтобы не зависеть от пользовательского имени.
func UploadStudentPhotoHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ученик не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения данных ученика"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл не передан"})
		return
	}
	if file.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл больше 2 МБ"})
		return
	}

	ext := filepath.Ext(file.Filename)
	newFileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dstDir := filepath.Join("uploads", "students")
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось подготовить каталог загрузок"})
		return
	}

	dst := filepath.Join(dstDir, newFileName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить файл"})
		return
	}

	student.PhotoURL = "/" + filepath.ToSlash(dst)
	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить ссылку на фото"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": student.PhotoURL})
}
