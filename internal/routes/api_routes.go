// samarth-crm/internal/routes/api_routes.go
package routes

import (
	"samarth-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все защищенные маршруты API.
func RegisterAPIRoutes(rg *gin.RouterGroup) {
	api := rg.Group("/api")
	{
		// Квитанции об оплате.
		receipts := api.Group("/receipts")
		{
			receipts.GET("/", handlers.ListReceiptsHandler)
			receipts.GET("/export/", handlers.ExportReceiptsHandler)
			receipts.POST("/:id/update/", handlers.UpdateReceiptHandler)
			receipts.POST("/:id/delete/", handlers.DeleteReceiptHandler)
		}

		// Студенты.
		students := api.Group("/students")
		{
			students.POST("/", handlers.CreateStudentHandler)
			students.GET("/", handlers.ListAdmittedStudentsHandler)
			students.POST("/:id/update/", handlers.UpdateStudentHandler)
			students.POST("/:id/delete/", handlers.DeleteStudentHandler)
			students.POST("/:id/photo/", handlers.UploadStudentPhotoHandler)
		}

		// Заявки.
		enquiries := api.Group("/enquiries")
		{
			enquiries.GET("/", handlers.ListEnquiriesHandler)
			enquiries.GET("/export/", handlers.ExportEnquiriesHandler)
			enquiries.GET("/:id/", handlers.GetEnquiryHandler)
			enquiries.POST("/:id/delete/", handlers.DeleteEnquiryHandler)
		}

		// СМС-рассылка по студентам.
		sms := api.Group("/sms")
		{
			sms.GET("/get-students/", handlers.GetSMSStudentsHandler)
			sms.POST("/send/", handlers.SendSMSHandler)
		}

		// Статистика для главной панели.
		api.GET("/dashboard/stats/", handlers.GetDashboardStatsHandler)
	}

	// Прием оплаты.
	rg.GET("/fees-payment/search/", handlers.SearchStudentsHandler)
	rg.POST("/fees-payment/submit/", handlers.SubmitFeesPaymentHandler)

	// Карточка зачисленного студента.
	rg.GET("/student-detail-admitted/:id/", handlers.GetAdmittedStudentHandler)
}
