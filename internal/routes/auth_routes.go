// samarth-crm/internal/routes/auth_routes.go
package routes

import (
	"samarth-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты.
// Эти маршруты не требуют middleware для проверки токена.
func RegisterAuthRoutes(r *gin.Engine) {
	// Вход и выход из системы.
	r.POST("/login", handlers.LoginHandler)
	r.GET("/logout", handlers.LogoutHandler)

	// Регистрация нового сотрудника.
	r.POST("/register", handlers.RegisterHandler)

	// Форма заявки на сайте доступна без авторизации.
	r.POST("/enquiry/submit/", handlers.CreateEnquiryHandler)
}
