// samarth-crm/cmd/server/main.go
package main

import (
	"log/slog"
	"os"

	"samarth-crm/config"
	"samarth-crm/internal/routes"
	"samarth-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Настраиваем структурированный логгер как логгер по умолчанию.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Warn("Файл .env не найден, используются переменные окружения системы.")
	}

	config.ConnectDB()
	config.ConnectRedis()
	config.LoadJWTKey()

	// Автомиграция схемы.
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.FeeReceipt{},
		&models.Enquiry{},
		&models.SMSLog{},
	)
	if err != nil {
		slog.Error("Ошибка миграции базы данных", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	// Отдаем загруженные фотографии студентов.
	r.Static("/uploads", "./uploads")

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Сервер запускается", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Ошибка запуска сервера", "error", err)
		os.Exit(1)
	}
}
