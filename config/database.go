// samarth-crm/config/database.go
package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB открывает соединение с Postgres по DATABASE_URL. TranslateError
// включен, чтобы нарушение уникального индекса (номер квитанции) приходило
// в обработчики как gorm.ErrDuplicatedKey, а не сырой ошибкой драйвера.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		slog.Error("Переменная окружения DATABASE_URL не установлена, без базы сервис не работает.")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("Не удалось подключиться к Postgres", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Подключение к Postgres установлено")
}
