// samarth-crm/config/jwt.go
package config

import (
	"log/slog"
	"os"
)

// JwtKey - ключ подписи токенов auth_token.
var JwtKey []byte

func LoadJWTKey() {
	key := os.Getenv("JWT_SECRET")
	if key == "" {
		slog.Error("Критическая ошибка: переменная окружения JWT_SECRET не установлена.")
		os.Exit(1)
	}
	JwtKey = []byte(key)
}
