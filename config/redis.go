// samarth-crm/config/redis.go
package config

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RDB держит кэш данных пользователя и статистики панели. Сервис полностью
// рабочий и без Redis: nil-клиент означает "считать каждый раз".
var RDB *redis.Client
var Ctx = context.Background()

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		slog.Warn("REDIS_ADDR не задан, кэширование отключено")
		return
	}

	db := 0
	if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		db = n
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		slog.Error("Redis недоступен, кэширование отключено", "error", err, "addr", addr)
		return
	}

	RDB = client
	slog.Info("Подключение к Redis установлено", "addr", addr)
}
