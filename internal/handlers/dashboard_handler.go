// samarth-crm/internal/handlers/dashboard_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"samarth-crm/config"
	"samarth-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// dashboardCacheTTL - статистика считается тяжелыми запросами, держим
// результат в кэше недолго.
const dashboardCacheTTL = 5 * time.Minute

// DashboardStats - данные для карточек и графиков панели.
type DashboardStats struct {
	EnquiryCount       int64            `json:"enquiry_count"`
	StudentCount       int64            `json:"student_count"`
	TotalCollected     float64          `json:"total_collected"`
	TotalRemaining     float64          `json:"total_remaining"`
	CourseDistribution map[string]int64 `json:"course_distribution"`
	MonthlyAdmissions  map[string]int64 `json:"monthly_admissions"` // ключи "1".."12"
	Year               int              `json:"year"`
}

// GetDashboardStatsHandler собирает статистику панели. Результат кэшируется
// в Redis по году; без Redis просто считаем каждый раз.
func GetDashboardStatsHandler(c *gin.Context) {
	year := time.Now().Year()
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		year = y
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%d", year)
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, cacheKey).Result()
		if err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
				return
			}
			slog.Warn("Не удалось разобрать кэш статистики", "key", cacheKey)
		} else if err != redis.Nil {
			slog.Error("Ошибка чтения кэша статистики", "error", err, "key", cacheKey)
		}
	}

	stats, err := collectDashboardStats(year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Не удалось собрать статистику"})
		return
	}

	if config.RDB != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := config.RDB.Set(config.Ctx, cacheKey, data, dashboardCacheTTL).Err(); err != nil {
				slog.Error("Не удалось записать кэш статистики", "error", err, "key", cacheKey)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func collectDashboardStats(year int) (*DashboardStats, error) {
	stats := &DashboardStats{
		Year:               year,
		CourseDistribution: make(map[string]int64),
		MonthlyAdmissions:  make(map[string]int64),
	}

	if err := config.DB.Model(&models.Enquiry{}).Count(&stats.EnquiryCount).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Student{}).Count(&stats.StudentCount).Error; err != nil {
		return nil, err
	}

	type feeTotals struct {
		Collected float64
		Remaining float64
	}
	var totals feeTotals
	if err := config.DB.Table("students").
		Select("COALESCE(SUM(paid_fees), 0) AS collected, COALESCE(SUM(GREATEST(total_fees - paid_fees, 0)), 0) AS remaining").
		Where("deleted_at IS NULL").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	stats.TotalCollected = totals.Collected
	stats.TotalRemaining = totals.Remaining

	type courseRow struct {
		Course string
		Count  int64
	}
	var courses []courseRow
	if err := config.DB.Table("students").
		Select("CASE WHEN course = 'Other' AND custom_course <> '' THEN custom_course ELSE course END AS course, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("1").
		Scan(&courses).Error; err != nil {
		return nil, err
	}
	for _, row := range courses {
		stats.CourseDistribution[row.Course] = row.Count
	}

	type monthRow struct {
		Month int
		Count int64
	}
	var months []monthRow
	if err := config.DB.Table("students").
		Select("EXTRACT(MONTH FROM admission_date)::int AS month, COUNT(*) AS count").
		Where("deleted_at IS NULL AND EXTRACT(YEAR FROM admission_date) = ?", year).
		Group("1").
		Scan(&months).Error; err != nil {
		return nil, err
	}
	// Все двенадцать месяцев присутствуют в ответе, даже нулевые: график
	// строится по фиксированной оси.
	for m := 1; m <= 12; m++ {
		stats.MonthlyAdmissions[strconv.Itoa(m)] = 0
	}
	for _, row := range months {
		stats.MonthlyAdmissions[strconv.Itoa(row.Month)] = row.Count
	}

	return stats, nil
}
