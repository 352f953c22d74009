// samarth-crm/internal/handlers/pagination.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Списки учеников и заявок отдаются страницами: параметры читаем из query
// (?page=2&page_size=50), по умолчанию 20 строк, больше 100 не отдаем.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageEnvelope - обертка постраничного ответа. Ключи в snake_case, как и
// остальные ответы API.
type PageEnvelope struct {
	Results    interface{} `json:"results"`
	TotalRows  int64       `json:"total_rows"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
}

// pageParams нормализует параметры страницы: мусор и нули заменяются
// значениями по умолчанию, размер страницы зажимается сверху.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// Paginate - GORM-scope, накладывающий offset/limit текущей страницы.
func Paginate(c *gin.Context) func(db *gorm.DB) *gorm.DB {
	page, pageSize := pageParams(c)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// CreatePaginatedResponse собирает обертку страницы вокруг данных.
func CreatePaginatedResponse(c *gin.Context, data interface{}, totalRows int64) PageEnvelope {
	page, pageSize := pageParams(c)

	totalPages := int((totalRows + int64(pageSize) - 1) / int64(pageSize))

	return PageEnvelope{
		Results:    data,
		TotalRows:  totalRows,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}
