// samarth-crm/internal/handlers/pagination_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func pageContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/students/?"+query, nil)
	return c
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&page_size=50", 3, 50},
		{"zero page", "page=0", 1, 20},
		{"negative values", "page=-2&page_size=-5", 1, 20},
		{"page size clamped", "page_size=500", 1, 100},
		{"garbage", "page=abc&page_size=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := pageParams(pageContext(t, tt.query))
			if page != tt.page || pageSize != tt.pageSize {
				t.Errorf("pageParams(%q) = (%d, %d), want (%d, %d)",
					tt.query, page, pageSize, tt.page, tt.pageSize)
			}
		})
	}
}

func TestCreatePaginatedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		totalRows  int64
		totalPages int
		page       int
		pageSize   int
	}{
		{"empty table", "", 0, 0, 1, 20},
		{"partial last page", "", 41, 3, 1, 20},
		{"exact fit", "page_size=10", 30, 3, 1, 10},
		{"echoes requested page", "page=7", 200, 10, 7, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := CreatePaginatedResponse(pageContext(t, tt.query), nil, tt.totalRows)
			if resp.TotalRows != tt.totalRows {
				t.Errorf("TotalRows = %d, want %d", resp.TotalRows, tt.totalRows)
			}
			if resp.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", resp.TotalPages, tt.totalPages)
			}
			if resp.Page != tt.page || resp.PageSize != tt.pageSize {
				t.Errorf("page/pageSize = %d/%d, want %d/%d",
					resp.Page, resp.PageSize, tt.page, tt.pageSize)
			}
		})
	}
}
