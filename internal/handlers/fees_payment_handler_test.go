// samarth-crm/internal/handlers/fees_payment_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNextInSequence(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		last   string
		want   string
	}{
		{"empty sequence", "RCP-2024-", "", "RCP-2024-0001"},
		{"continues from last", "RCP-2024-", "RCP-2024-0017", "RCP-2024-0018"},
		{"rolls past padding width", "RCP-2024-", "RCP-2024-9999", "RCP-2024-10000"},
		{"other year restarts", "RCP-2025-", "RCP-2024-0042", "RCP-2025-0001"},
		{"garbage tail restarts", "RCP-2024-", "RCP-2024-abc", "RCP-2024-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextInSequence(tt.prefix, tt.last)
			if got != tt.want {
				t.Errorf("nextInSequence(%q, %q) = %q, want %q", tt.prefix, tt.last, got, tt.want)
			}
		})
	}
}

// Запросы короче двух символов отсекаются до похода в базу; длина считается
// в рунах, а не в байтах, иначе один многобайтный символ проходил бы порог.
func TestSearchStudentsMinimumQueryLength(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		q    string
	}{
		{"empty", ""},
		{"one ascii char", "a"},
		{"one devanagari char", "ऋ"},
		{"one cyrillic char", "ж"},
		{"spaces only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/fees-payment/search/?q="+url.QueryEscape(tt.q), nil)

			SearchStudentsHandler(c)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if !strings.Contains(w.Body.String(), `"students":[]`) {
				t.Errorf("body = %s, want empty students list", w.Body.String())
			}
		})
	}
}
