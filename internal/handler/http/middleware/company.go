package middleware

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/timekeeping-backend-go/internal/handler/http/response"
)

// RequireCompany rejects requests without a company query parameter.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.URL.Query().Get("company")) == "" {
			response.ValidationError(w, map[string]string{"company": "company is required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
