package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/models"
	"github.com/blogem/symptom-survey/repositories"
)

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					Timestamp: time.Now(),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					FormData:  captureFormData(r),
				}

				// Log asynchronously to avoid blocking request
				go func() {
					if err := auditRepo.Create(entry); err != nil {
						log.Warn("failed to create audit log", zap.String("path", entry.Path), zap.Error(err))
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr without the port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureFormData captures url-encoded form data as a JSON string.
// JSON bodies are left unread for the handler.
func captureFormData(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	if len(r.PostForm) == 0 {
		return ""
	}

	formMap := make(map[string]interface{})
	for key, values := range r.PostForm {
		if len(values) == 1 {
			formMap[key] = values[0]
		} else {
			formMap[key] = values
		}
	}

	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
