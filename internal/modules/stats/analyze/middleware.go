package analyze

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soursync/core/internal/models"
	"gorm.io/gorm"
)

// Middleware records each successful, unauthenticated public GET under
// /api as an analytics event. Bots and local traffic are skipped.
func Middleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next() // handle the request first to get the status code

		if c.Request.Method != "GET" {
			return
		}
		rawPath := strings.TrimSpace(c.Request.URL.Path)
		if rawPath != "/api" && !strings.HasPrefix(rawPath, "/api/") {
			return
		}
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if isBotUA(c.GetHeader("User-Agent")) {
			return
		}
		if c.GetHeader("Authorization") != "" {
			return
		}

		ip := strings.TrimSpace(c.ClientIP())
		if ip == "" || ip == "127.0.0.1" || ip == "localhost" || ip == "::1" {
			return
		}

		path := normalizePath(rawPath)
		ua := parseUA(c.GetHeader("User-Agent"))
		referer := c.GetHeader("Referer")

		go func() {
			_ = db.Create(&models.AnalyzeModel{
				IP:        ip,
				UA:        ua,
				Path:      path,
				Referer:   referer,
				Timestamp: time.Now(),
			}).Error
		}()
	}
}

// isBotUA returns true if the User-Agent string indicates a bot/crawler.
func isBotUA(ua string) bool {
	lower := strings.ToLower(ua)
	botKeywords := []string{"bot", "crawler", "spider", "headless", "wget", "curl", "python-requests", "go-http", "scrapy"}
	for _, kw := range botKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// normalizePath strips the /api and optional /vN version prefix.
func normalizePath(path string) string {
	p := strings.TrimPrefix(path, "/api")
	if strings.HasPrefix(p, "/v") {
		rest := p[2:]
		if slash := strings.IndexByte(rest, '/'); slash >= 0 && isDigits(rest[:slash]) {
			p = rest[slash:]
		} else if isDigits(rest) {
			p = ""
		}
	}
	if p == "" {
		return "/"
	}
	return p
}

func isDigits(raw string) bool {
	if raw == "" {
		return false
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// parseUA extracts coarse browser and OS information from a UA string.
func parseUA(ua string) map[string]interface{} {
	result := map[string]interface{}{
		"raw":     ua,
		"type":    "desktop",
		"browser": "Unknown",
		"os":      "Unknown",
	}
	lower := strings.ToLower(ua)

	switch {
	case strings.Contains(lower, "edg/"):
		result["browser"] = "Edge"
	case strings.Contains(lower, "firefox/"):
		result["browser"] = "Firefox"
	case strings.Contains(lower, "chrome/"):
		result["browser"] = "Chrome"
	case strings.Contains(lower, "safari/"):
		result["browser"] = "Safari"
	}

	switch {
	case strings.Contains(lower, "windows"):
		result["os"] = "Windows"
	case strings.Contains(lower, "mac os"):
		result["os"] = "macOS"
	case strings.Contains(lower, "android"):
		result["os"] = "Android"
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipad"):
		result["os"] = "iOS"
	case strings.Contains(lower, "linux"):
		result["os"] = "Linux"
	}

	if strings.Contains(lower, "mobile") || strings.Contains(lower, "android") || strings.Contains(lower, "iphone") {
		result["type"] = "mobile"
	}
	return result
}
