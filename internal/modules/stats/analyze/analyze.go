package analyze

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soursync/core/internal/models"
	"github.com/soursync/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

type pathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

type dayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// Summary aggregates page views: totals, top paths, and a daily series
// for the last two weeks.
type Summary struct {
	Total    int64       `json:"total"`
	Today    int64       `json:"today"`
	TopPaths []pathCount `json:"top_paths"`
	Daily    []dayCount  `json:"daily"`
}

func (s *Service) Summarize() (*Summary, error) {
	summary := &Summary{}

	if err := s.db.Model(&models.AnalyzeModel{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	if err := s.db.Model(&models.AnalyzeModel{}).
		Where("timestamp >= ?", startOfDay).
		Count(&summary.Today).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.AnalyzeModel{}).
		Select("path, COUNT(*) AS count").
		Group("path").
		Order("count DESC").
		Limit(10).
		Scan(&summary.TopPaths).Error; err != nil {
		return nil, err
	}

	twoWeeksAgo := startOfDay.AddDate(0, 0, -13)
	if err := s.db.Model(&models.AnalyzeModel{}).
		Select("DATE(timestamp) AS day, COUNT(*) AS count").
		Where("timestamp >= ?", twoWeeksAgo).
		Group("DATE(timestamp)").
		Order("day ASC").
		Scan(&summary.Daily).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterAdminRoutes mounts the analytics view; rg is already behind
// the auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.summary)
}

// summary GET /admin/analytics
func (h *Handler) summary(c *gin.Context) {
	summary, err := h.svc.Summarize()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, summary)
}
