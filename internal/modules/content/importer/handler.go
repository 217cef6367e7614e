package importer

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/soursync/core/internal/ingest"
	"github.com/soursync/core/internal/middleware"
	"github.com/soursync/core/internal/models"
	"github.com/soursync/core/internal/pkg/response"
	"gorm.io/gorm"
)

// ImportDTO is the quick-import payload: exactly one of content or url
// must be set.
type ImportDTO struct {
	Content  string `json:"content"`
	URL      string `json:"url"`
	Status   string `json:"status"`
	Language string `json:"language"`
}

// Handler handles the admin quick-import route.
type Handler struct {
	svc *Service
	db  *gorm.DB
}

func NewHandler(svc *Service, db *gorm.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

// RegisterAdminRoutes mounts the import route; rg is already behind the
// auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/blog/import", h.importPost)
}

// importPost POST /admin/blog/import
func (h *Handler) importPost(c *gin.Context) {
	var dto ImportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Content == "" && dto.URL == "" {
		response.BadRequest(c, "either content or url must be provided")
		return
	}

	status := dto.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if status != models.PostStatusDraft && status != models.PostStatusPublished {
		response.BadRequest(c, "status must be draft or published")
		return
	}

	opts := Options{
		Status:   status,
		Language: dto.Language,
	}
	if userID := middleware.CurrentUserID(c); userID != "" {
		opts.AuthorID = &userID
		var user models.UserModel
		if err := h.db.Where("id = ?", userID).First(&user).Error; err == nil {
			opts.AuthorName = user.Name
			if opts.AuthorName == "" {
				opts.AuthorName = user.Email
			}
		}
	}

	var (
		imported *models.PostModel
		err      error
	)
	if dto.Content != "" {
		imported, err = h.svc.ImportText(dto.Content, opts)
	} else {
		imported, err = h.svc.ImportURL(c.Request.Context(), dto.URL, opts)
	}

	if err != nil {
		var conflict *ConflictError
		var fetchErr *ingest.FetchError
		switch {
		case errors.As(err, &conflict):
			response.Conflict(c, conflict.Error())
		case errors.Is(err, ingest.ErrMalformedInput):
			response.UnprocessableEntity(c, err.Error())
		case errors.As(err, &fetchErr):
			response.BadGateway(c, fetchErr.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Created(c, gin.H{
		"id":       imported.ID,
		"slug":     imported.Slug,
		"language": imported.Language,
		"title":    imported.Title,
		"status":   imported.Status,
	})
}
