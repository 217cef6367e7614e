package waitlist

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/soursync/core/internal/models"
	pkgmail "github.com/soursync/core/internal/pkg/mail"
	"github.com/soursync/core/internal/pkg/pagination"
	"github.com/soursync/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAlreadyJoined reports a duplicate waitlist signup.
var ErrAlreadyJoined = errors.New("email already on the waitlist")

const mysqlDuplicateEntry = 1062

// JoinDTO is the public signup payload.
type JoinDTO struct {
	Email        string  `json:"email" binding:"required,email"`
	Source       string  `json:"source"`
	PlanInterest *string `json:"plan_interest"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Join stores a signup. Emails are lowercased and trimmed before the
// uniqueness check.
func (s *Service) Join(dto *JoinDTO) (*models.WaitlistModel, error) {
	source := strings.TrimSpace(dto.Source)
	if source == "" {
		source = "unknown"
	}

	entry := models.WaitlistModel{
		Email:        strings.ToLower(strings.TrimSpace(dto.Email)),
		Source:       source,
		PlanInterest: dto.PlanInterest,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		var myerr *mysql.MySQLError
		if errors.As(err, &myerr) && myerr.Number == mysqlDuplicateEntry {
			return nil, ErrAlreadyJoined
		}
		return nil, err
	}
	return &entry, nil
}

// List returns signups newest first.
func (s *Service) List(q pagination.Query) ([]models.WaitlistModel, response.Pagination, error) {
	query := s.db.Model(&models.WaitlistModel{}).Order("created_at DESC")
	var entries []models.WaitlistModel
	pag, err := pagination.Paginate(query, q, &entries)
	return entries, pag, err
}

type Handler struct {
	svc    *Service
	mailer *pkgmail.Sender
	logger *zap.Logger

	siteName string
	siteURL  string
}

func NewHandler(svc *Service, mailer *pkgmail.Sender, logger *zap.Logger, siteName, siteURL string) *Handler {
	return &Handler{svc: svc, mailer: mailer, logger: logger, siteName: siteName, siteURL: siteURL}
}

// RegisterRoutes mounts the public signup route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/waitlist", h.join)
}

// RegisterAdminRoutes mounts the signup listing; rg is already behind
// the auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/waitlist", h.list)
}

// join POST /waitlist
func (h *Handler) join(c *gin.Context) {
	var dto JoinDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.svc.Join(&dto)
	if errors.Is(err, ErrAlreadyJoined) {
		response.Conflict(c, "This email is already on the waitlist!")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// Fire and forget; signup never waits on mail delivery.
	go func(email string) {
		if err := h.mailer.SendWaitlistWelcome(email, h.siteName, h.siteURL); err != nil {
			h.logger.Warn("waitlist welcome mail failed",
				zap.String("email", email), zap.Error(err))
		}
	}(entry.Email)

	response.Created(c, gin.H{
		"email":  entry.Email,
		"source": entry.Source,
	})
}

// list GET /admin/waitlist
func (h *Handler) list(c *gin.Context) {
	entries, pag, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, entries, pag)
}
