package post

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/soursync/core/internal/ingest"
	"github.com/soursync/core/internal/models"
	"github.com/soursync/core/internal/modules/processing/markdown"
	"github.com/soursync/core/internal/pkg/pagination"
	"github.com/soursync/core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrSlugConflict reports that a post with the same slug already exists
// for the language.
var ErrSlugConflict = errors.New("slug already exists for this language")

const mysqlDuplicateEntry = 1062

// Service implements post storage and retrieval.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns posts matching the filters, newest first. Drafts are
// only included for admin listings.
func (s *Service) List(q pagination.Query, lq ListQuery, includeDrafts bool) ([]models.PostModel, response.Pagination, error) {
	query := s.db.Model(&models.PostModel{})

	if !includeDrafts {
		query = query.Where("status = ?", models.PostStatusPublished)
	} else if lq.Status != "" {
		query = query.Where("status = ?", lq.Status)
	}
	if lq.Language != "" {
		query = query.Where("language = ?", lq.Language)
	}
	if lq.Tag != "" {
		query = query.Where("JSON_CONTAINS(tags, ?)", fmt.Sprintf("%q", lq.Tag))
	}
	query = query.Order("published_at DESC, created_at DESC")

	var posts []models.PostModel
	pag, err := pagination.Paginate(query, q, &posts)
	return posts, pag, err
}

// FindBySlugAndLanguage returns the post regardless of status, or nil
// when absent.
func (s *Service) FindBySlugAndLanguage(slug, language string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.Where("slug = ? AND language = ?", slug, language).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublished returns a published post, rendering and caching its HTML
// on first read.
func (s *Service) GetPublished(slug, language string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.Where("slug = ? AND language = ? AND status = ?", slug, language, models.PostStatusPublished).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if post.ContentHTML == nil {
		html, err := markdown.Render(post.Content)
		if err != nil {
			return nil, fmt.Errorf("render post %s: %w", post.ID, err)
		}
		post.ContentHTML = &html
		if err := s.db.Model(&post).UpdateColumn("content_html", html).Error; err != nil {
			return nil, err
		}
	}
	return &post, nil
}

// GetByID returns any post by ID, or nil when absent.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Translations lists published language variants sharing the post's
// translation group, excluding the post itself.
func (s *Service) Translations(post *models.PostModel) ([]models.PostModel, error) {
	if post.TranslationGroupID == "" {
		return nil, nil
	}
	var posts []models.PostModel
	err := s.db.
		Where("translation_group_id = ? AND id != ? AND status = ?",
			post.TranslationGroupID, post.ID, models.PostStatusPublished).
		Order("language ASC").
		Find(&posts).Error
	return posts, err
}

// Insert stores a new post. A duplicate (slug, language) pair is
// reported as ErrSlugConflict.
func (s *Service) Insert(post *models.PostModel) error {
	if err := s.db.Create(post).Error; err != nil {
		var myerr *mysql.MySQLError
		if errors.As(err, &myerr) && myerr.Number == mysqlDuplicateEntry {
			return ErrSlugConflict
		}
		return err
	}
	return nil
}

// Create builds a post from the admin payload and stores it.
func (s *Service) Create(dto *CreateDTO) (*models.PostModel, error) {
	slug := dto.Slug
	if slug == "" {
		slug = ingest.SlugForTitle(dto.Title)
	}
	language := dto.Language
	if language == "" {
		language = "en"
	}
	status := dto.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	post := &models.PostModel{
		Slug:               slug,
		Language:           language,
		Title:              dto.Title,
		Description:        dto.Description,
		Content:            dto.Content,
		TOC:                TOCFromContent(dto.Content),
		CoverImage:         dto.CoverImage,
		CoverAlt:           dto.CoverAlt,
		Category:           dto.Category,
		Tags:               dto.Tags,
		SEOTitle:           dto.SEOTitle,
		SEODescription:     dto.SEODescription,
		CanonicalURL:       dto.CanonicalURL,
		Noindex:            dto.Noindex,
		Status:             status,
		TranslationGroupID: uuid.New().String(),
	}
	if post.SEOTitle == "" {
		post.SEOTitle = post.Title
	}
	if post.Status == models.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.Insert(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update. A content change recomputes the TOC
// and invalidates the cached HTML render.
func (s *Service) Update(id string, dto *UpdateDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return post, err
	}

	if dto.Title != nil {
		post.Title = *dto.Title
	}
	if dto.Description != nil {
		post.Description = *dto.Description
	}
	if dto.Content != nil && *dto.Content != post.Content {
		post.Content = *dto.Content
		post.TOC = TOCFromContent(post.Content)
		post.ContentHTML = nil
	}
	if dto.CoverImage != nil {
		post.CoverImage = dto.CoverImage
	}
	if dto.CoverAlt != nil {
		post.CoverAlt = dto.CoverAlt
	}
	if dto.Category != nil {
		post.Category = dto.Category
	}
	if dto.Tags != nil {
		post.Tags = dto.Tags
	}
	if dto.SEOTitle != nil {
		post.SEOTitle = *dto.SEOTitle
	}
	if dto.SEODescription != nil {
		post.SEODescription = *dto.SEODescription
	}
	if dto.CanonicalURL != nil {
		post.CanonicalURL = dto.CanonicalURL
	}
	if dto.Noindex != nil {
		post.Noindex = *dto.Noindex
	}
	if dto.Status != nil && *dto.Status != post.Status {
		post.Status = *dto.Status
		if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete soft-deletes a post.
func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.PostModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TOCFromContent extracts the table of contents of MDX content in the
// stored model shape.
func TOCFromContent(content string) []models.TOCEntry {
	entries := ingest.ExtractTOC(content)
	if entries == nil {
		return nil
	}
	toc := make([]models.TOCEntry, len(entries))
	for i, e := range entries {
		toc[i] = models.TOCEntry{ID: e.ID, Text: e.Text, Level: e.Level}
	}
	return toc
}
