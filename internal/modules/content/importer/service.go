package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soursync/core/internal/ingest"
	"github.com/soursync/core/internal/models"
	"github.com/soursync/core/internal/modules/content/post"
	"go.uber.org/zap"
)

// PostStore is the slice of post storage the importer needs. Implemented
// by the post service; kept narrow so the pipeline tests run against an
// in-memory fake.
type PostStore interface {
	FindBySlugAndLanguage(slug, language string) (*models.PostModel, error)
	Insert(p *models.PostModel) error
}

// ConflictError reports that the target (slug, language) pair is taken.
type ConflictError struct {
	Slug       string
	Language   string
	ExistingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("post %q already exists for language %q", e.Slug, e.Language)
}

// Options carries per-import settings supplied by the route or CLI.
type Options struct {
	Status     string
	Language   string
	SourceURL  string
	AuthorID   *string
	AuthorName string
}

// Service wires detector, converters, normalizer and storage into the
// import pipeline shared by the admin route and the offline CLI.
type Service struct {
	store    PostStore
	fetcher  *ingest.Fetcher
	sections ingest.SectionTable
	logger   *zap.Logger

	defaultAuthor string
}

func NewService(store PostStore, defaultAuthor string, logger *zap.Logger) *Service {
	return &Service{
		store:         store,
		fetcher:       ingest.NewFetcher(),
		sections:      ingest.DefaultSectionTable(),
		logger:        logger,
		defaultAuthor: defaultAuthor,
	}
}

// ImportText auto-detects the format of raw text, converts it and
// persists the resulting post.
func (s *Service) ImportText(text string, opts Options) (*models.PostModel, error) {
	article, err := ingest.Parse(text, opts.SourceURL, s.sections)
	if err != nil {
		return nil, err
	}
	return s.persist(article, opts)
}

// ImportContentShake runs the ContentShake converter directly, skipping
// detection. Used by the offline CLI, which only handles vendor exports.
func (s *Service) ImportContentShake(text string, opts Options) (*models.PostModel, error) {
	article, err := ingest.ParseContentShake(text, s.sections)
	if err != nil {
		return nil, err
	}
	return s.persist(article, opts)
}

// ImportURL fetches a remote document and imports it through the HTML
// converter.
func (s *Service) ImportURL(ctx context.Context, rawURL string, opts Options) (*models.PostModel, error) {
	article, err := s.fetcher.FetchAndParse(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	opts.SourceURL = rawURL
	return s.persist(article, opts)
}

func (s *Service) persist(article *ingest.Article, opts Options) (*models.PostModel, error) {
	p := s.buildPost(article, opts)

	// Check-then-insert: the unique index backstops the race between
	// concurrent imports of the same title.
	existing, err := s.store.FindBySlugAndLanguage(p.Slug, p.Language)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Slug: p.Slug, Language: p.Language, ExistingID: existing.ID}
	}

	if err := s.store.Insert(p); err != nil {
		if errors.Is(err, post.ErrSlugConflict) {
			return nil, &ConflictError{Slug: p.Slug, Language: p.Language}
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("post imported",
			zap.String("slug", p.Slug),
			zap.String("language", p.Language),
			zap.String("status", p.Status),
		)
	}
	return p, nil
}

// buildPost normalizes a parsed article into a persistable post:
// slug/TOC derivation, defaults, author injection and a fresh
// translation group.
func (s *Service) buildPost(article *ingest.Article, opts Options) *models.PostModel {
	language := article.Language
	if language == "" {
		language = opts.Language
	}
	if language == "" {
		language = "en"
	}

	status := opts.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	authorName := opts.AuthorName
	if authorName == "" {
		authorName = s.defaultAuthor
	}

	p := &models.PostModel{
		Slug:               ingest.SlugForTitle(article.Title),
		Language:           language,
		Title:              article.Title,
		Description:        article.Description,
		Content:            article.Content,
		TOC:                post.TOCFromContent(article.Content),
		Tags:               article.Keywords,
		AuthorID:           opts.AuthorID,
		AuthorName:         authorName,
		SEOTitle:           article.SEOTitle,
		SEODescription:     article.SEODescription,
		Status:             status,
		TranslationGroupID: uuid.New().String(),
	}

	if len(article.Images) > 0 {
		cover := article.Images[0]
		p.CoverImage = &cover
		alt := article.Title
		p.CoverAlt = &alt
	}
	if opts.SourceURL != "" {
		canonical := opts.SourceURL
		p.CanonicalURL = &canonical
	}
	if p.SEOTitle == "" {
		p.SEOTitle = p.Title
	}
	if p.SEODescription == "" {
		p.SEODescription = p.Description
	}
	if status == models.PostStatusPublished {
		now := time.Now()
		p.PublishedAt = &now
	}
	return p
}
