package models

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// TOCEntry is one heading of a post's table of contents, stored as JSON.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// PostModel is a blog post. A slug is unique per language; posts in the
// same translation group are language variants of one article.
type PostModel struct {
	Base
	Slug               string      `json:"slug"                 gorm:"uniqueIndex:idx_posts_slug_lang;not null"`
	Language           string      `json:"language"             gorm:"uniqueIndex:idx_posts_slug_lang;type:varchar(5);default:'en'"`
	Title              string      `json:"title"                gorm:"not null"`
	Description        string      `json:"description"          gorm:"type:text"`
	Content            string      `json:"content"              gorm:"type:longtext"`
	ContentHTML        *string     `json:"content_html"         gorm:"type:longtext"`
	TOC                []TOCEntry  `json:"toc"                  gorm:"type:longtext;serializer:json"`
	CoverImage         *string     `json:"cover_image"`
	CoverAlt           *string     `json:"cover_alt"`
	Category           *string     `json:"category"             gorm:"index"`
	Tags               StringArray `json:"tags"                 gorm:"type:longtext"`
	AuthorID           *string     `json:"author_id"            gorm:"type:char(36)"`
	AuthorName         string      `json:"author_name"`
	SEOTitle           string      `json:"seo_title"`
	SEODescription     string      `json:"seo_description"      gorm:"type:text"`
	CanonicalURL       *string     `json:"canonical_url"`
	Noindex            bool        `json:"noindex"              gorm:"default:false"`
	Status             string      `json:"status"               gorm:"type:varchar(16);default:'draft';index"`
	PublishedAt        *time.Time  `json:"published_at"         gorm:"index"`
	TranslationGroupID string      `json:"translation_group_id" gorm:"type:char(36);index"`
	ParentPostID       *string     `json:"parent_post_id"       gorm:"type:char(36)"`
}

func (PostModel) TableName() string { return "posts" }

// IsPublished reports whether the post is publicly visible.
func (p *PostModel) IsPublished() bool { return p.Status == PostStatusPublished }
