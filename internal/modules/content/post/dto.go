package post

// ListQuery holds optional filters for post listings.
type ListQuery struct {
	Language string `form:"lang"`
	Tag      string `form:"tag"`
	Status   string `form:"status"` // admin listings only
}

// CreateDTO is the admin manual-create payload. Slug is derived from
// the title when omitted.
type CreateDTO struct {
	Title          string   `json:"title" binding:"required"`
	Slug           string   `json:"slug"`
	Language       string   `json:"language"`
	Description    string   `json:"description"`
	Content        string   `json:"content" binding:"required"`
	CoverImage     *string  `json:"cover_image"`
	CoverAlt       *string  `json:"cover_alt"`
	Category       *string  `json:"category"`
	Tags           []string `json:"tags"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	CanonicalURL   *string  `json:"canonical_url"`
	Noindex        bool     `json:"noindex"`
	Status         string   `json:"status"`
}

// UpdateDTO carries partial updates; nil fields are left untouched.
type UpdateDTO struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Content        *string  `json:"content"`
	CoverImage     *string  `json:"cover_image"`
	CoverAlt       *string  `json:"cover_alt"`
	Category       *string  `json:"category"`
	Tags           []string `json:"tags"`
	SEOTitle       *string  `json:"seo_title"`
	SEODescription *string  `json:"seo_description"`
	CanonicalURL   *string  `json:"canonical_url"`
	Noindex        *bool    `json:"noindex"`
	Status         *string  `json:"status"`
}
