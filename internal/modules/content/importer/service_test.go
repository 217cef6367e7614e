package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/soursync/core/internal/ingest"
	"github.com/soursync/core/internal/models"
	"github.com/soursync/core/internal/modules/content/post"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	posts     []*models.PostModel
	insertErr error
}

func (f *fakeStore) FindBySlugAndLanguage(slug, language string) (*models.PostModel, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.Language == language {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(p *models.PostModel) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.posts = append(f.posts, p)
	return nil
}

const contentShakeSample = `ContentShake AI
Title: Why Use a Sourcing Agent Instead of Alibaba
Title Tag: Sourcing Agent vs Alibaba
Meta Description: A practical comparison.
Keywords: sourcing, china
Language: french

Article
boilerplate
Opening paragraph of the article.

What is Alibaba?
Alibaba is a marketplace.

Conclusion
Closing thoughts.`

func newTestService(store PostStore) *Service {
	return NewService(store, "SourSync Team", nil)
}

func TestImportTextContentShake(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p, err := svc.ImportText(contentShakeSample, Options{Status: models.PostStatusPublished})
	require.NoError(t, err)

	assert.Equal(t, "why-use-a-sourcing-agent-instead-of-alibaba", p.Slug)
	assert.Equal(t, "fr", p.Language)
	assert.Equal(t, "Why Use a Sourcing Agent Instead of Alibaba", p.Title)
	assert.Equal(t, "A practical comparison.", p.Description)
	assert.Equal(t, "Sourcing Agent vs Alibaba", p.SEOTitle)
	assert.Equal(t, "A practical comparison.", p.SEODescription)
	assert.Equal(t, models.StringArray{"sourcing", "china"}, p.Tags)
	assert.Equal(t, "SourSync Team", p.AuthorName)
	assert.Equal(t, models.PostStatusPublished, p.Status)
	require.NotNil(t, p.PublishedAt)

	_, err = uuid.Parse(p.TranslationGroupID)
	assert.NoError(t, err)

	require.Len(t, p.TOC, 2)
	assert.Equal(t, models.TOCEntry{ID: "what-is-alibaba", Text: "What is Alibaba?", Level: 2}, p.TOC[0])
	assert.Equal(t, models.TOCEntry{ID: "conclusion", Text: "Conclusion", Level: 2}, p.TOC[1])

	require.Len(t, store.posts, 1)
}

func TestImportTextDraftByDefault(t *testing.T) {
	svc := newTestService(&fakeStore{})

	p, err := svc.ImportText("Plain Title\nA body line.", Options{})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, p.Status)
	assert.Nil(t, p.PublishedAt)
	assert.Equal(t, "en", p.Language)
}

func TestImportTextConflict(t *testing.T) {
	store := &fakeStore{posts: []*models.PostModel{{
		Base:     models.Base{ID: "existing-id"},
		Slug:     "why-use-a-sourcing-agent-instead-of-alibaba",
		Language: "fr",
	}}}
	svc := newTestService(store)

	_, err := svc.ImportText(contentShakeSample, Options{})
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "why-use-a-sourcing-agent-instead-of-alibaba", conflict.Slug)
	assert.Equal(t, "fr", conflict.Language)
	assert.Equal(t, "existing-id", conflict.ExistingID)
}

func TestImportTextInsertRaceSurfacesConflict(t *testing.T) {
	svc := newTestService(&fakeStore{insertErr: post.ErrSlugConflict})

	_, err := svc.ImportText(contentShakeSample, Options{})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestImportTextMalformed(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.ImportText("Title Tag: Too Short\nno body", Options{})
	assert.ErrorIs(t, err, ingest.ErrMalformedInput)
}

func TestImportURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Remote Article</title></head>
<body><article><p>Remote article body text.</p><img src="/cover.png" alt=""></article></body></html>`))
	}))
	defer srv.Close()

	store := &fakeStore{}
	svc := newTestService(store)

	p, err := svc.ImportURL(context.Background(), srv.URL, Options{Status: models.PostStatusPublished})
	require.NoError(t, err)

	assert.Equal(t, "remote-article", p.Slug)
	require.NotNil(t, p.CanonicalURL)
	assert.Equal(t, srv.URL, *p.CanonicalURL)
	require.NotNil(t, p.CoverImage)
	assert.Equal(t, srv.URL+"/cover.png", *p.CoverImage)
	require.NotNil(t, p.CoverAlt)
	assert.Equal(t, "Remote Article", *p.CoverAlt)
	assert.Contains(t, p.Content, "Remote article body text.")
}

func TestImportURLFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	svc := newTestService(&fakeStore{})

	_, err := svc.ImportURL(context.Background(), srv.URL, Options{})
	var fetchErr *ingest.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Status, "403")
}

func TestImportContentShakeDirect(t *testing.T) {
	svc := newTestService(&fakeStore{})

	// No vendor markers beyond the metadata; the direct path must not
	// depend on format detection.
	p, err := svc.ImportContentShake(strings.Replace(contentShakeSample, "ContentShake AI\n", "", 1), Options{})
	require.NoError(t, err)
	assert.Equal(t, "fr", p.Language)
}
