package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAndParse(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><head><title>Remote Page</title></head><body><article><p>remote body</p></article></body></html>`))
	}))
	defer srv.Close()

	article, err := NewFetcher().FetchAndParse(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Remote Page", article.Title)
	assert.Contains(t, article.Content, "remote body")
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestFetchAndParseNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher().FetchAndParse(context.Background(), srv.URL)
	require.Error(t, err)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, srv.URL, fe.URL)
	assert.Contains(t, fe.Status, "404")
}

func TestFetchAndParseTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewFetcher().FetchAndParse(context.Background(), srv.URL)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Empty(t, fe.Status)
	assert.Error(t, fe.Err)
}

func TestFetchAndParseRelativeImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><article><img src="/cover.png" alt="cover"></article></body></html>`))
	}))
	defer srv.Close()

	article, err := NewFetcher().FetchAndParse(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, article.Images, 1)
	assert.Equal(t, srv.URL+"/cover.png", article.Images[0])
}
