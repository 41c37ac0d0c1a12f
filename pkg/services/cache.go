package services

import (
	"sync"

	"noteva/pkg/models"
	"noteva/pkg/store"
)

var (
	publishedCache []models.Article
	cacheMutex     sync.Mutex
	cacheLoaded    bool
)

// PublishedArticles returns the full published list for the public pages,
// cached until the next write invalidates it.
func PublishedArticles() ([]models.Article, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if cacheLoaded {
		return publishedCache, nil
	}

	articles, _, err := db.ListArticles(store.ArticleFilter{Status: models.StatusPublished})
	if err != nil {
		return nil, err
	}

	publishedCache = articles
	cacheLoaded = true
	return publishedCache, nil
}

// InvalidateArticleCache drops the cached list. Called after any article
// write; readers refetch on next access.
func InvalidateArticleCache() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cacheLoaded = false
	publishedCache = nil
}
