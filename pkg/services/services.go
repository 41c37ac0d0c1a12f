package services

import "noteva/pkg/store"

var db *store.Store

// Init hands the services package its store handle. Must run before any
// handler is served.
func Init(s *store.Store) {
	db = s
	InvalidateArticleCache()
}

// Store exposes the handle for handlers that talk to the store directly.
func Store() *store.Store {
	return db
}
