package models

import "time"

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is a blog post. Tags carries resolved tag names for display;
// the store owns the article_tags join rows.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" binding:"required"`
	Slug       string    `json:"slug"`
	Summary    string    `json:"summary,omitempty"`
	Body       string    `json:"body,omitempty"`
	Status     string    `json:"status"`
	CategoryID string    `json:"category_id,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Category groups articles. Flat, no nesting.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	ArticleCount int    `json:"article_count"`
}

// Tag is a free-form label attached to articles.
type Tag struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	ArticleCount int    `json:"article_count"`
}

// Comment statuses.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
)

// Comment is a reader comment on an article. Moderation is server-side;
// only approved comments appear on the public page.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id" binding:"required"`
	Author    string    `json:"author" binding:"required"`
	Email     string    `json:"email,omitempty"`
	Body      string    `json:"body" binding:"required"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
