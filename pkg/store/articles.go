package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"noteva/pkg/models"
)

// ArticleFilter narrows ListArticles. Zero values mean "no constraint".
type ArticleFilter struct {
	Status     string
	CategoryID string
	TagSlug    string
	Page       int
	PerPage    int
}

// CreateArticle inserts a new article, generating its ID, and replaces its
// tag set. Timestamps are set here.
func (s *Store) CreateArticle(a *models.Article) error {
	if a.Title == "" {
		return fmt.Errorf("article title: %w", models.ErrInvalidID)
	}
	id, err := newID()
	if err != nil {
		return err
	}
	a.ID = id
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if a.Status == "" {
		a.Status = models.StatusDraft
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO articles (article_id, title, slug, summary, body, status, category_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Slug, a.Summary, a.Body, a.Status, a.CategoryID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.ErrDuplicateSlug
		}
		return fmt.Errorf("inserting article: %w", err)
	}
	if err := replaceArticleTags(tx, a.ID, a.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateArticle overwrites an existing article and its tag set.
func (s *Store) UpdateArticle(a *models.Article) error {
	if a.ID == "" {
		return models.ErrInvalidID
	}
	a.UpdatedAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE articles SET title = ?, slug = ?, summary = ?, body = ?, status = ?, category_id = ?, updated_at = ?
		 WHERE article_id = ?`,
		a.Title, a.Slug, a.Summary, a.Body, a.Status, a.CategoryID, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating article: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	if err := replaceArticleTags(tx, a.ID, a.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteArticle removes an article, its tag links and its comments.
func (s *Store) DeleteArticle(id string) error {
	if id == "" {
		return models.ErrInvalidID
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM articles WHERE article_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	if _, err := tx.Exec("DELETE FROM article_tags WHERE article_id = ?", id); err != nil {
		return fmt.Errorf("deleting article tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM comments WHERE article_id = ?", id); err != nil {
		return fmt.Errorf("deleting article comments: %w", err)
	}
	return tx.Commit()
}

// GetArticle fetches one article by ID, tags included.
func (s *Store) GetArticle(id string) (*models.Article, error) {
	return s.getArticle("article_id", id)
}

// GetArticleBySlug fetches one article by slug, tags included.
func (s *Store) GetArticleBySlug(slug string) (*models.Article, error) {
	return s.getArticle("slug", slug)
}

func (s *Store) getArticle(col, val string) (*models.Article, error) {
	if val == "" {
		return nil, models.ErrInvalidID
	}
	row := s.db.QueryRow(
		`SELECT article_id, title, slug, summary, body, status, category_id, created_at, updated_at
		 FROM articles WHERE `+col+` = ?`, val,
	)
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Body, &a.Status, &a.CategoryID, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting article: %w", err)
	}
	a.Tags, err = s.articleTags(a.ID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListArticles returns one page of articles, newest first, plus the total
// row count for pagination.
func (s *Store) ListArticles(f ArticleFilter) ([]models.Article, int, error) {
	var conds []string
	var args []any
	if f.Status != "" {
		conds = append(conds, "a.status = ?")
		args = append(args, f.Status)
	}
	if f.CategoryID != "" {
		conds = append(conds, "a.category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.TagSlug != "" {
		conds = append(conds, `a.article_id IN (
			SELECT at.article_id FROM article_tags at
			JOIN tags t ON t.tag_id = at.tag_id WHERE t.slug = ?)`)
		args = append(args, f.TagSlug)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM articles a"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting articles: %w", err)
	}

	query := `SELECT a.article_id, a.title, a.slug, a.summary, a.body, a.status, a.category_id, a.created_at, a.updated_at
		 FROM articles a` + where + " ORDER BY a.created_at DESC"
	if f.PerPage > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PerPage, (page-1)*f.PerPage)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Body, &a.Status, &a.CategoryID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating articles: %w", err)
	}

	for i := range articles {
		tags, err := s.articleTags(articles[i].ID)
		if err != nil {
			return nil, 0, err
		}
		articles[i].Tags = tags
	}
	return articles, total, nil
}

func (s *Store) articleTags(articleID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT t.name FROM tags t
		 JOIN article_tags at ON at.tag_id = t.tag_id
		 WHERE at.article_id = ? ORDER BY t.name`, articleID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading article tags: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning tag name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// replaceArticleTags rewrites the join rows for an article, creating tag
// rows for names not seen before.
func replaceArticleTags(tx *sql.Tx, articleID string, names []string) error {
	if _, err := tx.Exec("DELETE FROM article_tags WHERE article_id = ?", articleID); err != nil {
		return fmt.Errorf("clearing article tags: %w", err)
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		slug := Slugify(name)
		var tagID string
		err := tx.QueryRow("SELECT tag_id FROM tags WHERE slug = ?", slug).Scan(&tagID)
		if err == sql.ErrNoRows {
			tagID, err = newID()
			if err != nil {
				return err
			}
			if _, err := tx.Exec("INSERT INTO tags (tag_id, name, slug) VALUES (?, ?, ?)", tagID, name, slug); err != nil {
				return fmt.Errorf("creating tag %s: %w", name, err)
			}
		} else if err != nil {
			return fmt.Errorf("looking up tag %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO article_tags (article_id, tag_id) VALUES (?, ?)", articleID, tagID); err != nil {
			return fmt.Errorf("linking tag %s: %w", name, err)
		}
	}
	return nil
}

// Slugify lowercases a title and squashes runs of non-alphanumerics into
// single dashes.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
