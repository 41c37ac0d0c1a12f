package store

import (
	"database/sql"
	"fmt"
	"strings"

	"noteva/pkg/models"
)

// CreateCategory inserts a category, generating its ID and slug.
func (s *Store) CreateCategory(c *models.Category) error {
	if c.Name == "" {
		return fmt.Errorf("category name: %w", models.ErrInvalidID)
	}
	id, err := newID()
	if err != nil {
		return err
	}
	c.ID = id
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	_, err = s.db.Exec(
		"INSERT INTO categories (category_id, name, slug, description) VALUES (?, ?, ?, ?)",
		c.ID, c.Name, c.Slug, c.Description,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.ErrDuplicateSlug
		}
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

// UpdateCategory overwrites name, slug and description.
func (s *Store) UpdateCategory(c *models.Category) error {
	if c.ID == "" {
		return models.ErrInvalidID
	}
	res, err := s.db.Exec(
		"UPDATE categories SET name = ?, slug = ?, description = ? WHERE category_id = ?",
		c.Name, c.Slug, c.Description, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category; articles keep a dangling category_id
// which the backend treats as uncategorized.
func (s *Store) DeleteCategory(id string) error {
	if id == "" {
		return models.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM categories WHERE category_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetCategoryBySlug fetches one category.
func (s *Store) GetCategoryBySlug(slug string) (*models.Category, error) {
	row := s.db.QueryRow(
		`SELECT c.category_id, c.name, c.slug, c.description,
		        (SELECT COUNT(*) FROM articles a WHERE a.category_id = c.category_id)
		 FROM categories c WHERE c.slug = ?`, slug,
	)
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ArticleCount)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return &c, nil
}

// ListCategories returns all categories with article counts, by name.
func (s *Store) ListCategories() ([]models.Category, error) {
	rows, err := s.db.Query(
		`SELECT c.category_id, c.name, c.slug, c.description,
		        (SELECT COUNT(*) FROM articles a WHERE a.category_id = c.category_id)
		 FROM categories c ORDER BY c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ArticleCount); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListTags returns all tags with usage counts, by name.
func (s *Store) ListTags() ([]models.Tag, error) {
	rows, err := s.db.Query(
		`SELECT t.tag_id, t.name, t.slug,
		        (SELECT COUNT(*) FROM article_tags at WHERE at.tag_id = t.tag_id)
		 FROM tags t ORDER BY t.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	out := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.ArticleCount); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteTag removes a tag and its article links.
func (s *Store) DeleteTag(id string) error {
	if id == "" {
		return models.ErrInvalidID
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM tags WHERE tag_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	if _, err := tx.Exec("DELETE FROM article_tags WHERE tag_id = ?", id); err != nil {
		return fmt.Errorf("deleting tag links: %w", err)
	}
	return tx.Commit()
}
