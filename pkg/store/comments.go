package store

import (
	"fmt"
	"time"

	"noteva/pkg/models"
)

// CreateComment stores a reader comment in pending state.
func (s *Store) CreateComment(c *models.Comment) error {
	if c.ArticleID == "" || c.Author == "" || c.Body == "" {
		return models.ErrInvalidID
	}
	id, err := newID()
	if err != nil {
		return err
	}
	c.ID = id
	if c.Status == "" {
		c.Status = models.CommentPending
	}
	c.CreatedAt = time.Now().UTC()
	_, err = s.db.Exec(
		"INSERT INTO comments (comment_id, article_id, author, email, body, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.ArticleID, c.Author, c.Email, c.Body, c.Status, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

// SetCommentStatus moderates a comment.
func (s *Store) SetCommentStatus(id, status string) error {
	if id == "" {
		return models.ErrInvalidID
	}
	res, err := s.db.Exec("UPDATE comments SET status = ? WHERE comment_id = ?", status, id)
	if err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteComment removes a comment.
func (s *Store) DeleteComment(id string) error {
	if id == "" {
		return models.ErrInvalidID
	}
	res, err := s.db.Exec("DELETE FROM comments WHERE comment_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListComments returns one page of comments, newest first. articleID and
// status are optional filters; status "" means all.
func (s *Store) ListComments(articleID, status string, page, perPage int) ([]models.Comment, int, error) {
	where := " WHERE 1=1"
	var args []any
	if articleID != "" {
		where += " AND article_id = ?"
		args = append(args, articleID)
	}
	if status != "" {
		where += " AND status = ?"
		args = append(args, status)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM comments"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting comments: %w", err)
	}

	query := "SELECT comment_id, article_id, author, email, body, status, created_at FROM comments" + where + " ORDER BY created_at DESC"
	if perPage > 0 {
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", perPage, (page-1)*perPage)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	out := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Email, &c.Body, &c.Status, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning comment: %w", err)
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}
