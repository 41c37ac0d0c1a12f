package store

import (
	"fmt"

	"noteva/pkg/models"
)

// SaveNavItem inserts or updates a navigation item. An empty ID means
// create.
func (s *Store) SaveNavItem(n *models.NavItem) error {
	if n.Title == "" || n.NavType == "" {
		return models.ErrInvalidID
	}
	if n.ID == "" {
		id, err := newID()
		if err != nil {
			return err
		}
		n.ID = id
		_, err = s.db.Exec(
			"INSERT INTO nav_items (nav_id, parent_id, title, nav_type, target, position) VALUES (?, ?, ?, ?, ?, ?)",
			n.ID, n.ParentID, n.Title, n.NavType, n.Target, n.Position,
		)
		if err != nil {
			return fmt.Errorf("inserting nav item: %w", err)
		}
		return nil
	}

	res, err := s.db.Exec(
		"UPDATE nav_items SET parent_id = ?, title = ?, nav_type = ?, target = ?, position = ? WHERE nav_id = ?",
		n.ParentID, n.Title, n.NavType, n.Target, n.Position, n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating nav item: %w", err)
	}
	if cnt, _ := res.RowsAffected(); cnt == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteNavItem removes an item; children are reparented to top level.
func (s *Store) DeleteNavItem(id string) error {
	if id == "" {
		return models.ErrInvalidID
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM nav_items WHERE nav_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting nav item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	if _, err := tx.Exec("UPDATE nav_items SET parent_id = '' WHERE parent_id = ?", id); err != nil {
		return fmt.Errorf("reparenting nav children: %w", err)
	}
	return tx.Commit()
}

// ListNavItems returns all items ordered by position then title.
func (s *Store) ListNavItems() ([]models.NavItem, error) {
	rows, err := s.db.Query(
		"SELECT nav_id, parent_id, title, nav_type, target, position FROM nav_items ORDER BY position, title",
	)
	if err != nil {
		return nil, fmt.Errorf("listing nav items: %w", err)
	}
	defer rows.Close()

	out := []models.NavItem{}
	for rows.Next() {
		var n models.NavItem
		if err := rows.Scan(&n.ID, &n.ParentID, &n.Title, &n.NavType, &n.Target, &n.Position); err != nil {
			return nil, fmt.Errorf("scanning nav item: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
