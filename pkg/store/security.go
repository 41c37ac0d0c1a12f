package store

import (
	"database/sql"
	"fmt"
	"time"

	"noteva/pkg/models"
)

// CreateUser inserts an admin account with an already-hashed password.
func (s *Store) CreateUser(username, passwordHash string) (*models.User, error) {
	if username == "" || passwordHash == "" {
		return nil, models.ErrInvalidID
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	u := &models.User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	_, err = s.db.Exec(
		"INSERT INTO users (user_id, username, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Username, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// GetUserByName looks up an account for login.
func (s *Store) GetUserByName(username string) (*models.User, error) {
	row := s.db.QueryRow(
		"SELECT user_id, username, password_hash, created_at FROM users WHERE username = ?", username,
	)
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &u, nil
}

// AppendLoginLog records one login attempt. Audit rows are append-only.
func (s *Store) AppendLoginLog(l *models.LoginLog) error {
	id, err := newID()
	if err != nil {
		return err
	}
	l.ID = id
	l.CreatedAt = time.Now().UTC()
	success := 0
	if l.Success {
		success = 1
	}
	_, err = s.db.Exec(
		"INSERT INTO login_logs (log_id, username, ip, user_agent, success, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		l.ID, l.Username, l.IP, l.UserAgent, success, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending login log: %w", err)
	}
	return nil
}

// ListLoginLogs returns one page of audit records, newest first.
func (s *Store) ListLoginLogs(page, perPage int) ([]models.LoginLog, int, error) {
	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM login_logs").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting login logs: %w", err)
	}

	query := "SELECT log_id, username, ip, user_agent, success, created_at FROM login_logs ORDER BY created_at DESC"
	if perPage > 0 {
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", perPage, (page-1)*perPage)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, 0, fmt.Errorf("listing login logs: %w", err)
	}
	defer rows.Close()

	out := []models.LoginLog{}
	for rows.Next() {
		var l models.LoginLog
		var success int
		if err := rows.Scan(&l.ID, &l.Username, &l.IP, &l.UserAgent, &success, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning login log: %w", err)
		}
		l.Success = success != 0
		out = append(out, l)
	}
	return out, total, rows.Err()
}
