package models

import "time"

// User is an admin account. PasswordHash is a bcrypt hash and is never
// serialized into API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginLog is one audit record of a login attempt, successful or not.
type LoginLog struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

// SiteInfo is the read-only site description handed to plugins and the
// public templates.
type SiteInfo struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Theme       string `json:"theme"`
}
