package model

import "time"

// Session описывает сессию пользователя с непрозрачным токеном.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
