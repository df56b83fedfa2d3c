// Package model содержит доменные структуры организаций, пользователей и бронирований столов
package model

// Role представляет роль пользователя внутри организации.
type Role string

const (
	// RoleAdmin означает, что пользователь является администратором своей организации.
	RoleAdmin Role = "ADMIN"
	// RoleMember означает обычного участника организации.
	RoleMember Role = "MEMBER"
)

// RoleChangeType представляет тип операции смены роли участника.
type RoleChangeType string

const (
	// PromoteToAdmin повышает участника до администратора.
	PromoteToAdmin RoleChangeType = "PROMOTE_TO_ADMIN"
	// DemoteFromAdmin понижает администратора до обычного участника.
	DemoteFromAdmin RoleChangeType = "DEMOTE_FROM_ADMIN"
)

// User описывает пользователя, его роль и ссылку на организацию (может отсутствовать).
type User struct {
	UserID         string  `json:"user_id"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	Role           Role    `json:"role"`
	OrganizationID *string `json:"organization_id,omitempty"`
	PasswordHash   string  `json:"-"`
}

// IsAdmin сообщает, обладает ли пользователь административной ролью.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
