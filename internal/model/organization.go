package model

import "time"

// Organization описывает организацию (тенант), к которой привязаны пользователи.
type Organization struct {
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}
