package entities

import "github.com/aarondl/null/v8"

// Team - бригада обслуживания. Состав хранится списком ID пользователей.
type Team struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	MemberIDs   []string    `json:"member_ids"`
	CreatedAt   null.String `json:"created_at"`
}
