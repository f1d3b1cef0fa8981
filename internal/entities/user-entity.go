package entities

import "github.com/aarondl/null/v8"

type User struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   string      `json:"role"`
	TeamID null.String `json:"team_id"`
}
