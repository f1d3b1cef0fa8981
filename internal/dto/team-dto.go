package dto

import (
	"strings"

	"gearguard/internal/entities"
	"gearguard/internal/uistate"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
)

// TeamFormDTO - форма бригады. Она же тело POST/PUT /teams.
type TeamFormDTO struct {
	Name        string      `json:"name" validate:"required"`
	Description null.String `json:"description"`
	MemberIDs   []string    `json:"member_ids" validate:"dive,required"`
}

// Normalize не трогает MemberIDs: nil означает "поле не прислали", и тогда
// участники берутся из открытого диалога.
func (f *TeamFormDTO) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = utils.NullString(strings.TrimSpace(utils.StringOrEmpty(f.Description)))
}

func TeamFormFrom(t entities.Team) TeamFormDTO {
	members := make([]string, len(t.MemberIDs))
	copy(members, t.MemberIDs)
	return TeamFormDTO{Name: t.Name, Description: t.Description, MemberIDs: members}
}

// TeamCardDTO - бригада с уже разрешёнными участниками.
type TeamCardDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description null.String     `json:"description"`
	Members     []entities.User `json:"members"`
}

type TeamPageDTO struct {
	Items  []TeamCardDTO               `json:"items"`
	Users  []entities.User             `json:"users"`
	Dialog uistate.Dialog[TeamFormDTO] `json:"dialog"`
}
