package maintenance

import (
	"strings"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/aarondl/null/v8"
)

// ResolveName возвращает имя исполнителя или "Unassigned", если id пуст
// или указывает на несуществующего пользователя. Никогда не падает.
func ResolveName(userID string, users []entities.User) string {
	if userID == "" {
		return constants.Unassigned
	}
	for _, u := range users {
		if u.ID == userID {
			return u.Name
		}
	}
	return constants.Unassigned
}

// AssignmentPatch - частичное обновление заявки: только assigned_to.
// Невалидный AssignedTo уходит в JSON как null, то есть "снять назначение".
type AssignmentPatch struct {
	AssignedTo null.String `json:"assigned_to"`
}

// PlanAssignment: пустое значение и подпись "Unassigned" означают снятие
// назначения, а не пользователя с таким именем.
func PlanAssignment(userID string) AssignmentPatch {
	userID = strings.TrimSpace(userID)
	if userID == "" || userID == constants.Unassigned {
		return AssignmentPatch{}
	}
	return AssignmentPatch{AssignedTo: null.StringFrom(userID)}
}

func (p AssignmentPatch) IsUnassign() bool { return !p.AssignedTo.Valid }

// ResolveMembers возвращает участников бригады в порядке списка пользователей.
// Висячие ID молча пропускаются.
func ResolveMembers(memberIDs []string, users []entities.User) []entities.User {
	if len(memberIDs) == 0 {
		return []entities.User{}
	}
	wanted := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		wanted[id] = struct{}{}
	}
	members := make([]entities.User, 0, len(memberIDs))
	for _, u := range users {
		if _, ok := wanted[u.ID]; ok {
			members = append(members, u)
		}
	}
	return members
}
