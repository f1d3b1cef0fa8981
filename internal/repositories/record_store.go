package repositories

import (
	"sync"

	"gearguard/internal/entities"
)

// RecordStore - последние загруженные снимки коллекций. Снимок всегда
// заменяется целиком после перезагрузки, частичных правок нет.
// Геттеры отдают копии, чтобы вызывающий код не мог поменять снимок.
type RecordStore struct {
	mu        sync.RWMutex
	equipment []entities.Equipment
	teams     []entities.Team
	users     []entities.User
	requests  []entities.MaintenanceRequest
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func (s *RecordStore) ReplaceEquipment(items []entities.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = cloneSlice(items)
}

func (s *RecordStore) ReplaceTeams(items []entities.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	teams := make([]entities.Team, len(items))
	for i, t := range items {
		t.MemberIDs = cloneSlice(t.MemberIDs)
		teams[i] = t
	}
	s.teams = teams
}

func (s *RecordStore) ReplaceUsers(items []entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = cloneSlice(items)
}

func (s *RecordStore) ReplaceRequests(items []entities.MaintenanceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = cloneSlice(items)
}

func (s *RecordStore) Equipment() []entities.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.equipment)
}

func (s *RecordStore) Teams() []entities.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]entities.Team, len(s.teams))
	for i, t := range s.teams {
		t.MemberIDs = cloneSlice(t.MemberIDs)
		teams[i] = t
	}
	return teams
}

func (s *RecordStore) Users() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.users)
}

func (s *RecordStore) Requests() []entities.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.requests)
}

func (s *RecordStore) FindEquipment(id string) (entities.Equipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.equipment {
		if e.ID == id {
			return e, true
		}
	}
	return entities.Equipment{}, false
}

func (s *RecordStore) FindTeam(id string) (entities.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			t.MemberIDs = cloneSlice(t.MemberIDs)
			return t, true
		}
	}
	return entities.Team{}, false
}

func (s *RecordStore) FindRequest(id string) (entities.MaintenanceRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return entities.MaintenanceRequest{}, false
}

// Reset забывает все снимки (выход из сессии).
func (s *RecordStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = nil
	s.teams = nil
	s.users = nil
	s.requests = nil
}

// cloneSlice всегда возвращает не-nil срез, чтобы в JSON был [], а не null.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
