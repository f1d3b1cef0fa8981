package maintenance

import (
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

// DragState - сериализуемое состояние перетаскивания карточки.
type DragState struct {
	RequestID string          `json:"request_id"`
	FromStage constants.Stage `json:"from_stage"`
	OverStage constants.Stage `json:"over_stage,omitempty"`
}

// DragSession реализует протокол Begin -> Over* -> Commit | Cancel.
// Не потокобезопасен: владелец (контроллер доски) сам держит блокировку.
type DragSession struct {
	item *entities.MaintenanceRequest
	over constants.Stage
}

// Begin запоминает снимок заявки на момент захвата. Повторный Begin
// заменяет предыдущий захват.
func (s *DragSession) Begin(req entities.MaintenanceRequest) {
	item := req
	s.item = &item
	s.over = ""
}

// Over отмечает колонку под курсором. Может вызываться сколько угодно раз.
func (s *DragSession) Over(target constants.Stage) error {
	if s.item == nil {
		return ErrNoActiveDrag
	}
	if !target.Valid() {
		return ErrUnknownStage
	}
	s.over = target
	return nil
}

// Commit завершает перетаскивание над колонкой target. Сессия очищается
// в любом случае, в том числе при ErrNoopTransition.
func (s *DragSession) Commit(target constants.Stage) (StagePatch, error) {
	if s.item == nil {
		return StagePatch{}, ErrNoActiveDrag
	}
	item := *s.item
	s.Cancel()
	return PlanTransition(item, target)
}

func (s *DragSession) Cancel() {
	s.item = nil
	s.over = ""
}

func (s *DragSession) State() (DragState, bool) {
	if s.item == nil {
		return DragState{}, false
	}
	return DragState{RequestID: s.item.ID, FromStage: s.item.Stage, OverStage: s.over}, true
}

func (s *DragSession) IsDragging(requestID string) bool {
	return s.item != nil && s.item.ID == requestID
}
