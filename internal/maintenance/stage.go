package maintenance

import (
	"errors"
	"fmt"
	"strings"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

var (
	ErrUnknownStage   = errors.New("unknown stage")
	ErrNoopTransition = errors.New("request is already in this stage")
	ErrNoActiveDrag   = errors.New("no drag in progress")
)

// InitialStage - стадия новой заявки.
const InitialStage = constants.StageNew

// ParseStage принимает только четыре известные стадии.
func ParseStage(s string) (constants.Stage, error) {
	stage := constants.Stage(strings.TrimSpace(s))
	if !stage.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, s)
	}
	return stage, nil
}

// CanTransition: порядок стадий не навязывается, из любой можно перейти в любую
// другую. Запрещён только переход в ту же самую стадию.
func CanTransition(from, to constants.Stage) bool {
	return from.Valid() && to.Valid() && from != to
}

// StagePatch - частичное обновление заявки: только поле stage.
type StagePatch struct {
	RequestID string          `json:"-"`
	From      constants.Stage `json:"-"`
	Stage     constants.Stage `json:"stage"`
}

// PlanTransition строит обновление для перевода заявки в target.
// Та же стадия -> ErrNoopTransition: операция отменяется без запроса в сеть.
func PlanTransition(req entities.MaintenanceRequest, target constants.Stage) (StagePatch, error) {
	if !target.Valid() {
		return StagePatch{}, fmt.Errorf("%w: %q", ErrUnknownStage, target)
	}
	if req.Stage == target {
		return StagePatch{}, ErrNoopTransition
	}
	return StagePatch{RequestID: req.ID, From: req.Stage, Stage: target}, nil
}
