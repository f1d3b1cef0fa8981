package events

import "gearguard/pkg/constants"

const (
	NameRequestStageChanged = "request.stage.changed"
	NameRequestAssigned     = "request.assigned"
	NameOperationSucceeded  = "operation.succeeded"
	NameOperationFailed     = "operation.failed"
)

// RequestStageChangedEvent - заявка перешла в другую колонку, бэкенд подтвердил.
type RequestStageChangedEvent struct {
	RequestID string
	Subject   string
	From      constants.Stage
	To        constants.Stage
}

func (e RequestStageChangedEvent) Name() string { return NameRequestStageChanged }

// RequestAssignedEvent - у заявки сменился исполнитель. AssigneeName пустой при снятии.
type RequestAssignedEvent struct {
	RequestID    string
	AssigneeID   string
	AssigneeName string
}

func (e RequestAssignedEvent) Name() string { return NameRequestAssigned }

// OperationSucceededEvent - любая успешная операция страницы с готовым текстом.
type OperationSucceededEvent struct {
	Message string
}

func (e OperationSucceededEvent) Name() string { return NameOperationSucceeded }

// OperationFailedEvent - неудачная загрузка или запись. Message видит пользователь,
// Err уходит только в лог.
type OperationFailedEvent struct {
	Message string
	Err     error
}

func (e OperationFailedEvent) Name() string { return NameOperationFailed }
