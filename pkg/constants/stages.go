package constants

// Stage - стадия заявки на обслуживание. Допустимы только четыре значения.
type Stage string

// --- СТАДИИ ЗАЯВОК (совпадают со значениями бэкенда) ---
const (
	StageNew        Stage = "new"
	StageInProgress Stage = "in_progress"
	StageRepaired   Stage = "repaired"
	StageScrap      Stage = "scrap"
)

// Stages - порядок колонок канбан-доски.
var Stages = []Stage{StageNew, StageInProgress, StageRepaired, StageScrap}

// Финальные стадии: просроченной такая заявка уже не считается.
var FinalStages = []Stage{StageRepaired, StageScrap}

func IsFinalStage(s Stage) bool {
	for _, f := range FinalStages {
		if f == s {
			return true
		}
	}
	return false
}

func (s Stage) Valid() bool {
	for _, known := range Stages {
		if known == s {
			return true
		}
	}
	return false
}

// Label - подпись колонки.
func (s Stage) Label() string {
	switch s {
	case StageNew:
		return "New"
	case StageInProgress:
		return "In Progress"
	case StageRepaired:
		return "Repaired"
	case StageScrap:
		return "Scrap"
	}
	return string(s)
}
