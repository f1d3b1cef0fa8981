package maintenance

import (
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	today := mustDate("2025-01-01")

	tests := []struct {
		name string
		req  func() bool
		want bool
	}{
		{"финальная стадия repaired", func() bool { return IsOverdue(preventive("1", "2020-01-01", constants.StageRepaired), today) }, false},
		{"финальная стадия scrap", func() bool { return IsOverdue(preventive("1", "2020-01-01", constants.StageScrap), today) }, false},
		{"без даты", func() bool { return IsOverdue(preventive("1", "", constants.StageNew), today) }, false},
		{"кривая дата", func() bool { return IsOverdue(preventive("1", "someday", constants.StageNew), today) }, false},
		{"на сегодня ещё не просрочена", func() bool { return IsOverdue(preventive("1", "2025-01-01", constants.StageNew), today) }, false},
		{"вчера", func() bool { return IsOverdue(preventive("1", "2024-12-31", constants.StageInProgress), today) }, true},
		{"завтра", func() bool { return IsOverdue(preventive("1", "2025-01-02", constants.StageNew), today) }, false},
		{"корректирующая с датой тоже считается", func() bool { return IsOverdue(corrective("1", "2024-06-01", constants.StageNew), today) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req())
		})
	}
}

func TestIsOverdue_FinalStagesNeverOverdue(t *testing.T) {
	dates := []string{"1999-01-01", "2020-01-01", "2024-12-31", "2025-01-01", "2030-01-01"}
	today := mustDate("2025-01-01")
	for _, stage := range constants.FinalStages {
		for _, d := range dates {
			assert.False(t, IsOverdue(preventive("x", d, stage), today), "%s %s", stage, d)
		}
	}
}

func TestCountOverdue(t *testing.T) {
	today := mustDate("2025-03-10")
	requests := []entities.MaintenanceRequest{
		preventive("a", "2025-03-01", constants.StageNew),
		preventive("b", "2025-03-09", constants.StageInProgress),
		preventive("c", "2025-03-10", constants.StageNew),
		preventive("d", "2025-02-01", constants.StageRepaired),
		corrective("e", "", constants.StageNew),
	}
	assert.Equal(t, 2, CountOverdue(requests, today))
	assert.Equal(t, 0, CountOverdue(nil, today))
}
