package services

import (
	"context"
	"fmt"

	"gearguard/internal/entities"
	"gearguard/internal/maintenance"
	"gearguard/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	requestsSheet  = "Requests"
	equipmentSheet = "Equipment"
)

var requestHeaders = []string{
	"Subject", "Equipment", "Category", "Type", "Stage", "Scheduled", "Assigned To", "Overdue", "Created By",
}

var equipmentHeaders = []string{
	"Name", "Serial Number", "Category", "Department", "Assigned Employee", "Team", "Location",
	"Purchase Date", "Warranty Expiry", "Status",
}

type ReportServiceInterface interface {
	// RequestsWorkbook собирает xlsx-отчёт по свежим данным бэкенда.
	RequestsWorkbook(ctx context.Context) (*excelize.File, error)
}

type reportService struct {
	*BaseService
	clock Clock
}

func NewReportService(base *BaseService, clock Clock) ReportServiceInterface {
	return &reportService{BaseService: base, clock: clock}
}

func (s *reportService) RequestsWorkbook(ctx context.Context) (*excelize.File, error) {
	requests, err := s.api.ListRequests(ctx)
	if err != nil {
		return nil, s.writeFailed(ctx, "Failed to build report", err)
	}
	equipment, err := s.api.ListEquipment(ctx)
	if err != nil {
		return nil, s.writeFailed(ctx, "Failed to build report", err)
	}
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, s.writeFailed(ctx, "Failed to build report", err)
	}
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return nil, s.writeFailed(ctx, "Failed to build report", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", requestsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(equipmentSheet); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	rows := make([][]interface{}, 0, len(requests))
	for _, r := range requests {
		overdue := "No"
		if maintenance.IsOverdue(r, today) {
			overdue = "Yes"
		}
		rows = append(rows, []interface{}{
			r.Subject,
			utils.StringOrEmpty(r.EquipmentName),
			utils.StringOrEmpty(r.EquipmentCategory),
			string(r.RequestType),
			r.Stage.Label(),
			utils.StringOrEmpty(r.ScheduledDate),
			maintenance.ResolveName(r.AssignedTo.String, users),
			overdue,
			maintenance.ResolveName(r.CreatedBy, users),
		})
	}
	if err := writeSheet(f, requestsSheet, requestHeaders, rows, header); err != nil {
		return nil, err
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}
	rows = make([][]interface{}, 0, len(equipment))
	for _, e := range equipment {
		rows = append(rows, equipmentRow(e, teamNames))
	}
	if err := writeSheet(f, equipmentSheet, equipmentHeaders, rows, header); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(requestsSheet, "A", "B", 30)
	_ = f.SetColWidth(requestsSheet, "C", "I", 16)
	_ = f.SetColWidth(equipmentSheet, "A", "J", 20)

	s.logger.Info("Отчёт по заявкам сформирован",
		zap.Int("requests", len(requests)),
		zap.Int("equipment", len(equipment)),
	)
	return f, nil
}

func equipmentRow(e entities.Equipment, teamNames map[string]string) []interface{} {
	team := ""
	if e.TeamID.Valid {
		team = teamNames[e.TeamID.String]
	}
	return []interface{}{
		e.Name, e.SerialNumber, e.Category,
		utils.StringOrEmpty(e.Department),
		utils.StringOrEmpty(e.AssignedEmployee),
		team,
		utils.StringOrEmpty(e.Location),
		utils.StringOrEmpty(e.PurchaseDate),
		utils.StringOrEmpty(e.WarrantyExpiry),
		e.Status,
	}
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("заголовок листа %s: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("строка %d листа %s: %w", i+2, sheet, err)
		}
	}
	return nil
}
