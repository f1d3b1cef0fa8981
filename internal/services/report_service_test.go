package services

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_RequestsWorkbook(t *testing.T) {
	h := newHarness(t)
	seedUsers(h)
	h.srv.Teams = []entities.Team{{ID: "t1", Name: "Mechanics"}}
	h.srv.Equipment = []entities.Equipment{{
		ID: "eq-1", Name: "CNC Machine", SerialNumber: "CNC-001", Category: "Machinery",
		TeamID: null.StringFrom("t1"), Status: constants.EquipmentStatusMaintenance,
	}}
	overdue := request("1", constants.StageInProgress, constants.RequestTypePreventive, "2025-01-05")
	overdue.Subject = "Oil change"
	overdue.EquipmentName = null.StringFrom("CNC Machine")
	overdue.AssignedTo = null.StringFrom("u2")
	h.srv.Requests = []entities.MaintenanceRequest{overdue}
	svc := NewReportService(h.base, h.clock)

	f, err := svc.RequestsWorkbook(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{"Requests", "Equipment"}, book.GetSheetList())

	rows, err := book.GetRows("Requests")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Subject", rows[0][0])
	assert.Equal(t, []string{
		"Oil change", "CNC Machine", "", "preventive", "In Progress", "2025-01-05", "John Technician", "Yes", "Admin User",
	}, rows[1])

	rows, err = book.GetRows("Equipment")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CNC Machine", rows[1][0])
	assert.Equal(t, "Mechanics", rows[1][5])
	assert.Equal(t, "maintenance", rows[1][9])
}

func TestReportService_BackendFailure(t *testing.T) {
	h := newHarness(t)
	h.srv.FailWith(http.MethodGet, "/equipment", http.StatusInternalServerError, "")
	svc := NewReportService(h.base, h.clock)

	_, err := svc.RequestsWorkbook(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Failed to build report"}, h.toastMessages())
}
