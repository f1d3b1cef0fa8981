package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/maintenance"
	"gearguard/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarHarness(t *testing.T) (*harness, CalendarServiceInterface) {
	h := newHarness(t)
	oilChange := request("1", constants.StageNew, constants.RequestTypePreventive, "2025-01-15")
	oilChange.Subject = "Oil change"
	oilChange.EquipmentName = null.StringFrom("CNC Machine")
	inspection := request("2", constants.StageNew, constants.RequestTypePreventive, "2025-02-03")
	breakdown := request("3", constants.StageNew, constants.RequestTypeCorrective, "")
	h.srv.Requests = []entities.MaintenanceRequest{oilChange, inspection, breakdown}
	return h, NewCalendarService(h.base, h.clock, 0)
}

func cellFor(grid maintenance.MonthGrid, day int) maintenance.CalendarCell {
	return grid.Cells[grid.LeadingBlanks+day-1]
}

func TestCalendarService_MonthStartsAtToday(t *testing.T) {
	h, svc := newCalendarHarness(t)

	cal, err := svc.Month(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "January 2025", cal.Grid.Title)
	assert.Equal(t, 3, cal.Grid.LeadingBlanks)
	assert.Len(t, cal.Grid.Cells, 3+31)
	assert.True(t, cellFor(cal.Grid, 20).IsToday)
	require.Len(t, cellFor(cal.Grid, 15).Requests, 1)
	assert.Equal(t, "Oil change", cellFor(cal.Grid, 15).Requests[0].Subject)
	assert.Len(t, cal.Upcoming, 2)
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, cal.Weekdays)
	assert.Equal(t, 1, h.srv.CallCount(http.MethodGet, "/requests"))
}

func TestCalendarService_NavigationUsesSnapshot(t *testing.T) {
	h, svc := newCalendarHarness(t)
	ctx := context.Background()

	_, err := svc.Month(ctx, 2024, 12)
	require.NoError(t, err)
	h.srv.ResetCalls()

	cal, err := svc.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "January 2025", cal.Grid.Title)

	cal, err = svc.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "February 2025", cal.Grid.Title)
	assert.Len(t, cellFor(cal.Grid, 3).Requests, 1)

	cal, err = svc.Prev(ctx)
	require.NoError(t, err)
	cal, err = svc.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, maintenance.YearMonth{Year: 2024, Month: time.December}, cal.Grid.Month)

	cal, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "January 2025", cal.Grid.Title)
	assert.Empty(t, h.srv.Calls())
}

func TestCalendarService_LoadFailureShowsEmptyMonth(t *testing.T) {
	h, svc := newCalendarHarness(t)
	h.srv.FailWith(http.MethodGet, "/requests", http.StatusInternalServerError, "")

	cal, err := svc.Month(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, cellFor(cal.Grid, 15).Requests)
	assert.Empty(t, cal.Upcoming)
	assert.Equal(t, []string{"Failed to load calendar"}, h.toastMessages())
}

func TestCalendarService_ExportICS(t *testing.T) {
	_, svc := newCalendarHarness(t)
	ctx := context.Background()
	_, err := svc.Month(ctx, 0, 0)
	require.NoError(t, err)

	raw, ym, err := svc.ExportICS(ctx)
	require.NoError(t, err)
	out := string(raw)

	assert.Equal(t, "January 2025", ym.Title())
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "UID:1@gearguard")
	assert.Contains(t, out, "SUMMARY:Oil change")
	assert.Contains(t, out, "LOCATION:CNC Machine")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250115")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250116")
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"), "февральская заявка и поломка не попадают")
}
