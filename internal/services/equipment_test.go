package services

import (
	"context"
	"net/http"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEquipmentHarness(t *testing.T) (*harness, EquipmentServiceInterface) {
	h := newHarness(t)
	seedUsers(h)
	h.srv.Teams = []entities.Team{{ID: "t1", Name: "Mechanics", MemberIDs: []string{"u2"}}}
	h.srv.Equipment = []entities.Equipment{{
		ID: "eq-1", Name: "CNC Machine", SerialNumber: "CNC-001", Category: "Machinery",
		TeamID: null.StringFrom("t1"), Status: constants.EquipmentStatusActive,
	}}
	return h, NewEquipmentService(h.base, h.clock)
}

func TestEquipmentService_PageJoinsTeamNames(t *testing.T) {
	_, svc := newEquipmentHarness(t)

	page, err := svc.Page(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mechanics", page.Items[0].TeamName)
	assert.Len(t, page.Teams, 1)
	assert.False(t, page.Dialog.Open)
}

func TestEquipmentService_DuplicateSerialIsRejectedLocally(t *testing.T) {
	h, svc := newEquipmentHarness(t)
	ctx := context.Background()
	_, err := svc.Page(ctx)
	require.NoError(t, err)
	h.srv.ResetCalls()

	_, err = svc.OpenDialog(ctx, "")
	require.NoError(t, err)
	form := dto.EquipmentFormDTO{Name: "Second CNC", SerialNumber: "cnc-001", Category: "Machinery"}
	_, err = svc.Submit(ctx, form)

	assert.Equal(t, http.StatusConflict, apperrors.StatusCode(err))
	assert.Empty(t, h.srv.Calls())
	assert.Equal(t, []string{"Serial number already exists"}, h.toastMessages())

	page, err := svc.OpenDialog(ctx, "eq-1")
	require.NoError(t, err)
	assert.Equal(t, "eq-1", page.Dialog.EditingID)
}

func TestEquipmentService_CreateAndEdit(t *testing.T) {
	h, svc := newEquipmentHarness(t)
	ctx := context.Background()
	_, err := svc.Page(ctx)
	require.NoError(t, err)
	h.srv.ResetCalls()

	_, err = svc.OpenDialog(ctx, "")
	require.NoError(t, err)
	page, err := svc.Submit(ctx, dto.EquipmentFormDTO{
		Name: "Forklift", SerialNumber: "FL-002", Category: "Vehicles",
		PurchaseDate: null.StringFrom("2023-05-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"POST /equipment", "GET /equipment"}, h.callNames())
	assert.False(t, page.Dialog.Open)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, []string{"Equipment created successfully!"}, h.toastMessages())

	h.srv.ResetCalls()
	page, err = svc.OpenDialog(ctx, "eq-1")
	require.NoError(t, err)
	form := page.Dialog.Form
	assert.Equal(t, "CNC-001", form.SerialNumber)
	form.Location = null.StringFrom("Hall B")

	// свой же серийный номер при редактировании не дубликат
	page, err = svc.Submit(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, []string{"PUT /equipment/eq-1", "GET /equipment"}, h.callNames())
	assert.Equal(t, "Hall B", page.Items[0].Location.String)
	assert.Equal(t, []string{"Equipment updated successfully!"}, h.toastMessages())
}

func TestEquipmentService_SubmitFailureKeepsDialog(t *testing.T) {
	h, svc := newEquipmentHarness(t)
	ctx := context.Background()
	_, err := svc.Page(ctx)
	require.NoError(t, err)
	h.srv.FailWith(http.MethodPost, "/equipment", http.StatusInternalServerError, "")

	_, err = svc.OpenDialog(ctx, "")
	require.NoError(t, err)
	form := dto.EquipmentFormDTO{Name: "Press", SerialNumber: "PR-003", Category: "Machinery"}
	_, err = svc.Submit(ctx, form)
	require.Error(t, err)

	page, err := svc.CloseDialog(ctx)
	require.NoError(t, err)
	assert.False(t, page.Dialog.Open)
	assert.Len(t, page.Items, 1, "снимок не меняется")
	assert.Equal(t, []string{"Failed to save equipment"}, h.toastMessages())
}

func TestEquipmentService_Delete(t *testing.T) {
	h, svc := newEquipmentHarness(t)
	ctx := context.Background()

	page, err := svc.Delete(ctx, "eq-1")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, []string{"Equipment deleted successfully!"}, h.toastMessages())

	_, err = svc.Delete(ctx, "eq-1")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
	assert.Equal(t, []string{"Failed to delete equipment"}, h.toastMessages())
}

func TestEquipmentService_History(t *testing.T) {
	h, svc := newEquipmentHarness(t)
	ctx := context.Background()
	overdue := request("1", constants.StageNew, constants.RequestTypePreventive, "2025-01-02")
	overdue.AssignedTo = null.StringFrom("u2")
	other := request("2", constants.StageNew, constants.RequestTypeCorrective, "")
	other.EquipmentID = "eq-9"
	h.srv.Requests = []entities.MaintenanceRequest{overdue, other}

	_, err := svc.History(ctx, "eq-1")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err), "запись ищется в снимке")

	_, err = svc.Page(ctx)
	require.NoError(t, err)
	history, err := svc.History(ctx, "eq-1")
	require.NoError(t, err)

	assert.Equal(t, "CNC Machine", history.Equipment.Name)
	require.Len(t, history.Requests, 1)
	assert.True(t, history.Requests[0].Overdue)
	assert.Equal(t, "John Technician", history.Requests[0].AssigneeName)
}
