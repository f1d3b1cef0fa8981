package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/integrations/gearguard/gearguardtest"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/service"
	"gearguard/pkg/validation"
	"gearguard/pkg/websocket"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// ConsoleTestSuite гоняет HTTP-поверхность консоли против поддельного бэкенда.
type ConsoleTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Backend *gearguardtest.Server
	Tokens  *repositories.MemoryTokenRepository
	Token   string
}

func (suite *ConsoleTestSuite) SetupTest() {
	nopLogger := zap.NewNop()

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	suite.Require().NoError(err)
	suite.Token = token

	backend := gearguardtest.New(suite.T())
	backend.Token = token
	backend.AddUser(entities.User{ID: "u1", Name: "Admin User", Email: "admin@gearguard.com", Role: "admin"}, "admin123")
	backend.Equipment = []entities.Equipment{{ID: "eq-1", Name: "CNC Machine", SerialNumber: "CNC-001", Category: "Machinery", Status: "active"}}
	backend.Requests = []entities.MaintenanceRequest{{
		ID: "1", Subject: "Spindle noise", EquipmentID: "eq-1",
		RequestType: constants.RequestTypeCorrective, Stage: constants.StageNew, CreatedBy: "u1",
	}}

	tokens := repositories.NewMemoryTokenRepository()
	cfg := config.New()
	cfg.Session.LoginRoute = "/login"

	e := echo.New()
	e.Validator = validation.New()
	InitRouter(e, Dependencies{
		API:       gearguard.NewClient(backend.BaseURL(), 5*time.Second, tokens, nopLogger),
		Tokens:    tokens,
		Inspector: service.NewTokenInspector(nil, nopLogger),
		Bus:       eventbus.New(nopLogger),
		Hub:       websocket.NewHub(nopLogger),
		Clock:     services.NewClock(time.UTC),
		Config:    cfg,
		Logger:    nopLogger,
	})

	suite.Echo = e
	suite.Backend = backend
	suite.Tokens = tokens
}

func (suite *ConsoleTestSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	}
	return rec, envelope
}

func (suite *ConsoleTestSuite) login() {
	rec, _ := suite.do(http.MethodPost, "/ui/auth/login", map[string]string{"email": "admin@gearguard.com", "password": "admin123"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (suite *ConsoleTestSuite) TestGuardRedirectsWithoutSession() {
	rec, envelope := suite.do(http.MethodGet, "/ui/teams", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	assert.Equal(suite.T(), map[string]interface{}{"redirect": "/login"}, envelope["body"])
	assert.Empty(suite.T(), suite.Backend.Calls(), "без токена бэкенд не вызывается")
}

func (suite *ConsoleTestSuite) TestSessionWithoutToken() {
	rec, envelope := suite.do(http.MethodGet, "/ui/auth/session", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := envelope["body"].(map[string]interface{})
	assert.Equal(suite.T(), false, body["authenticated"])
	assert.Equal(suite.T(), "/login", body["redirect"])
}

func (suite *ConsoleTestSuite) TestLoginValidation() {
	rec, _ := suite.do(http.MethodPost, "/ui/auth/login", map[string]string{"email": "not-an-email"})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Empty(suite.T(), suite.Backend.Calls())
}

func (suite *ConsoleTestSuite) TestDragOntoRepairedColumn() {
	suite.login()

	rec, _ := suite.do(http.MethodGet, "/ui/requests", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Backend.ResetCalls()

	rec, _ = suite.do(http.MethodPost, "/ui/requests/drag/begin", map[string]string{"request_id": "1"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	rec, _ = suite.do(http.MethodPost, "/ui/requests/drag/over", map[string]string{"stage": "repaired"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	rec, envelope := suite.do(http.MethodPost, "/ui/requests/drag/commit", map[string]string{"stage": "repaired"})
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	calls := suite.Backend.Calls()
	suite.Require().Len(calls, 2)
	assert.Equal(suite.T(), "PUT /requests/1", calls[0].String())
	assert.JSONEq(suite.T(), `{"stage":"repaired"}`, calls[0].Body)
	assert.Equal(suite.T(), "Bearer "+suite.Token, calls[0].Auth)
	assert.Equal(suite.T(), "GET /requests", calls[1].String())

	columns := envelope["body"].(map[string]interface{})["columns"].([]interface{})
	repaired := columns[2].(map[string]interface{})
	assert.Equal(suite.T(), "repaired", repaired["stage"])
	assert.Len(suite.T(), repaired["cards"], 1)
}

func (suite *ConsoleTestSuite) TestUnknownStageIsRejected() {
	suite.login()
	suite.Backend.ResetCalls()

	rec, _ := suite.do(http.MethodPut, "/ui/requests/1/stage", map[string]string{"stage": "archived"})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Empty(suite.T(), suite.Backend.Calls())
}

func (suite *ConsoleTestSuite) TestBackendRejectsTokenMidSession() {
	suite.login()
	suite.Backend.Token = "rotated-on-backend"

	rec, envelope := suite.do(http.MethodGet, "/ui/equipment", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	assert.Equal(suite.T(), map[string]interface{}{"redirect": "/login"}, envelope["body"])

	token, err := suite.Tokens.Get(context.Background())
	suite.Require().NoError(err)
	assert.Empty(suite.T(), token, "токен забыт после 401")
}

func (suite *ConsoleTestSuite) TestEquipmentFormValidation() {
	suite.login()
	suite.Backend.ResetCalls()

	rec, _ := suite.do(http.MethodPost, "/ui/equipment", map[string]string{"name": "Lathe", "category": "Machinery"})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Empty(suite.T(), suite.Backend.Calls())
}

func (suite *ConsoleTestSuite) TestCalendarExportAndReport() {
	suite.login()

	rec, _ := suite.do(http.MethodGet, "/ui/calendar", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = suite.do(http.MethodGet, "/ui/calendar/export.ics", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Header().Get(echo.HeaderContentType), "text/calendar")
	assert.Contains(suite.T(), rec.Body.String(), "BEGIN:VCALENDAR")

	rec, _ = suite.do(http.MethodGet, "/ui/reports/requests.xlsx", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(suite.T(), rec.Body.Len())
}

func (suite *ConsoleTestSuite) TestCalendarMonthNeedsYearAndMonthTogether() {
	suite.login()

	for _, path := range []string{"/ui/calendar?year=2025", "/ui/calendar?month=3"} {
		suite.Backend.ResetCalls()
		rec, _ := suite.do(http.MethodGet, path, nil)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code, path)
		assert.Empty(suite.T(), suite.Backend.Calls(), path)
	}

	rec, envelope := suite.do(http.MethodGet, "/ui/calendar?year=2025&month=3", nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	grid := envelope["body"].(map[string]interface{})["grid"].(map[string]interface{})
	assert.Equal(suite.T(), "March 2025", grid["title"])
}

func (suite *ConsoleTestSuite) TestToastsArePolled() {
	suite.login()

	// уведомления доставляются асинхронно
	assert.Eventually(suite.T(), func() bool {
		rec, envelope := suite.do(http.MethodGet, "/ui/notifications", nil)
		if rec.Code != http.StatusOK {
			return false
		}
		toasts, _ := envelope["body"].([]interface{})
		for _, t := range toasts {
			if t.(map[string]interface{})["message"] == "Logged in successfully!" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}
