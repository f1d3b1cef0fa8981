// Package gearguardtest - поддельный бэкенд GearGuard для тестов: echo-сервер
// в памяти, который запоминает каждый вызов.
package gearguardtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
)

// Call - один запрос, дошедший до бэкенда.
type Call struct {
	Method    string
	Path      string
	Body      string
	Auth      string
	RequestID string
}

func (c Call) String() string { return c.Method + " " + c.Path }

type failure struct {
	status int
	detail string
}

type Server struct {
	*httptest.Server

	// Token - ожидаемый bearer-токен; пустой - авторизация не проверяется.
	Token string

	mu            sync.Mutex
	calls         []Call
	failures      map[string]failure
	passwords     map[string]string
	seq           int
	Equipment     []entities.Equipment
	Teams         []entities.Team
	Users         []entities.User
	Requests      []entities.MaintenanceRequest
	Notifications []entities.Notification
	Stats         entities.DashboardStats
}

// New поднимает сервер и закрывает его по окончании теста.
func New(t testing.TB) *Server {
	s := &Server{
		failures:  make(map[string]failure),
		passwords: make(map[string]string),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

// BaseURL - адрес с префиксом /api, как GEARGUARD_API_URL.
func (s *Server) BaseURL() string { return s.URL + "/api" }

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount - сколько раз вызывали "METHOD /path" (путь без /api).
func (s *Server) CallCount(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) ResetCalls() {
	s.mu.Lock()
	s.calls = nil
	s.mu.Unlock()
}

// FailWith заставляет маршрут "METHOD /path" отвечать ошибкой до вызова Recover.
func (s *Server) FailWith(method, path string, status int, detail string) {
	s.mu.Lock()
	s.failures[method+" "+path] = failure{status: status, detail: detail}
	s.mu.Unlock()
}

func (s *Server) Recover(method, path string) {
	s.mu.Lock()
	delete(s.failures, method+" "+path)
	s.mu.Unlock()
}

// AddUser заводит пользователя с паролем для /auth/login.
func (s *Server) AddUser(u entities.User, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users = append(s.Users, u)
	s.passwords[u.Email] = password
}

func (s *Server) Request(id string) (entities.MaintenanceRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.Requests {
		if r.ID == id {
			return r, true
		}
	}
	return entities.MaintenanceRequest{}, false
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"detail": msg})
}

// record пишет вызов в журнал и отвечает заданной ошибкой, если она есть.
func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, _ := io.ReadAll(c.Request().Body)
		c.Request().Body = io.NopCloser(strings.NewReader(string(body)))
		path := strings.TrimPrefix(c.Request().URL.Path, "/api")

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:    c.Request().Method,
			Path:      path,
			Body:      string(body),
			Auth:      c.Request().Header.Get("Authorization"),
			RequestID: c.Request().Header.Get("X-Request-ID"),
		})
		f, failing := s.failures[c.Request().Method+" "+path]
		token := s.Token
		s.mu.Unlock()

		if failing {
			return detail(c, f.status, f.detail)
		}
		public := path == "/auth/login" || path == "/auth/register"
		if !public && token != "" && c.Request().Header.Get("Authorization") != "Bearer "+token {
			return detail(c, http.StatusUnauthorized, "Invalid token")
		}
		return next(c)
	}
}

func (s *Server) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	api := e.Group("/api", s.record)

	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)
	api.GET("/auth/me", s.me)

	api.GET("/equipment", func(c echo.Context) error { return s.list(c, func() interface{} { return s.Equipment }) })
	api.POST("/equipment", s.saveEquipment)
	api.PUT("/equipment/:id", s.saveEquipment)
	api.DELETE("/equipment/:id", s.deleteEquipment)
	api.GET("/equipment/:id/requests", s.equipmentRequests)

	api.GET("/teams", func(c echo.Context) error { return s.list(c, func() interface{} { return s.Teams }) })
	api.POST("/teams", s.saveTeam)
	api.PUT("/teams/:id", s.saveTeam)
	api.DELETE("/teams/:id", s.deleteTeam)

	api.GET("/users", func(c echo.Context) error { return s.list(c, func() interface{} { return s.Users }) })

	api.GET("/requests", func(c echo.Context) error { return s.list(c, func() interface{} { return s.Requests }) })
	api.POST("/requests", s.createRequest)
	api.PUT("/requests/:id", s.updateRequest)

	api.GET("/dashboard/stats", func(c echo.Context) error { return s.list(c, func() interface{} { return s.Stats }) })
	api.GET("/notifications", func(c echo.Context) error { return s.list(c, func() interface{} { return s.Notifications }) })
	api.PUT("/notifications/:id/read", s.markRead)
	return e
}

func (s *Server) list(c echo.Context, get func() interface{}) error {
	s.mu.Lock()
	v := get()
	raw, err := json.Marshal(v)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if string(raw) == "null" {
		raw = []byte("[]")
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (s *Server) login(c echo.Context) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "bad body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if pw, ok := s.passwords[in.Email]; !ok || pw != in.Password {
		return detail(c, http.StatusUnauthorized, "Invalid credentials")
	}
	for _, u := range s.Users {
		if u.Email == in.Email {
			return c.JSON(http.StatusOK, map[string]interface{}{"user": u, "token": s.tokenFor(u)})
		}
	}
	return detail(c, http.StatusUnauthorized, "Invalid credentials")
}

func (s *Server) register(c echo.Context) error {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "bad body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.passwords[in.Email]; exists {
		return detail(c, http.StatusBadRequest, "Email already registered")
	}
	if in.Role == "" {
		in.Role = "technician"
	}
	u := entities.User{ID: s.nextID("user"), Name: in.Name, Email: in.Email, Role: in.Role}
	s.Users = append(s.Users, u)
	s.passwords[in.Email] = in.Password
	return c.JSON(http.StatusOK, map[string]interface{}{"user": u, "token": s.tokenFor(u)})
}

func (s *Server) tokenFor(u entities.User) string {
	if s.Token != "" {
		return s.Token
	}
	return "token-" + u.ID
}

func (s *Server) me(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Users) == 0 {
		return detail(c, http.StatusUnauthorized, "User not found")
	}
	return c.JSON(http.StatusOK, s.Users[0])
}

func (s *Server) saveEquipment(c echo.Context) error {
	var in entities.Equipment
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "bad body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if id == "" {
		in.ID = s.nextID("eq")
		in.Status = constants.EquipmentStatusActive
		s.Equipment = append(s.Equipment, in)
		return c.JSON(http.StatusOK, in)
	}
	for i, e := range s.Equipment {
		if e.ID == id {
			in.ID = id
			in.Status = e.Status
			s.Equipment[i] = in
			return c.JSON(http.StatusOK, in)
		}
	}
	return detail(c, http.StatusNotFound, "Equipment not found")
}

func (s *Server) deleteEquipment(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.Equipment {
		if e.ID == c.Param("id") {
			s.Equipment = append(s.Equipment[:i], s.Equipment[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "Equipment deleted"})
		}
	}
	return detail(c, http.StatusNotFound, "Equipment not found")
}

func (s *Server) equipmentRequests(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.MaintenanceRequest, 0)
	for _, r := range s.Requests {
		if r.EquipmentID == c.Param("id") {
			out = append(out, r)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) saveTeam(c echo.Context) error {
	var in entities.Team
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "bad body")
	}
	if in.MemberIDs == nil {
		in.MemberIDs = []string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if id == "" {
		in.ID = s.nextID("team")
		s.Teams = append(s.Teams, in)
		return c.JSON(http.StatusOK, in)
	}
	for i, t := range s.Teams {
		if t.ID == id {
			in.ID = id
			s.Teams[i] = in
			return c.JSON(http.StatusOK, in)
		}
	}
	return detail(c, http.StatusNotFound, "Team not found")
}

func (s *Server) deleteTeam(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.Teams {
		if t.ID == c.Param("id") {
			s.Teams = append(s.Teams[:i], s.Teams[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "Team deleted"})
		}
	}
	return detail(c, http.StatusNotFound, "Team not found")
}

func (s *Server) createRequest(c echo.Context) error {
	var in entities.MaintenanceRequest
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "bad body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ID = s.nextID("req")
	in.Stage = constants.StageNew
	for _, e := range s.Equipment {
		if e.ID == in.EquipmentID {
			in.EquipmentName = null.StringFrom(e.Name)
			in.EquipmentCategory = null.StringFrom(e.Category)
			in.TeamID = e.TeamID
		}
	}
	s.Requests = append(s.Requests, in)
	return c.JSON(http.StatusOK, in)
}

// updateRequest применяет только присланные поля, как частичное обновление бэкенда.
func (s *Server) updateRequest(c echo.Context) error {
	var patch map[string]json.RawMessage
	if err := c.Bind(&patch); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "bad body")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Requests {
		r := &s.Requests[i]
		if r.ID != c.Param("id") {
			continue
		}
		if raw, ok := patch["stage"]; ok {
			_ = json.Unmarshal(raw, &r.Stage)
		}
		if raw, ok := patch["assigned_to"]; ok {
			_ = json.Unmarshal(raw, &r.AssignedTo)
		}
		if raw, ok := patch["scheduled_date"]; ok {
			_ = json.Unmarshal(raw, &r.ScheduledDate)
		}
		return c.JSON(http.StatusOK, *r)
	}
	return detail(c, http.StatusNotFound, "Request not found")
}

func (s *Server) markRead(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Notifications {
		if s.Notifications[i].ID == c.Param("id") {
			s.Notifications[i].IsRead = true
			return c.JSON(http.StatusOK, map[string]string{"message": "Marked as read"})
		}
	}
	return detail(c, http.StatusNotFound, "Notification not found")
}
