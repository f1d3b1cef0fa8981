package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/websocket"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dependencies - всё, что собирается в main до маршрутов.
type Dependencies struct {
	API       gearguard.API
	Tokens    repositories.TokenRepositoryInterface
	Inspector service.TokenInspector
	Bus       *eventbus.Bus
	Hub       *websocket.Hub
	Clock     services.Clock
	Config    *config.Config
	Logger    *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	ui := e.Group("/ui")
	store := repositories.NewRecordStore()
	base := services.NewBaseService(deps.API, store, deps.Bus, logger)

	// --- 1. СЕРВИСЫ ---
	authService := services.NewAuthService(base, deps.Tokens, deps.Inspector, deps.Config.Session.LoginRoute)
	notificationService := services.NewNotificationService(base, deps.Hub, 0)
	equipmentService := services.NewEquipmentService(base, deps.Clock)
	teamService := services.NewTeamService(base)
	requestService := services.NewRequestService(base, deps.Clock)
	calendarService := services.NewCalendarService(base, deps.Clock, deps.Config.Calendar.UpcomingLimit)
	dashboardService := services.NewDashboardService(base, deps.Clock)
	reportService := services.NewReportService(base, deps.Clock)

	listeners.NewNotificationListener(notificationService, logger).Register(deps.Bus)

	// --- 2. КОНТРОЛЛЕРЫ ---
	responder := controllers.NewSessionResponder(authService, deps.Config.Session.LoginRoute, logger)
	authMW := middleware.NewAuthMiddleware(authService, deps.Config.Session.LoginRoute, logger)

	// --- 3. РОУТЕРЫ ---
	runAuthRouter(ui, controllers.NewAuthController(authService, logger))

	secureGroup := ui.Group("", authMW.Auth)
	runDashboardRouter(secureGroup, controllers.NewDashboardController(dashboardService, responder))
	runEquipmentRouter(secureGroup, controllers.NewEquipmentController(equipmentService, responder))
	runTeamRouter(secureGroup, controllers.NewTeamController(teamService, responder))
	runRequestRouter(secureGroup, controllers.NewRequestController(requestService, responder))
	runCalendarRouter(secureGroup, controllers.NewCalendarController(calendarService, responder))
	runReportRouter(secureGroup, controllers.NewReportController(reportService, responder))
	runNotificationRouter(secureGroup,
		controllers.NewNotificationController(notificationService, responder),
		controllers.NewWebSocketController(deps.Hub, deps.Config.Server.AllowedOrigins, logger),
	)

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
