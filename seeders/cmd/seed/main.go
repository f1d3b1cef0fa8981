package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	applogger "gearguard/pkg/logger"
	"gearguard/seeders"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfg := config.New()

	apiURL := flag.String("api-url", cfg.API.BaseURL, "Адрес API бэкенда GearGuard")
	runUsers := flag.Bool("users", false, "Создать демо-пользователей")
	runTeams := flag.Bool("teams", false, "Создать бригады")
	runEquipment := flag.Bool("equipment", false, "Создать оборудование")
	runRequests := flag.Bool("requests", false, "Создать заявки на обслуживание")
	runAll := flag.Bool("all", false, "Запустить все сидеры по порядку")
	flag.Parse()

	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	logger.Info("======================================================")
	logger.Info("       🌱 Наполнение GearGuard демо-данными")
	logger.Info("======================================================")

	if !*runUsers && !*runTeams && !*runEquipment && !*runRequests && !*runAll {
		fmt.Fprintln(os.Stderr, "❌ Не выбран ни один сидер для запуска. Доступные флаги:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nПример: go run ./seeders/cmd/seed --all --api-url http://127.0.0.1:8000/api")
		os.Exit(2)
	}

	tokens := repositories.NewMemoryTokenRepository()
	api := gearguard.NewClient(*apiURL, 30*time.Second, tokens, logger)
	seeder := seeders.New(api, tokens, logger)
	ctx := context.Background()

	if *runAll {
		stats, err := seeder.SeedAll(ctx)
		if err != nil {
			logger.Fatal("❌ Сидер завершился ошибкой", zap.Error(err))
		}
		logger.Info("✅ Все сидеры завершены",
			zap.Int("users", stats.Users),
			zap.Int("teams", stats.Teams),
			zap.Int("equipment", stats.Equipment),
			zap.Int("requests", stats.Requests),
		)
		return
	}

	steps := []struct {
		enabled bool
		name    string
		run     func(context.Context) (int, error)
	}{
		{*runUsers, "users", seeder.SeedUsers},
		{*runTeams, "teams", seeder.SeedTeams},
		{*runEquipment, "equipment", seeder.SeedEquipment},
		{*runRequests, "requests", seeder.SeedRequests},
	}
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		created, err := step.run(ctx)
		if err != nil {
			logger.Fatal("❌ Сидер завершился ошибкой", zap.String("step", step.name), zap.Error(err))
		}
		logger.Info("✅ Шаг завершён", zap.String("step", step.name), zap.Int("created", created))
	}

	logger.Info("Данные для входа: admin@gearguard.com / admin123, техники: john|sarah|mike@gearguard.com / tech123")
}
