// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// APIConfig - параметры подключения к бэкенду GearGuard.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type SessionConfig struct {
	TokenKey   string
	LoginRoute string
}

type CalendarConfig struct {
	UpcomingLimit int
	Timezone      string
}

type LogConfig struct {
	Level string
	File  string
}

type Config struct {
	Server   ServerConfig
	API      APIConfig
	Redis    RedisConfig
	Session  SessionConfig
	Calendar CalendarConfig
	Log      LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowedOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("GEARGUARD_API_URL", "http://127.0.0.1:8000/api"), "/"),
			Timeout: getEnvDuration("GEARGUARD_API_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			TokenKey:   getEnv("TOKEN_KEY", "gearguard:token"),
			LoginRoute: getEnv("LOGIN_ROUTE", "/login"),
		},
		Calendar: CalendarConfig{
			UpcomingLimit: getEnvInt("CALENDAR_UPCOMING_LIMIT", 10),
			Timezone:      getEnv("APP_TIMEZONE", "Local"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

// Location возвращает часовой пояс, в котором считается "сегодня".
// При неверном значении APP_TIMEZONE используется локальное время.
func (c CalendarConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Предупреждение: неизвестный часовой пояс %q, используется Local", c.Timezone)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Предупреждение: %s=%q не является числом, используется %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Предупреждение: %s=%q не является длительностью, используется %s", key, value, fallback)
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
