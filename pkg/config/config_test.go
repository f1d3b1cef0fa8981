package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("GEARGUARD_API_URL", "http://backend.local/api/")
	t.Setenv("CALENDAR_UPCOMING_LIMIT", "not-a-number")

	cfg := New()

	assert.Equal(t, "http://backend.local/api", cfg.API.BaseURL, "хвостовой слэш должен обрезаться")
	assert.Equal(t, 10, cfg.Calendar.UpcomingLimit, "при неверном значении берётся значение по умолчанию")
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "gearguard:token", cfg.Session.TokenKey)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("GEARGUARD_API_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg := New()

	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestCalendarConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, CalendarConfig{Timezone: "Local"}.Location())
	assert.Equal(t, time.Local, CalendarConfig{Timezone: "Nowhere/Atlantis"}.Location())
	assert.Equal(t, "UTC", CalendarConfig{Timezone: "UTC"}.Location().String())
}
