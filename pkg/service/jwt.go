package service

import (
	"time"

	"gearguard/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// GearGuardClaims - полезная нагрузка токена, который выдаёт бэкенд.
type GearGuardClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenInspector читает токен без проверки подписи: секрет есть только у бэкенда,
// консоли нужен лишь срок действия, чтобы не ходить в сеть с заведомо мёртвым токеном.
type TokenInspector interface {
	Inspect(tokenString string) (*GearGuardClaims, error)
	IsExpired(tokenString string) bool
}

type tokenInspector struct {
	parser *jwt.Parser
	now    func() time.Time
	logger *zap.Logger
}

func NewTokenInspector(now func() time.Time, logger *zap.Logger) TokenInspector {
	if now == nil {
		now = time.Now
	}
	return &tokenInspector{
		parser: jwt.NewParser(),
		now:    now,
		logger: logger,
	}
}

func (s *tokenInspector) Inspect(tokenString string) (*GearGuardClaims, error) {
	if tokenString == "" {
		return nil, errors.ErrTokenNotFound
	}
	claims := &GearGuardClaims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		s.logger.Debug("Токен не является JWT, проверка только через бэкенд", zap.Error(err))
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}

// IsExpired возвращает true только если токен читается и его exp уже прошёл.
// Непрозрачный токен считается живым - решение за /auth/me.
func (s *tokenInspector) IsExpired(tokenString string) bool {
	claims, err := s.Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(s.now())
}
