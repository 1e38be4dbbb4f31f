package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
)

// JWTStrategy emite tokens HS256 com expiração de 24h. Mesma checagem de
// credencial da estratégia estática, só muda o formato do token.
type JWTStrategy struct {
	cfg *config.Config
}

func NewJWTStrategy(cfg *config.Config) *JWTStrategy {
	return &JWTStrategy{cfg: cfg}
}

func (s *JWTStrategy) Login(username, password string) (string, bool) {
	if !checkCredentials(s.cfg, username, password) {
		return "", false
	}

	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", false
	}
	return signed, true
}

func (s *JWTStrategy) Verify(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	return err == nil && token.Valid
}
