package auth

import (
	"crypto/subtle"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
)

// StaticStrategy é o contrato legado: o "token" é um segredo fixo
// compartilhado, sem assinatura nem expiração. Mantido por compatibilidade
// com o frontend existente.
type StaticStrategy struct {
	cfg *config.Config
}

func NewStaticStrategy(cfg *config.Config) *StaticStrategy {
	return &StaticStrategy{cfg: cfg}
}

func (s *StaticStrategy) Login(username, password string) (string, bool) {
	if !checkCredentials(s.cfg, username, password) {
		return "", false
	}
	return s.cfg.AdminToken, true
}

func (s *StaticStrategy) Verify(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) == 1
}
