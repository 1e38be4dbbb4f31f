package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
)

// Strategy emite e verifica a credencial do painel admin. O gate de rotas
// não conhece o formato do token — trocar a estratégia não toca handlers.
type Strategy interface {
	// Login valida o par usuário/senha e devolve o token a ser usado nas
	// chamadas protegidas. ok=false em credencial inválida.
	Login(username, password string) (token string, ok bool)

	// Verify decide se o valor do header Authorization dá acesso admin.
	Verify(token string) bool
}

// New escolhe a estratégia a partir da configuração. O padrão é o token
// estático, que é o contrato legado do frontend.
func New(cfg *config.Config) Strategy {
	if cfg.AuthStrategy == "jwt" {
		return NewJWTStrategy(cfg)
	}
	return NewStaticStrategy(cfg)
}

// checkCredentials compara o par submetido com o único par configurado.
// Quando ADMIN_PASSWORD_HASH está presente, a senha é conferida via bcrypt
// em vez da comparação direta.
func checkCredentials(cfg *config.Config, username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) != 1 {
		return false
	}

	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(cfg.AdminPasswordHash),
			[]byte(password),
		) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
}
